package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lunarbrew/go-cafe/app/services"
	"github.com/unrolled/render"
)

type ContactHandler struct {
	render   *render.Render
	mailer   services.MailSender
	notifyTo string
}

func NewContactHandler(rnd *render.Render, mailer services.MailSender, notifyTo string) *ContactHandler {
	return &ContactHandler{
		render:   rnd,
		mailer:   mailer,
		notifyTo: notifyTo,
	}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) fail(w http.ResponseWriter, status int, message string) {
	h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Handle accepts the public contact form and forwards it to the café's
// notification mailbox. Validation mirrors the client-side rules but is
// authoritative here.
func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if !h.mailer.Configured() || h.notifyTo == "" {
		log.Println("ContactHandler: email relay credentials are missing")
		h.fail(w, http.StatusInternalServerError, "Email service not configured")
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = sanitizeText(req.Name)
	req.Email = sanitizeText(req.Email)
	req.Phone = sanitizeText(req.Phone)
	req.Subject = sanitizeText(req.Subject)
	req.Message = sanitizeText(req.Message)

	switch {
	case req.Name == "":
		h.fail(w, http.StatusBadRequest, "Name is required")
		return
	case req.Email == "":
		h.fail(w, http.StatusBadRequest, "Email is required")
		return
	case req.Subject == "":
		h.fail(w, http.StatusBadRequest, "Subject is required")
		return
	case req.Message == "":
		h.fail(w, http.StatusBadRequest, "Message is required")
		return
	}

	if !validEmail(req.Email) {
		h.fail(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}
	if req.Phone != "" && !validPhone(req.Phone) {
		h.fail(w, http.StatusBadRequest, "Please enter a valid phone number")
		return
	}
	if len(req.Message) > 2000 {
		h.fail(w, http.StatusBadRequest, "Message must be 2000 characters or less")
		return
	}
	if isSpam(req.Message) || isSpam(req.Subject) {
		h.fail(w, http.StatusBadRequest, "Your message was flagged as spam and was not sent")
		return
	}

	body := services.BuildContactEmailBody(req.Name, req.Email, req.Phone, req.Subject, req.Message)
	messageID, err := h.mailer.SendHTMLEmail(h.notifyTo, "New contact form message: "+req.Subject, body)
	if err != nil {
		log.Printf("ContactHandler: failed to relay contact message: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to send your message. Please try again later.")
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Thanks for reaching out! We'll get back to you soon.",
		"messageId": messageID,
	})
}
