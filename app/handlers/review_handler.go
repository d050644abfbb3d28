package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lunarbrew/go-cafe/app/services"
	"github.com/unrolled/render"
)

type ReviewHandler struct {
	render   *render.Render
	mailer   services.MailSender
	notifyTo string
}

func NewReviewHandler(rnd *render.Render, mailer services.MailSender, notifyTo string) *ReviewHandler {
	return &ReviewHandler{
		render:   rnd,
		mailer:   mailer,
		notifyTo: notifyTo,
	}
}

type ReviewRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Rating   *int   `json:"rating"`
	Comments string `json:"comments"`
}

func (h *ReviewHandler) fail(w http.ResponseWriter, status int, message string) {
	h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Handle accepts review feedback from the public site. An email address is
// only demanded for 4 and 5 star ratings (so the café can follow up and
// ask for a public review); lower ratings may stay anonymous.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if !h.mailer.Configured() || h.notifyTo == "" {
		log.Println("ReviewHandler: email relay credentials are missing")
		h.fail(w, http.StatusInternalServerError, "Email service not configured")
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = sanitizeText(req.Name)
	req.Email = sanitizeText(req.Email)
	req.Comments = sanitizeText(req.Comments)

	if req.Rating == nil {
		h.fail(w, http.StatusBadRequest, "Rating is required")
		return
	}
	rating := *req.Rating
	if rating < 1 || rating > 5 {
		h.fail(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	if req.Comments == "" {
		h.fail(w, http.StatusBadRequest, "Comments are required")
		return
	}
	if len(req.Comments) > 2000 {
		h.fail(w, http.StatusBadRequest, "Comments must be 2000 characters or less")
		return
	}

	if rating >= 4 && req.Email == "" {
		h.fail(w, http.StatusBadRequest, "Email is required for ratings of 4 stars and above")
		return
	}
	if req.Email != "" && !validEmail(req.Email) {
		h.fail(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	if isSpam(req.Comments) {
		h.fail(w, http.StatusBadRequest, "Your feedback was flagged as spam and was not sent")
		return
	}

	body := services.BuildReviewEmailBody(req.Name, req.Email, rating, req.Comments)
	if _, err := h.mailer.SendHTMLEmail(h.notifyTo, "New review feedback", body); err != nil {
		log.Printf("ReviewHandler: failed to relay review feedback: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to send your feedback. Please try again later.")
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thank you for your feedback!",
	})
}
