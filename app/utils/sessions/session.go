package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "cafe-admin-session"

	adminEmailSessionKey = "adminEmail"
)

type SessionStore interface {
	GetAdminEmail(r *http.Request) string
	SetAdminEmail(w http.ResponseWriter, r *http.Request, email string) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(12 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A decode error just means a stale or tampered cookie; a fresh
		// session is returned alongside the error.
		log.Printf("Error getting session: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetAdminEmail(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}
	if email, ok := session.Values[adminEmailSessionKey].(string); ok {
		return email
	}
	return ""
}

func (c *CookieSessionStore) SetAdminEmail(w http.ResponseWriter, r *http.Request, email string) error {
	session := c.getSession(r)
	session.Values[adminEmailSessionKey] = email
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Options.MaxAge = -1
	for k := range session.Values {
		delete(session.Values, k)
	}
	return session.Save(r, w)
}
