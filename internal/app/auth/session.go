package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/app/models"
)

// ContextKey is the gin context key the auth middleware stores the session under.
const ContextKey = "session"

// Session is the caller's identity and capabilities for one request.
// It is built by the auth middleware and handed to screens explicitly.
type Session struct {
	UserID  uuid.UUID
	Email   string
	Profile *models.Profile
}

// Anonymous is the session of an unauthenticated caller.
var Anonymous = Session{}

// NewSession builds a session for an authenticated user.
func NewSession(userID uuid.UUID, email string, profile *models.Profile) Session {
	return Session{UserID: userID, Email: email, Profile: profile}
}

// Authenticated reports whether the session belongs to a signed-in user.
func (s Session) Authenticated() bool {
	return s.UserID != uuid.Nil
}

// IsAdmin reports whether the caller may use the admin panel.
func (s Session) IsAdmin() bool {
	return s.Authenticated() && s.Profile != nil && s.Profile.IsAdmin()
}

// ActorID returns the id stamped into created_by and uploaded_by, or nil when anonymous.
func (s Session) ActorID() *uuid.UUID {
	if !s.Authenticated() {
		return nil
	}
	id := s.UserID
	return &id
}

// FromContext returns the session stored by the auth middleware, or Anonymous.
func FromContext(c *gin.Context) Session {
	if v, ok := c.Get(ContextKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Anonymous
}
