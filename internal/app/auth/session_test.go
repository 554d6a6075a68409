package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/app/models"
)

func TestSessionCapabilities(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name      string
		session   Session
		wantAdmin bool
		wantActor bool
	}{
		{"anonymous", Anonymous, false, false},
		{"no profile", NewSession(id, "a@club.edu", nil), false, true},
		{"student", NewSession(id, "a@club.edu", &models.Profile{Role: models.RoleStudent}), false, true},
		{"mentor", NewSession(id, "a@club.edu", &models.Profile{Role: models.RoleClubMentor}), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.IsAdmin(); got != tt.wantAdmin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.wantAdmin)
			}
			actor := tt.session.ActorID()
			if (actor != nil) != tt.wantActor {
				t.Fatalf("ActorID() = %v, want present=%v", actor, tt.wantActor)
			}
			if actor != nil && *actor != id {
				t.Errorf("ActorID() = %s, want %s", actor, id)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if FromContext(c).Authenticated() {
		t.Fatal("empty context should yield an anonymous session")
	}

	want := NewSession(uuid.New(), "b@club.edu", nil)
	c.Set(ContextKey, want)
	if got := FromContext(c); got.UserID != want.UserID {
		t.Errorf("FromContext() user = %s, want %s", got.UserID, want.UserID)
	}
}
