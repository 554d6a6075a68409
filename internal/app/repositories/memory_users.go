package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

// MemoryUserStore is the in-process UserStore used by the memory driver and tests.
type MemoryUserStore struct {
	mu       sync.RWMutex
	byEmail  map[string]models.User
	profiles map[uuid.UUID]models.Profile
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byEmail:  make(map[string]models.User),
		profiles: make(map[uuid.UUID]models.Profile),
	}
}

func (s *MemoryUserStore) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return apperrors.ErrEmailAlreadyExists
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	user.ID = uuid.New()
	user.Email = email
	user.CreatedAt = now

	profile.ID = uuid.New()
	profile.UserID = user.ID
	profile.SetTimestamps(now, now)

	s.byEmail[email] = *user
	s.profiles[user.ID] = *profile
	return nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}
	return &u, nil
}

func (s *MemoryUserStore) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return &p, nil
}

func (s *MemoryUserStore) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, u := range s.byEmail {
		if u.ID == userID {
			now := time.Now().UTC()
			u.LastLoginAt = &now
			s.byEmail[email] = u
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("user not found")
}
