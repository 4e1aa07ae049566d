package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoOrganization  = errors.New("no organization found for user")
)

type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Profile struct {
	ID             uuid.UUID
	Email          string
	FullName       *string
	OrganizationID *uuid.UUID
}

type AuthRepository interface {
	SessionByToken(ctx context.Context, token string) (*Session, error)
	ProfileByID(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

// AuthService resolves bearer credentials to an acting profile and its
// organization. Every import write is scoped to the organization returned
// here; there is no cross-organization visibility.
type AuthService struct {
	repo AuthRepository
}

func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Authorize validates the bearer token and returns the profile plus its
// organization id. ErrSessionNotFound / ErrSessionExpired mean the caller
// is unauthenticated; ErrNoOrganization means the account is not attached
// to any organization yet.
func (s *AuthService) Authorize(ctx context.Context, token string) (*Profile, uuid.UUID, error) {
	if token == "" {
		return nil, uuid.Nil, ErrSessionNotFound
	}

	sess, err := s.repo.SessionByToken(ctx, token)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(time.Now()) {
		return nil, uuid.Nil, ErrSessionExpired
	}

	profile, err := s.repo.ProfileByID(ctx, sess.UserID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if profile.OrganizationID == nil || *profile.OrganizationID == uuid.Nil {
		return nil, uuid.Nil, ErrNoOrganization
	}
	return profile, *profile.OrganizationID, nil
}
