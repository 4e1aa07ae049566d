package persistence

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/churnai/churnai/modules/core/services"
	"github.com/churnai/churnai/pkg/composables"
)

const (
	sessionFindQuery = `SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = $1`
	profileFindQuery = `SELECT id, email, full_name, organization_id FROM profiles WHERE id = $1`
)

type AuthRepository struct{}

func NewAuthRepository() services.AuthRepository {
	return &AuthRepository{}
}

func (r *AuthRepository) SessionByToken(ctx context.Context, token string) (*services.Session, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	var sess services.Session
	if err := tx.QueryRow(ctx, sessionFindQuery, token).Scan(
		&sess.Token,
		&sess.UserID,
		&sess.ExpiresAt,
		&sess.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "failed to query session")
	}
	return &sess, nil
}

func (r *AuthRepository) ProfileByID(ctx context.Context, userID uuid.UUID) (*services.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	var (
		profile  services.Profile
		fullName sql.NullString
		orgID    uuid.NullUUID
	)
	if err := tx.QueryRow(ctx, profileFindQuery, userID).Scan(
		&profile.ID,
		&profile.Email,
		&fullName,
		&orgID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "failed to query profile")
	}
	if fullName.Valid {
		profile.FullName = &fullName.String
	}
	if orgID.Valid {
		profile.OrganizationID = &orgID.UUID
	}
	return &profile, nil
}
