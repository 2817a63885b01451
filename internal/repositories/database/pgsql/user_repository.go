package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
	"github.com/vidstream/vidstream_backend/internal/models"
	"github.com/vidstream/vidstream_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, current_refresh_token, created_at, last_updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.PasswordHash,
		&m.AvatarURL,
		&m.CoverImageURL,
		&m.CurrentRefreshToken,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Email,
		modelUser.FullName,
		modelUser.PasswordHash,
		modelUser.AvatarURL,
		modelUser.CoverImageURL,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("username or email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`

	modelUser, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	domainUser := mapping.ToDomainUser(*modelUser)
	return &domainUser, nil
}

// FindUserByUsernameOrEmail matches either column; username is compared
// against the stored lowercase form. Empty arguments never match.
func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE (username = $1 AND $1 <> '') OR (email = $2 AND $2 <> '')
		LIMIT 1;
	`
	modelUser, err := scanUser(r.db.QueryRow(ctx, query, username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username or email: %w", err)
	}

	domainUser := mapping.ToDomainUser(*modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1, last_updated_at = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	query := `
        UPDATE users
        SET current_refresh_token = $1, last_updated_at = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshToken, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET current_refresh_token = NULL, last_updated_at = $1
        WHERE user_id = $2;
    `
	// No rows-affected check: clearing an already-cleared slot is idempotent.
	if _, err := r.db.Exec(ctx, query, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// CompareAndSwapRefreshToken rotates the slot in a single conditional UPDATE.
// The WHERE clause on the previous value is what makes concurrent rotations
// of the same token resolve to exactly one winner.
func (r *PgxUserRepository) CompareAndSwapRefreshToken(ctx context.Context, userID string, expected, next string) (bool, error) {
	query := `
        UPDATE users
        SET current_refresh_token = $1, last_updated_at = $2
        WHERE user_id = $3 AND current_refresh_token = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, next, time.Now(), userID, expected)
	if err != nil {
		return false, fmt.Errorf("failed to compare-and-swap refresh token: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}
