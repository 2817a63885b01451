package mapping

import (
	"database/sql"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
	"github.com/vidstream/vidstream_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:              d.UserID,
		Username:            d.Username,
		Email:               d.Email,
		FullName:            d.FullName,
		PasswordHash:        d.PasswordHash,
		AvatarURL:           d.AvatarURL,
		CoverImageURL:       toNullString(d.CoverImageURL),
		CurrentRefreshToken: toNullString(d.CurrentRefreshToken),
		CreatedAt:           d.CreatedAt,
		LastUpdatedAt:       d.LastUpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:              m.UserID,
		Username:            m.Username,
		Email:               m.Email,
		FullName:            m.FullName,
		PasswordHash:        m.PasswordHash,
		AvatarURL:           m.AvatarURL,
		CoverImageURL:       m.CoverImageURL.String,
		CurrentRefreshToken: m.CurrentRefreshToken.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
