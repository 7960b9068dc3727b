package domain

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID `json:"_id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserName     string    `json:"userName" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Owns reports whether the account created the recipe. Identifiers are
// compared by value.
func (a *Account) Owns(r *Recipe) bool {
	return a != nil && r != nil && a.ID == r.CreatedBy
}
