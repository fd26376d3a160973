// Package userrepo provides the user store used for role lookups.
// The coordination core never manages user lifecycles; it only needs to know
// whether a given user holds a role, so the table carries just the identity
// and the role set.
package userrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserDTO represents the database structure for persisting user role sets.
type UserDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string
	Roles     pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}
