package userrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements RoleChecker using GORM. Role claims for
// eligibility checks come from this store, never from the caller's own
// headers.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// Add registers a user with a role set. Existing users are left untouched,
// which makes startup seeding idempotent.
func (r *GormUserRepository) Add(ctx context.Context, id kernel.UUID, name string, roles []actor.Role) error {
	if err := id.Validate(); err != nil {
		return err
	}

	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
		roleNames = append(roleNames, role.String())
	}

	dto := UserDTO{
		ID:    id.Bytes(),
		Name:  name,
		Roles: roleNames,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}

// UserHasRole reports whether the user holds the role. An unknown user is an
// ObjectNotFoundError rather than a plain false so callers can distinguish
// "no such user" from "user lacks the role".
func (r *GormUserRepository) UserHasRole(ctx context.Context, userID kernel.UUID, role actor.Role) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}
	if err := role.Validate(); err != nil {
		return false, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.NewObjectNotFoundError("user", userID.String())
		}
		return false, err
	}

	for _, name := range dto.Roles {
		if name == role.String() {
			return true, nil
		}
	}

	return false, nil
}
