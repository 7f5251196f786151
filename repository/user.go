package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/infra"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertByEmail creates the user on first login and refreshes the external
// identity fields on every subsequent one. Login is idempotent on email.
func (r *UserRepository) UpsertByEmail(identity *infra.VerifiedIdentity) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("email = ?", identity.Email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = entity.User{
			ID:        uuid.New(),
			GoogleID:  &identity.Subject,
			Email:     identity.Email,
			FullName:  identity.Name,
			AvatarURL: identity.AvatarURL,
			Role:      entity.RoleUser,
		}
		if err := r.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	user.GoogleID = &identity.Subject
	user.FullName = identity.Name
	user.AvatarURL = identity.AvatarURL
	if err := r.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) FindByID(id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
