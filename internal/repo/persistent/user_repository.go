package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Create(user *entity.User) error
	UpdatePassword(id, hashedPassword string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&m), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.First(&m, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&m), nil
}

func (r *userRepository) Create(user *entity.User) error {
	m := ToUserModel(user)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *userRepository) UpdatePassword(id, hashedPassword string) error {
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("password", hashedPassword).Error
}
