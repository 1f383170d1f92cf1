package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eventbook/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	return users, nil
}

// Update writes name, email and password hash in one statement and reports
// how many rows matched.
func (r *UserRepository) Update(id uint, name, email, passwordHash string) (int64, error) {
	tx := r.db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
		"name":          name,
		"email":         email,
		"password_hash": passwordHash,
	})
	if tx.Error != nil {
		return 0, fmt.Errorf("update user failed: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *UserRepository) UpdatePassword(id uint, passwordHash string) error {
	tx := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if tx.Error != nil {
		return fmt.Errorf("update password failed: %w", tx.Error)
	}
	return nil
}

func (r *UserRepository) DeleteByID(id uint) (int64, error) {
	tx := r.db.Delete(&model.User{}, id)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete user failed: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
