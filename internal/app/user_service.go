package app

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventbook/internal/model"
	"eventbook/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

// UpdateUserInput carries a partial update: a nil field keeps the stored
// value. A JSON null behaves the same as omitting the field.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List() ([]model.Profile, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	profiles := make([]model.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

func (s *UserService) Get(id uint) (*model.Profile, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	p := user.Profile()
	return &p, nil
}

// Update merges the input over the stored row. A payload that changes
// nothing is reported as ErrNoChanges rather than a silent success.
func (s *UserService) Update(id uint, input UpdateUserInput) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	name := user.Name
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	email := user.Email
	if input.Email != nil {
		email = strings.TrimSpace(strings.ToLower(*input.Email))
	}
	if name == "" || email == "" {
		return ErrInvalidInput
	}

	passwordHash := user.PasswordHash
	rehashed := false
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password failed: %w", err)
		}
		passwordHash = string(hash)
		rehashed = true
	}

	// sqlite reports a row as changed even when the values are identical,
	// so the no-op case is decided here.
	if !rehashed && name == user.Name && email == user.Email {
		return ErrNoChanges
	}

	rows, err := s.userRepo.Update(id, name, email, passwordHash)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	if rows == 0 {
		return ErrNoChanges
	}
	return nil
}

func (s *UserService) ChangePassword(id uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}
	return s.userRepo.UpdatePassword(id, string(hash))
}

func (s *UserService) Delete(id uint) error {
	rows, err := s.userRepo.DeleteByID(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
