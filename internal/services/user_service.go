package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// UserService manages the operators that own OAuth clients
type UserService interface {
	// GetOrCreateUser returns the user with the given email, creating it with role when missing
	GetOrCreateUser(ctx context.Context, email, name, role string) (*models.User, bool, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) GetOrCreateUser(ctx context.Context, email, name, role string) (*models.User, bool, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = models.User{Email: email, Name: name, Role: role}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
