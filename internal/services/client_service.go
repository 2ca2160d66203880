package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrClientNotFound is returned when a client does not exist or belongs to another user
var ErrClientNotFound = errors.New("client_not_found")

// NewClientRequest describes a client to register
type NewClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
	Scopes string `json:"scopes"`
}

// ClientService manages the OAuth clients allowed to call write endpoints
type ClientService interface {
	// CreateClient registers a client owned by userID and returns it with its plain secret
	CreateClient(ctx context.Context, userID uint, req NewClientRequest) (*models.OAuthClient, string, error)
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, userID uint) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, userID uint, req NewClientRequest) (*models.OAuthClient, string, error) {
	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing client secret: %w", err)
	}

	scopes := strings.TrimSpace(req.Scopes)
	if scopes == "" {
		scopes = "read write"
	}

	client := &models.OAuthClient{
		ID:         uuid.New().String(),
		Secret:     string(hashedSecret),
		Name:       req.Name,
		Domain:     req.Domain,
		UserID:     userID,
		Scopes:     scopes,
		GrantTypes: "client_credentials",
	}
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, "", err
	}
	return client, secret, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
