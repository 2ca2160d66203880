package auth

import (
	"context"
	"errors"
	"time"

	internalmodels "github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"
)

// GormClientStore resolves OAuth clients from the oauth_clients table
type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client internalmodels.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, oauth2errors.ErrInvalidClient
		}
		return nil, err
	}

	// OAuthClient implements ClientPasswordVerifier, so secrets are checked against the bcrypt hash
	return &client, nil
}

// GormTokenStore persists issued tokens in the oauth_tokens table.
// Only the client_credentials grant is served, so code operations report no data.
type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	token := &internalmodels.OAuthToken{
		ClientID:    info.GetClientID(),
		AccessToken: info.GetAccess(),
		Scopes:      info.GetScope(),
		ExpiresAt:   info.GetAccessCreateAt().Add(info.GetAccessExpiresIn()),
	}
	if userID := info.GetUserID(); userID != "" {
		token.UserID = &userID
	}
	if refresh := info.GetRefresh(); refresh != "" {
		token.RefreshToken = &refresh
	}

	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return nil
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.WithContext(ctx).Where("access_token = ?", access).Delete(&internalmodels.OAuthToken{}).Error
}

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return s.db.WithContext(ctx).Where("refresh_token = ?", refresh).Delete(&internalmodels.OAuthToken{}).Error
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	return nil, nil
}

func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	var token internalmodels.OAuthToken
	if err := s.db.WithContext(ctx).Where("access_token = ?", access).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toTokenInfo(token), nil
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	var token internalmodels.OAuthToken
	if err := s.db.WithContext(ctx).Where("refresh_token = ?", refresh).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toTokenInfo(token), nil
}

func toTokenInfo(token internalmodels.OAuthToken) *models.Token {
	info := &models.Token{
		ClientID:        token.ClientID,
		Access:          token.AccessToken,
		AccessCreateAt:  token.CreatedAt,
		AccessExpiresIn: token.ExpiresAt.Sub(token.CreatedAt),
		Scope:           token.Scopes,
	}
	if token.UserID != nil {
		info.UserID = *token.UserID
	}
	if token.RefreshToken != nil {
		info.Refresh = *token.RefreshToken
	}
	return info
}

// PurgeExpired deletes tokens that expired before now and returns how many were removed
func (s *GormTokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&internalmodels.OAuthToken{})
	return result.RowsAffected, result.Error
}
