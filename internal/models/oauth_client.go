package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is an API client allowed to request tokens with the client_credentials grant.
// Secret holds a bcrypt hash, never the plain secret.
type OAuthClient struct {
	ID         string         `json:"client_id" gorm:"primaryKey"`
	Secret     string         `json:"-" gorm:"not null"`
	Name       string         `json:"name"`
	Domain     string         `json:"domain"`
	UserID     uint           `json:"user_id" gorm:"index"` // owning operator, its role ends up in the token
	Scopes     string         `json:"scopes"`               // space-separated
	GrantTypes string         `json:"grant_types"`          // space-separated
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// The methods below satisfy oauth2.ClientInfo and oauth2.ClientPasswordVerifier

func (c *OAuthClient) GetID() string     { return c.ID }
func (c *OAuthClient) GetSecret() string { return c.Secret }
func (c *OAuthClient) GetDomain() string { return c.Domain }
func (c *OAuthClient) IsPublic() bool    { return false }

func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword compares a plain secret against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
