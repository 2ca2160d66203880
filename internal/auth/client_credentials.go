package auth

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/sirupsen/logrus"
)

// HandleToken issues an access token with the client_credentials grant
// @Summary Token Endpoint
// @Description Obtain an access token using the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	grantType := c.PostForm("grant_type")
	if grantType != string(oauth2.ClientCredentials) {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType, "only client_credentials is supported"))
		return
	}

	clientID := c.PostForm("client_id")
	clientSecret := c.PostForm("client_secret")
	if clientID == "" || clientSecret == "" {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest, "client_id and client_secret are required"))
		return
	}

	ti, err := o.server.Manager.GenerateAccessToken(c.Request.Context(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        c.PostForm("scope"),
		Request:      c.Request,
	})
	if err != nil {
		if errors.Is(err, oauth2errors.ErrInvalidClient) || errors.Is(err, oauth2errors.ErrUnauthorizedClient) {
			c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidClient, ""))
			return
		}
		logrus.WithError(err).WithField("client_id", clientID).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token_generation_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": ti.GetAccess(),
		"token_type":   "Bearer",
		"expires_in":   int64(ti.GetAccessExpiresIn().Seconds()),
		"scope":        ti.GetScope(),
	})
}
