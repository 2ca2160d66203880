package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Gin context keys set by BearerAuth
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClientID = "clientID"
	ContextScopes   = "scopes"
)

var allowedRoles = map[string]bool{
	models.RoleAdmin: true,
	models.RoleUser:  true,
}

// BearerAuth validates JWT access tokens issued by the token endpoint (RFC 6750)
// and stores the caller's id, role, client and scopes in the gin context
func BearerAuth(jwtSecret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)

	return func(c *gin.Context) {
		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidRequest, err.Error())
			return
		}

		claims := jwt.MapClaims{}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return jwtSecret, nil
		}); err != nil {
			abortWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", tokenErrorDescription(err))
			return
		}

		if err := setClaims(c, claims); err != nil {
			abortWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}

		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing Authorization header, a Bearer token is required")
	}
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", errors.New("authorization header must use the Bearer scheme")
	}
	if tokenString = strings.TrimSpace(tokenString); tokenString == "" {
		return "", errors.New("bearer token is empty")
	}
	return tokenString, nil
}

func tokenErrorDescription(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token has expired"
	case errors.Is(err, jwt.ErrTokenUsedBeforeIssued), errors.Is(err, jwt.ErrTokenNotValidYet):
		return "token not yet valid"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "token signature is invalid"
	default:
		return "token is malformed or invalid"
	}
}

func abortWithOAuth2Error(c *gin.Context, status int, code, description string) {
	c.AbortWithStatusJSON(status, models.NewOAuth2Error(code, description))
}

// setClaims requires uid and role; aud and scope are optional
func setClaims(c *gin.Context, claims jwt.MapClaims) error {
	userID, err := userIDFromClaims(claims)
	if err != nil {
		return err
	}
	c.Set(ContextUserID, userID)

	role, _ := claims["role"].(string)
	if !allowedRoles[role] {
		return fmt.Errorf("token role %q is not allowed", role)
	}
	c.Set(ContextUserRole, role)

	if aud, err := claims.GetAudience(); err == nil && len(aud) > 0 && aud[0] != "" {
		c.Set(ContextClientID, aud[0])
	}
	if scope, ok := claims["scope"].(string); ok && scope != "" {
		c.Set(ContextScopes, scope)
	}
	return nil
}

// userIDFromClaims reads uid as a numeric string or a JSON number
func userIDFromClaims(claims jwt.MapClaims) (uint, error) {
	switch uid := claims["uid"].(type) {
	case string:
		parsed, err := strconv.ParseUint(uid, 10, 32)
		if err != nil || parsed == 0 {
			return 0, fmt.Errorf("invalid uid claim %q", uid)
		}
		return uint(parsed), nil
	case float64:
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim %v", uid)
		}
		return uint(uid), nil
	default:
		return 0, errors.New("token missing required uid claim")
	}
}
