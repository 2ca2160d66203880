package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ClientController struct {
	clientService services.ClientService
	userService   services.UserService
}

func NewClientController(clientService services.ClientService, userService services.UserService) *ClientController {
	return &ClientController{clientService: clientService, userService: userService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Register a client_credentials client owned by the caller
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body services.NewClientRequest true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Client creation failed"
// @Security BearerAuth
// @Router /api/v1/admin/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req services.NewClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint(middleware.ContextUserID)
	if _, err := cc.userService.GetUserByID(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "unknown_owner"})
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "client_creation_failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // only returned once
		"name":          client.Name,
		"scopes":        client.Scopes,
		"grant_types":   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} models.OAuthClient
// @Failure 500 {object} map[string]string "Failed to retrieve clients"
// @Security BearerAuth
// @Router /api/v1/admin/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), c.GetUint(middleware.ContextUserID))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_retrieve_clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /api/v1/admin/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), c.GetUint(middleware.ContextUserID))
	switch {
	case errors.Is(err, services.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "client_deletion_failed"})
	default:
		c.Status(http.StatusNoContent)
	}
}
