package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/services"
)

type ConnectionHandler struct {
	connectionService services.ConnectionService
}

func NewConnectionHandler(connectionService services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// GET /connections
func (ch *ConnectionHandler) ListMine(c *gin.Context) {
	connections, err := ch.connectionService.ListMine(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "connections_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"connections": connections})
}
