package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/database"
)

// HealthHandler reports liveness and the store connection state
type HealthHandler struct {
	health *database.HealthState
	env    string
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(health *database.HealthState, env string) *HealthHandler {
	return &HealthHandler{
		health: health,
		env:    env,
	}
}

// Health handles the GET /health endpoint. It always answers 200 while the
// process is up; the body carries the store state.
func (h *HealthHandler) Health(c *gin.Context) {
	snap := h.health.Snapshot()

	resp := dto.HealthResponse{
		Status:   "OK",
		Database: snap.State.String(),
		DBCode:   int(snap.State),
		Env:      h.env,
	}
	if snap.State != database.StateConnected && snap.Err != nil {
		msg := snap.Err.Error()
		resp.Error = &msg
	}

	c.JSON(http.StatusOK, resp)
}
