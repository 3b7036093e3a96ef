package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/dto"
)

var errMissingValue = errors.New("value is required")

// SyncHandler serves the full-dataset read and the batched writes
type SyncHandler struct {
	syncUseCase usecase.SyncUseCase
	logger      coreport.Logger
}

// NewSyncHandler creates a new sync handler instance
func NewSyncHandler(syncUseCase usecase.SyncUseCase, logger coreport.Logger) *SyncHandler {
	return &SyncHandler{
		syncUseCase: syncUseCase,
		logger:      logger,
	}
}

// GetData handles the GET /api/data endpoint
func (h *SyncHandler) GetData(c *gin.Context) {
	snapshot, err := h.syncUseCase.GetSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "read data", err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// PostUsers handles the POST /api/users endpoint
func (h *SyncHandler) PostUsers(c *gin.Context) {
	h.applyBatch(c, "users", h.syncUseCase.ApplyUsers)
}

// PostLoans handles the POST /api/loans endpoint
func (h *SyncHandler) PostLoans(c *gin.Context) {
	h.applyBatch(c, "loans", h.syncUseCase.ApplyLoans)
}

// PostNotifications handles the POST /api/notifications endpoint
func (h *SyncHandler) PostNotifications(c *gin.Context) {
	h.applyBatch(c, "notifications", h.syncUseCase.ApplyNotifications)
}

func (h *SyncHandler) applyBatch(c *gin.Context, entityName string, apply func(ctx context.Context, batch []map[string]any) error) {
	operation := "save " + entityName

	batch, err := bindBatch(c, entityName)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	if err := apply(c.Request.Context(), batch); err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK)
}

// PostBudget handles the POST /api/budget endpoint
func (h *SyncHandler) PostBudget(c *gin.Context) {
	h.setSetting(c, entity.SettingsBudget, h.syncUseCase.SetBudget)
}

// PostRankProfit handles the POST /api/rankProfit endpoint
func (h *SyncHandler) PostRankProfit(c *gin.Context) {
	h.setSetting(c, entity.SettingsRankProfit, h.syncUseCase.SetRankProfit)
}

func (h *SyncHandler) setSetting(c *gin.Context, field entity.SettingsField, set func(ctx context.Context, value float64) error) {
	operation := "update " + string(field)

	body, err := bindObject(c)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	raw, ok := body[string(field)]
	if !ok || raw == nil {
		respondError(c, h.logger, operation, errs.NewFieldError("settings", string(field), nil, errMissingValue))
		return
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		respondError(c, h.logger, operation, errs.NewFieldError("settings", string(field), raw, err))
		return
	}

	if err := set(c.Request.Context(), value); err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK)
}

// DeleteUser handles the DELETE /api/users/:id endpoint
func (h *SyncHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := h.syncUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.logger, fmt.Sprintf("delete user %q", userID), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK)
}
