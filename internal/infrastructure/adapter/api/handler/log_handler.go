package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/dto"
)

// LogHandler serves the audit trail
type LogHandler struct {
	auditUseCase usecase.AuditLogUseCase
	logger       coreport.Logger
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(auditUseCase usecase.AuditLogUseCase, logger coreport.Logger) *LogHandler {
	return &LogHandler{
		auditUseCase: auditUseCase,
		logger:       logger,
	}
}

// ListLogs handles the GET /api/logs endpoint
func (h *LogHandler) ListLogs(c *gin.Context) {
	entries, err := h.auditUseCase.ListLogs(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list logs", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AppendLog handles the POST /api/logs endpoint
func (h *LogHandler) AppendLog(c *gin.Context) {
	body, err := bindObject(c)
	if err != nil {
		respondError(c, h.logger, "append log", err)
		return
	}

	if err := h.auditUseCase.AppendLog(c.Request.Context(), body); err != nil {
		respondError(c, h.logger, "append log", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK)
}
