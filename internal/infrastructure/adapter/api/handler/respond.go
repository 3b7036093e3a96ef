package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/dto"
)

// errBodyTooLarge marks a request body cut off by the size limit
var errBodyTooLarge = errors.New("request body too large")

// statusFor maps a domain error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errs.ErrDuplicateUser):
		return http.StatusConflict
	case errs.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Server-side failures are logged
// and answered with an opaque message; client errors carry their cause.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	fields := errorLogFields(err)
	fields["operation"] = operation
	fields["status"] = status
	fields["error"] = err.Error()
	fields["error_code"] = errs.ErrorCode(err)

	if status >= http.StatusInternalServerError {
		logger.Error(fmt.Sprintf("Failed to %s", operation), fields)
		c.JSON(status, dto.InternalError())
		return
	}

	logger.Warn(fmt.Sprintf("Rejected request to %s", operation), fields)
	c.JSON(status, dto.ErrorResponse{
		Error: err.Error(),
		Code:  errs.ErrorCode(err),
	})
}

// errorLogFields collects the structured fields of any batch or field error
// in the chain. The outer batch context wins over the inner field error.
func errorLogFields(err error) map[string]any {
	fields := make(map[string]any)
	var fieldErr *errs.FieldError
	if errors.As(err, &fieldErr) {
		for k, v := range fieldErr.LogFields() {
			fields[k] = v
		}
	}
	var batchErr *errs.BatchError
	if errors.As(err, &batchErr) {
		for k, v := range batchErr.LogFields() {
			fields[k] = v
		}
	}
	return fields
}

// bindJSON decodes the request body into dst, classifying failures as
// client errors
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", errBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: malformed JSON body: %v", errs.ErrInvalidRequest, err)
	}
	return nil
}

// bindBatch decodes a JSON array of objects. Null elements are passed
// through so the decoder reports their index.
func bindBatch(c *gin.Context, entity string) ([]map[string]any, error) {
	var raw any
	if err := bindJSON(c, &raw); err != nil {
		return nil, err
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w of %s", errs.ErrInvalidBatch, entity)
	}

	batch := make([]map[string]any, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case map[string]any:
			batch = append(batch, v)
		case nil:
			batch = append(batch, nil)
		default:
			return nil, fmt.Errorf("%w of %s objects, element %d is %T", errs.ErrInvalidBatch, entity, i, item)
		}
	}
	return batch, nil
}

// bindObject decodes a JSON object body
func bindObject(c *gin.Context) (map[string]any, error) {
	var raw any
	if err := bindJSON(c, &raw); err != nil {
		return nil, err
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", errs.ErrInvalidRequest)
	}
	return obj, nil
}
