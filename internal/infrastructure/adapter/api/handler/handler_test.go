package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/database"
	mockcore "github.com/amirhossein-jamali/loan-tracker/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/loan-tracker/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testRouter struct {
	engine *gin.Engine
	sync   *mockusecase.MockSyncUseCase
	audit  *mockusecase.MockAuditLogUseCase
	health *database.HealthState
}

func newTestRouter(t *testing.T) *testRouter {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	syncUseCase := mockusecase.NewMockSyncUseCase(t)
	auditUseCase := mockusecase.NewMockAuditLogUseCase(t)
	health := database.NewHealthState()

	syncHandler := NewSyncHandler(syncUseCase, mockLogger)
	logHandler := NewLogHandler(auditUseCase, mockLogger)
	healthHandler := NewHealthHandler(health, "test")

	r := gin.New()
	r.GET("/health", healthHandler.Health)
	r.GET("/api/data", syncHandler.GetData)
	r.POST("/api/users", syncHandler.PostUsers)
	r.DELETE("/api/users/:id", syncHandler.DeleteUser)
	r.POST("/api/loans", syncHandler.PostLoans)
	r.POST("/api/notifications", syncHandler.PostNotifications)
	r.POST("/api/budget", syncHandler.PostBudget)
	r.POST("/api/rankProfit", syncHandler.PostRankProfit)
	r.GET("/api/logs", logHandler.ListLogs)
	r.POST("/api/logs", logHandler.AppendLog)

	return &testRouter{engine: r, sync: syncUseCase, audit: auditUseCase, health: health}
}

func (tr *testRouter) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	t.Run("Disconnected reports the last error", func(t *testing.T) {
		tr := newTestRouter(t)
		w := tr.do(http.MethodGet, "/health", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "OK", body["status"])
		assert.Equal(t, "Disconnected", body["database"])
		assert.Equal(t, float64(0), body["dbCode"])
		assert.Equal(t, database.ErrNotConnected.Error(), body["error"])
		assert.Equal(t, "test", body["env"])
	})

	t.Run("Connected reports a null error", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.health.SetConnected()
		w := tr.do(http.MethodGet, "/health", "")

		body := decodeBody(t, w)
		assert.Equal(t, "Connected", body["database"])
		assert.Equal(t, float64(1), body["dbCode"])
		assert.Contains(t, body, "error")
		assert.Nil(t, body["error"])
	})
}

func TestSyncHandler_GetData(t *testing.T) {
	t.Run("Returns the snapshot", func(t *testing.T) {
		tr := newTestRouter(t)
		snapshot := entity.NewSnapshot(
			[]entity.User{{ID: "u1", Phone: "0901", Rank: entity.RankStandard}},
			nil, nil, entity.DefaultSettings(),
		)
		tr.sync.EXPECT().GetSnapshot(mock.Anything).Return(snapshot, nil)

		w := tr.do(http.MethodGet, "/api/data", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Len(t, body["users"], 1)
		assert.Equal(t, []any{}, body["loans"])
		assert.Equal(t, []any{}, body["notifications"])
		assert.Equal(t, float64(30000000), body["budget"])
		assert.Equal(t, float64(0), body["rankProfit"])
	})

	t.Run("Store failure is opaque", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().GetSnapshot(mock.Anything).Return(nil, errs.ErrDatabaseConnection)

		w := tr.do(http.MethodGet, "/api/data", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	})
}

func TestSyncHandler_PostBatches(t *testing.T) {
	t.Run("Users batch is forwarded", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().ApplyUsers(mock.Anything, []map[string]any{
			{"id": "u1", "phone": "0901"},
			{"phone": "0902", "balance": float64(5)},
		}).Return(nil)

		w := tr.do(http.MethodPost, "/api/users", `[{"id":"u1","phone":"0901"},{"phone":"0902","balance":5}]`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("Empty array succeeds", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().ApplyLoans(mock.Anything, []map[string]any{}).Return(nil)

		w := tr.do(http.MethodPost, "/api/loans", `[]`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	for _, path := range []string{"/api/users", "/api/loans", "/api/notifications"} {
		t.Run("Non-array body is rejected for "+path, func(t *testing.T) {
			tr := newTestRouter(t)

			w := tr.do(http.MethodPost, path, `{"id":"x"}`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Contains(t, body["error"], "expected an array")
			assert.Equal(t, float64(errs.CodeInvalidBatch), body["code"])
		})
	}

	t.Run("Array of scalars is rejected", func(t *testing.T) {
		tr := newTestRouter(t)

		w := tr.do(http.MethodPost, "/api/notifications", `[1,2]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed JSON is rejected", func(t *testing.T) {
		tr := newTestRouter(t)

		w := tr.do(http.MethodPost, "/api/users", `[{"id":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeInvalidRequest), decodeBody(t, w)["code"])
	})

	t.Run("Validation error maps to 400", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().ApplyUsers(mock.Anything, mock.Anything).
			Return(errs.NewBatchError("user", 0, "", errs.ErrMissingMatchKey))

		w := tr.do(http.MethodPost, "/api/users", `[{"fullName":"nobody"}]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeMissingMatchKey), decodeBody(t, w)["code"])
	})

	t.Run("Duplicate phone maps to 409", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().ApplyUsers(mock.Anything, mock.Anything).
			Return(errs.NewBatchError("user", 0, "u2", errs.ErrDuplicateUser))

		w := tr.do(http.MethodPost, "/api/users", `[{"id":"u2","phone":"0901"}]`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Store failure maps to 500", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().ApplyNotifications(mock.Anything, mock.Anything).
			Return(errs.NewBatchError("notification", 1, "n2", errs.ErrDatabaseConnection))

		w := tr.do(http.MethodPost, "/api/notifications", `[{"id":"n1"},{"id":"n2"}]`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	})
}

func TestSyncHandler_Settings(t *testing.T) {
	t.Run("Budget is set", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().SetBudget(mock.Anything, 45000000.0).Return(nil)

		w := tr.do(http.MethodPost, "/api/budget", `{"budget":45000000}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("Numeric string is coerced", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().SetRankProfit(mock.Anything, 0.05).Return(nil)

		w := tr.do(http.MethodPost, "/api/rankProfit", `{"rankProfit":"0.05"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing value is rejected", func(t *testing.T) {
		tr := newTestRouter(t)

		w := tr.do(http.MethodPost, "/api/budget", `{"rankProfit":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeInvalidField), decodeBody(t, w)["code"])
	})

	t.Run("Non-numeric value is rejected", func(t *testing.T) {
		tr := newTestRouter(t)

		w := tr.do(http.MethodPost, "/api/rankProfit", `{"rankProfit":"lots"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Store failure maps to 500", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().SetBudget(mock.Anything, 1.0).Return(errs.ErrDatabaseConnection)

		w := tr.do(http.MethodPost, "/api/budget", `{"budget":1}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSyncHandler_DeleteUser(t *testing.T) {
	t.Run("Deletes by path id", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().DeleteUser(mock.Anything, "u-42").Return(nil)

		w := tr.do(http.MethodDelete, "/api/users/u-42", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("Store failure maps to 500", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sync.EXPECT().DeleteUser(mock.Anything, "u1").Return(errors.New("boom"))

		w := tr.do(http.MethodDelete, "/api/users/u1", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLogHandler(t *testing.T) {
	t.Run("Lists logs", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.audit.EXPECT().ListLogs(mock.Anything).Return([]entity.LogEntry{
			{ID: "a", User: "admin", Time: "2024-01-02", Action: "login"},
		}, nil)

		w := tr.do(http.MethodGet, "/api/logs", "")

		require.Equal(t, http.StatusOK, w.Code)
		var logs []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
		require.Len(t, logs, 1)
		assert.Equal(t, "a", logs[0]["id"])
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.audit.EXPECT().ListLogs(mock.Anything).Return([]entity.LogEntry{}, nil)

		w := tr.do(http.MethodGet, "/api/logs", "")

		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("Appends a log", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.audit.EXPECT().AppendLog(mock.Anything, map[string]any{
			"user": "admin", "time": "2024-01-02", "action": "login",
		}).Return(nil)

		w := tr.do(http.MethodPost, "/api/logs", `{"user":"admin","time":"2024-01-02","action":"login"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.audit.EXPECT().AppendLog(mock.Anything, mock.Anything).Return(errs.ErrMissingLogFields)

		w := tr.do(http.MethodPost, "/api/logs", `{"user":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Array body is rejected", func(t *testing.T) {
		tr := newTestRouter(t)

		w := tr.do(http.MethodPost, "/api/logs", `[]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.ErrInvalidBatch))
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.NewFieldError("user", "balance", "x", errors.New("bad"))))
	assert.Equal(t, http.StatusConflict, statusFor(errs.ErrDuplicateUser))
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusFor(errBodyTooLarge))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errs.ErrNotFound))
	assert.Equal(t, dto.InternalServerErrorMessage, dto.InternalError().Error)
}

func TestErrorLogFields(t *testing.T) {
	t.Run("Batch wrapping a field error carries both", func(t *testing.T) {
		inner := errs.NewFieldError("user", "lastLoanSeq", 3.7, errors.New("not a whole number"))
		fields := errorLogFields(errs.NewBatchError("user", 2, "u-1", inner))

		assert.Equal(t, "batch_error", fields["error_type"])
		assert.Equal(t, 2, fields["index"])
		assert.Equal(t, "u-1", fields["key"])
		assert.Equal(t, "lastLoanSeq", fields["field"])
	})

	t.Run("Plain error has no extra fields", func(t *testing.T) {
		assert.Empty(t, errorLogFields(errs.ErrDatabaseConnection))
	})
}

func TestRespondError_LogsStructuredFields(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["operation"] == "apply users" &&
			fields["index"] == 1 &&
			fields["status"] == http.StatusBadRequest &&
			fields["error_code"] == errs.CodeMissingMatchKey
	})).Once()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, mockLogger, "apply users", errs.NewBatchError("user", 1, "", errs.ErrMissingMatchKey))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
