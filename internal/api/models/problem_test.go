package models_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vayura/oxygen-calculator/internal/api/models"
)

func TestProblem_Write(t *testing.T) {
	problem := models.NewBadRequest("req_abc", "input out of range", []models.FieldError{
		{Field: "aqi", Message: "must be between 0 and 500"},
	})
	problem.Instance = "/calculate"

	rec := httptest.NewRecorder()
	problem.Write(rec)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req_abc", rec.Header().Get("X-Request-Id"))

	var decoded models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, models.ProblemTypeValidation, decoded.Type)
	assert.Equal(t, "input out of range", decoded.Detail)
	assert.Equal(t, "/calculate", decoded.Instance)
	require.Len(t, decoded.Errors, 1)
	assert.Equal(t, "aqi", decoded.Errors[0].Field)
}

func TestProblemConstructors(t *testing.T) {
	tests := []struct {
		name       string
		problem    *models.Problem
		wantStatus int
		wantType   string
	}{
		{"not found", models.NewNotFound("t", "d"), http.StatusNotFound, models.ProblemTypeNotFound},
		{"too many requests", models.NewTooManyRequests("t", "d"), http.StatusTooManyRequests, models.ProblemTypeTooManyRequests},
		{"internal", models.NewInternalError("t", "d"), http.StatusInternalServerError, models.ProblemTypeInternal},
		{"unavailable", models.NewServiceUnavailable("t", "d"), http.StatusServiceUnavailable, models.ProblemTypeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.problem.Status)
			assert.Equal(t, tt.wantType, tt.problem.Type)
			assert.Equal(t, "t", tt.problem.TraceID)
			assert.Equal(t, "d", tt.problem.Detail)
		})
	}
}
