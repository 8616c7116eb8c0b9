package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dayplan/dayplan/pkg/services"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("title", "must not be empty"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found maps to 404",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "gone maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrTaskGone),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "completed transition maps to 409",
			err:        fmt.Errorf("%w: task \"x\"", services.ErrTaskCompleted),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "another active maps to 409",
			err:        fmt.Errorf("%w: task \"y\" is already active", services.ErrAnotherTaskActive),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not active maps to 409",
			err:        services.ErrTaskNotActive,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondServiceError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
