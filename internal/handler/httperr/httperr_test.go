//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealpedeal/internal/handler/httperr"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes the flat error envelope and keeps the cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		cause := errors.New("connection refused")
		httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.True(t, c.IsAborted())

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Error)

		require.Len(t, c.Errors, 1)
		assert.ErrorIs(t, c.Errors[0].Err, cause)
	})

	t.Run("panics when called without a cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		})
	})
}
