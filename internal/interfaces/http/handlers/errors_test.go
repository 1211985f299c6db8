package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/voice-shop/internal/domain/cart"
	"github.com/your-org/voice-shop/internal/pkg/apperr"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", cart.ErrCartNotFound, http.StatusNotFound, `{"error":"cart not found"}`},
		{"wrapped not found", apperr.Wrap("checkout cart c1", cart.ErrCartNotFound), http.StatusNotFound, `{"error":"checkout cart c1: cart not found"}`},
		{"invalid input", cart.ErrInvalidQuantity, http.StatusBadRequest, `{"error":"quantity must be an integer between 1 and 10000: invalid input"}`},
		{"internal", errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}
