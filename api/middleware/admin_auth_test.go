package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"prompt-gallery/api/middleware"
	"prompt-gallery/dto"
)

func adminTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin", middleware.AdminAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	const secret = "super-secret-admin-key"

	cases := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"correct key", secret, http.StatusOK},
		{"wrong key of same length", "super-secret-admin-kez", http.StatusForbidden},
		{"wrong key of different length", "nope", http.StatusForbidden},
		{"missing key", "", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := adminTestRouter(secret)
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tc.key != "" {
				req.Header.Set("X-Admin-Key", tc.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus == http.StatusForbidden {
				var body dto.ErrorResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "forbidden", body.Error)
			}
		})
	}
}

func TestAdminAuthRejectsWhenNoSecretConfigured(t *testing.T) {
	r := adminTestRouter("")
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("X-Admin-Key", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
