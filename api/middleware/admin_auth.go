package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"prompt-gallery/apperr"
	"prompt-gallery/dto"
	"prompt-gallery/logger"
)

const adminKeyHeader = "X-Admin-Key"

// AdminAuth guards mutating routes with a shared-secret header. The
// comparison is constant-time; length is checked first because
// ConstantTimeCompare leaks inequality of lengths anyway.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(adminKeyHeader)

		if secret == "" {
			// No secret configured means the admin surface is closed,
			// not open.
			logger.WarnWithFields("admin request rejected: no admin secret configured", logger.Fields{
				"ip": c.ClientIP(),
			})
			abortWithError(c, apperr.NewForbidden())
			return
		}

		if len(presented) != len(secret) ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
			logger.WarnWithFields("admin request rejected: bad admin key", logger.Fields{
				"ip":   c.ClientIP(),
				"path": c.Request.URL.Path,
			})
			abortWithError(c, apperr.NewForbidden())
			return
		}

		c.Next()
	}
}

// abortWithError stops the chain and writes the error's HTTP envelope.
func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.HTTPStatus(err), dto.ErrorResponseDTO{Error: err.Error()})
}
