package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"prompt-gallery/apperr"
	"prompt-gallery/config"
	"prompt-gallery/db"
	"prompt-gallery/dto"
	"prompt-gallery/logger"
	"prompt-gallery/storage"
)

// writeError maps an application error to its HTTP envelope. Unexpected
// errors are logged in full and sanitized in production.
func writeError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		logger.ErrorWithFields("request failed", logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})
		if config.GetConfig().IsProduction() {
			c.JSON(status, dto.ErrorResponseDTO{Error: "internal server error"})
			return
		}
	}
	c.JSON(status, dto.ErrorResponseDTO{Error: err.Error(), Fields: apperr.FieldsOf(err)})
}

// formFile loads a multipart file into memory. A missing file is not an
// error here; the services decide whether one was required.
func formFile(c *gin.Context, field string) (*storage.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, apperr.NewValidation(field + " is not a valid upload")
	}
	f, err := header.Open()
	if err != nil {
		return nil, apperr.NewValidation(field + " could not be read")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperr.NewValidation(field + " could not be read")
	}
	return &storage.File{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

// HealthHandler reports liveness, including database reachability.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if client := db.Client(); client != nil {
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
