package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-gallery/apperr"
	"prompt-gallery/generator"
)

func GeneratePromptHandler(client *generator.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in generator.GenerateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, apperr.NewValidation("request body must be valid JSON"))
			return
		}
		out, err := client.Generate(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func EnhancePromptHandler(client *generator.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in generator.EnhanceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, apperr.NewValidation("request body must be valid JSON"))
			return
		}
		out, err := client.Enhance(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func NegativePromptHandler(client *generator.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in generator.NegativeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, apperr.NewValidation("request body must be valid JSON"))
			return
		}
		out, err := client.GenerateNegative(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
