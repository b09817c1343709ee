package handlers

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"prompt-gallery/apperr"
	"prompt-gallery/dto"
	"prompt-gallery/repositories"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestWriteErrorValidation(t *testing.T) {
	c, w := testContext(t)

	writeError(c, apperr.NewValidation("title", "topic"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"title", "topic"}, body.Fields)
}

func TestWriteErrorNotFound(t *testing.T) {
	c, w := testContext(t)

	writeError(c, apperr.NewNotFound("item"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "item not found")
}

func TestWriteErrorUnknown(t *testing.T) {
	c, w := testContext(t)

	writeError(c, errors.New("cursor decode failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBuildURLSet(t *testing.T) {
	updated := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	set := buildURLSet("https://example.com/", "/item/", []repositories.SlugEntry{
		{Slug: "neon-alley", UpdatedAt: updated},
		{Slug: "lone-astronaut", UpdatedAt: updated},
	})

	assert.Len(t, set.URLs, 2)
	assert.Equal(t, "https://example.com/item/neon-alley", set.URLs[0].Loc)
	assert.Equal(t, "2026-03-14T09:30:00Z", set.URLs[0].LastMod)
	assert.Equal(t, "weekly", set.URLs[0].ChangeFreq)
	assert.Equal(t, "0.8", set.URLs[0].Priority)

	body, err := xml.Marshal(set)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, string(body), "<loc>https://example.com/item/lone-astronaut</loc>")
}

func TestBuildURLSetEmpty(t *testing.T) {
	set := buildURLSet("https://example.com", "/article/", nil)
	assert.Empty(t, set.URLs)
}
