package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prompt-gallery/dto"
	"prompt-gallery/services"
)

func ListCollectionsHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := svc.ListPublished(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, collections)
	}
}

// GetCollectionHandler resolves by slug, populates membership and counts
// the view.
func GetCollectionHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, collection)
	}
}

func DownloadCollectionHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.IncrementDownloads(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.CounterResponseDTO{Message: "download recorded", NewCount: count})
	}
}

func collectionInputFromForm(c *gin.Context) (services.CollectionInput, error) {
	file, err := formFile(c, "cover_image")
	if err != nil {
		return services.CollectionInput{}, err
	}
	published, _ := strconv.ParseBool(c.PostForm("is_published"))
	return services.CollectionInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Items:       c.PostForm("items"),
		IsPublished: published,
		File:        file,
	}, nil
}

func CreateCollectionHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := collectionInputFromForm(c)
		if err != nil {
			writeError(c, err)
			return
		}
		collection, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, collection)
	}
}

func UpdateCollectionHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := collectionInputFromForm(c)
		if err != nil {
			writeError(c, err)
			return
		}
		collection, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, collection)
	}
}

func DeleteCollectionHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "collection deleted successfully"})
	}
}
