package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prompt-gallery/dto"
	"prompt-gallery/services"
)

func ListItemsHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		trending, _ := strconv.ParseBool(c.Query("trending"))

		resp, err := svc.List(c.Request.Context(), services.ListItemsInput{
			Model:        c.Query("model"),
			Industry:     c.Query("industry"),
			Topic:        c.Query("topic"),
			MediaType:    c.Query("media_type"),
			TrendingOnly: trending,
			Search:       c.Query("search"),
			Page:         page,
			PageSize:     pageSize,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ListAllItemsHandler backs the admin collection picker.
func ListAllItemsHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetItemHandler resolves an item by slug or id. The featured token is
// dispatched here because gin's route tree cannot hold the static
// segment next to the wildcard.
func GetItemHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("idOrSlug")
		if token == "item-of-day" {
			item, err := svc.ItemOfDay(c.Request.Context())
			if err != nil {
				writeError(c, err)
				return
			}
			if item == nil {
				c.JSON(http.StatusOK, gin.H{"message": "no items available"})
				return
			}
			c.JSON(http.StatusOK, item)
			return
		}

		item, err := svc.Get(c.Request.Context(), token)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func RelatedItemsHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Related(c.Request.Context(), c.Param("idOrSlug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func CopyItemHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.IncrementCopyCount(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.CounterResponseDTO{Message: "copy count updated", NewCount: count})
	}
}

func itemInputFromForm(c *gin.Context) (services.ItemInput, error) {
	file, err := formFile(c, "media")
	if err != nil {
		return services.ItemInput{}, err
	}
	trending, _ := strconv.ParseBool(c.PostForm("is_trending"))
	itemOfDay, _ := strconv.ParseBool(c.PostForm("is_item_of_day"))
	return services.ItemInput{
		Title:          c.PostForm("title"),
		Description:    c.PostForm("description"),
		PromptText:     c.PostForm("prompt_text"),
		NegativePrompt: c.PostForm("negative_prompt"),
		AIModel:        c.PostForm("ai_model"),
		Industry:       c.PostForm("industry"),
		Topic:          c.PostForm("topic"),
		MediaType:      c.PostForm("media_type"),
		Tags:           c.PostForm("tags"),
		IsTrending:     trending,
		IsItemOfDay:    itemOfDay,
		File:           file,
	}, nil
}

func CreateItemHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := itemInputFromForm(c)
		if err != nil {
			writeError(c, err)
			return
		}
		item, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func UpdateItemHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := itemInputFromForm(c)
		if err != nil {
			writeError(c, err)
			return
		}
		item, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func DeleteItemHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "item deleted successfully"})
	}
}
