package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prompt-gallery/dto"
	"prompt-gallery/services"
)

func ListArticlesHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, err := svc.ListPublished(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, articles)
	}
}

// GetArticleHandler resolves by slug and counts the view.
func GetArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

func articleInputFromForm(c *gin.Context) (services.ArticleInput, error) {
	file, err := formFile(c, "cover_image")
	if err != nil {
		return services.ArticleInput{}, err
	}
	published, _ := strconv.ParseBool(c.PostForm("is_published"))
	return services.ArticleInput{
		Title:           c.PostForm("title"),
		Excerpt:         c.PostForm("excerpt"),
		Content:         c.PostForm("content"),
		Author:          c.PostForm("author"),
		Category:        c.PostForm("category"),
		Tags:            c.PostForm("tags"),
		IsPublished:     published,
		MetaTitle:       c.PostForm("meta_title"),
		MetaDescription: c.PostForm("meta_description"),
		FocusKeyword:    c.PostForm("focus_keyword"),
		Keywords:        c.PostForm("keywords"),
		CanonicalURL:    c.PostForm("canonical_url"),
		File:            file,
	}, nil
}

func CreateArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := articleInputFromForm(c)
		if err != nil {
			writeError(c, err)
			return
		}
		article, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, article)
	}
}

func UpdateArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := articleInputFromForm(c)
		if err != nil {
			writeError(c, err)
			return
		}
		article, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

func DeleteArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "article deleted successfully"})
	}
}
