package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"prompt-gallery/repositories"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// buildURLSet renders slug entries into sitemap XML for the given
// frontend path prefix.
func buildURLSet(baseURL, pathPrefix string, entries []repositories.SlugEntry) urlset {
	base := strings.TrimRight(baseURL, "/")
	set := urlset{XMLNS: sitemapNamespace, URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + pathPrefix + e.Slug,
			LastMod:    e.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	return set
}

func writeSitemap(c *gin.Context, set urlset) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml", append([]byte(xml.Header), body...))
}

func ItemsSitemapHandler(repo *repositories.ItemRepository, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := repo.ListSlugs(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		writeSitemap(c, buildURLSet(baseURL, "/item/", entries))
	}
}

func ArticlesSitemapHandler(repo *repositories.ArticleRepository, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := repo.ListPublishedSlugs(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		writeSitemap(c, buildURLSet(baseURL, "/article/", entries))
	}
}
