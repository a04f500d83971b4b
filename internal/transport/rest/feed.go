package rest

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

const feedItemLimit = 50

// @Summary RSS-лента блога
// @Description Возвращает последние публикации в формате RSS 2.0
// @Tags Лента
// @Produce xml
// @Success 200 {string} string "RSS XML"
// @Router /feed.xml [get]
func (h *Handler) getRSSFeed(c *gin.Context) {
	posts, _, err := h.services.Post.List(c.Request.Context(), domain.PostFilter{
		PublishedOnly: true,
		Limit:         feedItemLimit,
	})
	if err != nil {
		h.logger.Error("ошибка формирования RSS-ленты", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка формирования ленты")
		return
	}

	baseURL := h.config.Site.BaseURL

	feed := &feeds.Feed{
		Title:       h.config.Site.Title,
		Link:        &feeds.Link{Href: baseURL},
		Description: "Блог компании",
		Updated:     time.Now(),
	}

	for _, post := range posts {
		published := post.CreatedAt
		if post.PublishedAt != nil {
			published = *post.PublishedAt
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Title:       post.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog/%s", baseURL, post.Slug)},
			Description: post.Excerpt,
			Created:     published,
			Id:          fmt.Sprintf("%s/blog/%s", baseURL, post.Slug),
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		h.logger.Error("ошибка сериализации RSS", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка формирования ленты")
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// @Summary Карта сайта
// @Description Возвращает sitemap.xml с публикациями и проектами
// @Tags Лента
// @Produce xml
// @Success 200 {string} string "Sitemap XML"
// @Router /sitemap.xml [get]
func (h *Handler) getSitemap(c *gin.Context) {
	ctx := c.Request.Context()
	baseURL := h.config.Site.BaseURL

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: baseURL},
			{Loc: baseURL + "/blog"},
			{Loc: baseURL + "/projects"},
			{Loc: baseURL + "/team"},
			{Loc: baseURL + "/booking"},
		},
	}

	posts, _, err := h.services.Post.List(ctx, domain.PostFilter{
		PublishedOnly: true,
		Limit:         1000,
	})
	if err != nil {
		h.logger.Error("ошибка получения публикаций для sitemap", zap.Error(err))
	} else {
		for _, post := range posts {
			urlSet.URLs = append(urlSet.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/blog/%s", baseURL, post.Slug),
				LastMod: post.UpdatedAt.Format("2006-01-02"),
			})
		}
	}

	projects, _, err := h.services.Project.List(ctx, true, 1000, 0)
	if err != nil {
		h.logger.Error("ошибка получения проектов для sitemap", zap.Error(err))
	} else {
		for _, project := range projects {
			urlSet.URLs = append(urlSet.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/projects/%s", baseURL, project.Slug),
				LastMod: project.UpdatedAt.Format("2006-01-02"),
			})
		}
	}

	offerings, err := h.services.Offering.List(ctx, true)
	if err != nil {
		h.logger.Error("ошибка получения услуг для sitemap", zap.Error(err))
	} else {
		for _, offering := range offerings {
			urlSet.URLs = append(urlSet.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/services/%s", baseURL, offering.Slug),
				LastMod: offering.UpdatedAt.Format("2006-01-02"),
			})
		}
	}

	data, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		h.logger.Error("ошибка сериализации sitemap", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка формирования карты сайта")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), data...))
}
