package web

import (
	"net/http"

	"blog/models"
	"blog/pagination"

	"github.com/gin-gonic/gin"
)

// Index shows the latest posts across the whole site, newest first.
func Index(c *gin.Context) {
	page := pagination.GetPage(models.PostCountAll(), c.Query("page"))
	posts, err := models.LatestPosts(page.Offset(), page.PerPage)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{
		"page":      posts,
		"paginator": page,
	})
}

// GroupFeed shows the latest posts filed under the group identified by
// the slug path segment.
func GroupFeed(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		lookupFailed(c, err)
		return
	}
	page := pagination.GetPage(models.PostCountByGroup(group.ID), c.Query("page"))
	posts, err := models.LatestGroupPosts(group.ID, page.Offset(), page.PerPage)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "group.tmpl", gin.H{
		"group":     group,
		"page":      posts,
		"paginator": page,
	})
}
