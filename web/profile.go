package web

import (
	"net/http"
	"strconv"

	"blog/models"
	"blog/pagination"

	"github.com/gin-gonic/gin"
)

// Profile shows an author's page: total post count plus their latest
// posts, newest first.
func Profile(c *gin.Context) {
	profile, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		lookupFailed(c, err)
		return
	}
	count := profile.PostCount()
	page := pagination.GetPage(count, c.Query("page"))
	posts, err := models.LatestAuthorPosts(profile.ID, page.Offset(), page.PerPage)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"profile":    profile,
		"post_count": count,
		"page":       posts,
		"paginator":  page,
	})
}

// PostView shows a single post. The post id and the author username in
// the path both have to match; a post reached under the wrong username
// is a not-found, never a redirect.
func PostView(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("postID"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByAuthorUsername(id, c.Param("username"))
	if err != nil {
		lookupFailed(c, err)
		return
	}
	render(c, http.StatusOK, "post.tmpl", gin.H{
		"profile":    post.Author,
		"post_count": post.Author.PostCount(),
		"post":       post,
	})
}
