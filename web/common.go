package web

import (
	"errors"
	"net/http"

	"blog/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// render writes an HTML page, adding the current user (if any) for the
// shared navigation block.
func render(c *gin.Context, status int, name string, data gin.H) {
	user := auth.LoadSession(c).User()
	if user.ID != 0 {
		data["user"] = user
	}
	c.HTML(status, name, data)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found.tmpl", gin.H{})
}

// lookupFailed maps a lookup error to the right page: unknown rows are
// a 404, anything else is a persistence failure and surfaces as a 500.
func lookupFailed(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c)
		return
	}
	c.AbortWithStatus(http.StatusInternalServerError)
}
