package auth

import (
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc receives the authenticated user explicitly instead of
// reading it from ambient request state.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds the login check + User pre-loading.
// Anonymous callers are sent to the login page with a "next" parameter
// pointing back at the path they asked for.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.Path)
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
