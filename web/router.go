package web

import (
	"blog/auth"

	"github.com/gin-gonic/gin"
)

// Register wires the route table. Profile routes live at the root, so
// they are registered last and gin's static segments (group, new, auth)
// take priority over the username parameter.
func Register(router *gin.Engine) {
	authRouter := &auth.Router{Base: router}

	router.GET("/", Index)
	router.GET("/group/:slug/", GroupFeed)
	authRouter.GET("/new/", PostNew)
	authRouter.POST("/new/", PostNew)
	router.GET("/auth/login/", LoginView)
	router.POST("/auth/login/", Login)
	router.POST("/auth/logout/", Logout)
	router.GET("/auth/signup/", SignupView)
	router.POST("/auth/signup/", Signup)
	router.GET("/:username/", Profile)
	router.GET("/:username/:postID/", PostView)
	router.GET("/:username/:postID/edit/", PostEdit)
	router.POST("/:username/:postID/edit/", PostEdit)
}
