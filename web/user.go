package web

import (
	"net/http"
	"strings"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Otp      string `form:"otp"`
	Next     string `form:"next"`
}

type SignupRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func LoginView(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", gin.H{"next": c.Query("next")})
}

func Login(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"error": "Username and password are required",
			"next":  c.PostForm("next"),
		})
		return
	}
	user, ok := models.UserLogin(r.Username, r.Password)
	if !ok || !user.CheckTotp(r.Otp) {
		render(c, http.StatusOK, "login.tmpl", gin.H{"error": "Wrong username or password", "next": r.Next})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, safeNext(r.Next))
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

func SignupView(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", gin.H{})
}

func Signup(c *gin.Context) {
	r := SignupRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"error": "All fields are required"})
		return
	}
	if _, err := models.UserCreate(r.Username, r.Email, r.Password); err != nil {
		// Almost always a duplicate username or email
		render(c, http.StatusOK, "signup.tmpl", gin.H{
			"error":    "That username or email is already taken",
			"username": r.Username,
			"email":    r.Email,
		})
		return
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}

// safeNext keeps the post-login redirect on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
