package auth

import (
	"blog/db"
	"blog/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

// LoginPath is where anonymous users get redirected when they hit a
// login-required route; the originally requested path is passed back
// in the "next" query parameter.
const LoginPath = "/auth/login/"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) {
	s.Set(userIdKey, user.ID)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) User() (user models.User) {
	id := s.Get(userIdKey)
	if id == nil {
		return
	}
	uid, ok := id.(uint64)
	if !ok {
		return
	}
	user.ID = uid
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}
