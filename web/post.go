package web

import (
	"net/http"
	"strconv"

	"blog/auth"
	"blog/db"
	"blog/forms"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// PostNew renders the blank post form on GET and creates the post on a
// valid POST. Registered through the auth router, so anonymous users
// never reach it.
func PostNew(c *gin.Context, user *models.User) {
	form := forms.PostForm{}
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		valid, err := form.Validate()
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if valid {
			post := models.Post{AuthorID: user.ID}
			form.Apply(&post)
			if err := db.Instance.Create(&post).Error; err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Redirect(http.StatusFound, "/")
			return
		}
	}
	renderPostForm(c, "new_post.tmpl", form, gin.H{})
}

// PostEdit lets the author change a post's text and group. Anyone else,
// anonymous included, is bounced back to the post detail page without
// touching the stored row.
func PostEdit(c *gin.Context) {
	username := c.Param("username")
	detailPath := "/" + username + "/" + c.Param("postID") + "/"
	user := auth.LoadSession(c).User()
	if user.ID == 0 || user.Username != username {
		c.Redirect(http.StatusFound, detailPath)
		return
	}
	id, err := strconv.ParseUint(c.Param("postID"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByAuthorUsername(id, username)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	form := forms.FromPost(&post)
	if c.Request.Method == http.MethodPost {
		form = forms.PostForm{}
		if err = c.ShouldBindWith(&form, binding.Form); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		valid, verr := form.Validate()
		if verr != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if valid {
			form.Apply(&post)
			// Only text and group may change; the publication
			// timestamp stays as it was
			err = db.Instance.Model(&post).
				Updates(map[string]interface{}{"text": post.Text, "group_id": post.GroupID}).Error
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Redirect(http.StatusFound, detailPath)
			return
		}
	}
	renderPostForm(c, "edit_post.tmpl", form, gin.H{"post": post})
}

func renderPostForm(c *gin.Context, name string, form forms.PostForm, data gin.H) {
	groups, err := models.AllGroups()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	data["form"] = form
	data["groups"] = groups
	render(c, http.StatusOK, name, data)
}
