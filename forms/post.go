// Package forms validates submitted post data before anything is
// persisted. The rule set is fixed: text must be non-blank and the
// group, when given, must identify an existing Group.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"blog/models"

	"gorm.io/gorm"
)

type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"` // submitted group id, empty means no group

	Errors map[string]string `form:"-"`

	groupID *uint64
}

// FromPost pre-populates a form from an existing post, for the edit page.
func FromPost(p *models.Post) PostForm {
	f := PostForm{Text: p.Text}
	if p.GroupID != nil {
		f.Group = strconv.FormatUint(*p.GroupID, 10)
	}
	return f
}

// Validate runs the field checks and fills Errors. The returned error
// is not a validation problem: it reports a store failure during the
// group lookup and belongs on the caller's server-error path.
func (f *PostForm) Validate() (bool, error) {
	f.Errors = map[string]string{}
	f.groupID = nil
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Post text is required"
	}
	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		if err != nil {
			f.Errors["group"] = "Select a valid group"
		} else if _, err = models.GroupByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
			f.Errors["group"] = "Select a valid group"
		} else if err != nil {
			return false, err
		} else {
			f.groupID = &id
		}
	}
	return len(f.Errors) == 0, nil
}

// Apply copies the validated text and group onto the post. Only those
// two fields are touched; the caller sets the author on new posts and
// persists the result.
func (f *PostForm) Apply(p *models.Post) {
	p.Text = f.Text
	p.GroupID = f.groupID
	p.Group = nil // drop any preloaded group so it cannot go stale
}
