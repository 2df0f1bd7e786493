package forms

import (
	"strconv"
	"strings"
	"testing"

	"blog/config"
	"blog/db"
	"blog/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db.Init()
	models.Init()
}

func TestValidate(t *testing.T) {
	initTestDB(t)
	group, err := models.GroupCreate("Cats", "cats", "")
	if err != nil {
		t.Fatalf("GroupCreate: %v", err)
	}
	groupID := strconv.FormatUint(group.ID, 10)

	tests := []struct {
		name      string
		form      PostForm
		wantValid bool
		wantField string
	}{
		{"text and no group", PostForm{Text: "hello"}, true, ""},
		{"text and existing group", PostForm{Text: "hello", Group: groupID}, true, ""},
		{"empty text", PostForm{Text: ""}, false, "text"},
		{"whitespace-only text", PostForm{Text: " \t\n "}, false, "text"},
		{"unknown group id", PostForm{Text: "hello", Group: "9999"}, false, "group"},
		{"non-numeric group", PostForm{Text: "hello", Group: "cats"}, false, "group"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.form.Validate()
			if err != nil {
				t.Fatalf("Validate(): %v", err)
			}
			if got != tt.wantValid {
				t.Fatalf("Validate() = %v, want %v (errors: %v)", got, tt.wantValid, tt.form.Errors)
			}
			if tt.wantField != "" {
				if _, ok := tt.form.Errors[tt.wantField]; !ok {
					t.Errorf("no error recorded for field %q: %v", tt.wantField, tt.form.Errors)
				}
			}
		})
	}
}

func TestValidateStoreFailure(t *testing.T) {
	initTestDB(t)
	// A broken store is a server error, not a "select a valid group"
	if err := db.Instance.Exec("DROP TABLE groups").Error; err != nil {
		t.Fatalf("drop groups: %v", err)
	}
	form := PostForm{Text: "hello", Group: "1"}
	valid, err := form.Validate()
	if err == nil {
		t.Fatal("expected the store failure to surface as an error")
	}
	if valid {
		t.Error("form reported valid despite the failed lookup")
	}
	if _, ok := form.Errors["group"]; ok {
		t.Errorf("store failure recorded as a field error: %v", form.Errors)
	}
}

func TestApplySetsOnlyTextAndGroup(t *testing.T) {
	initTestDB(t)
	group, _ := models.GroupCreate("Cats", "cats", "")
	form := PostForm{Text: "updated", Group: strconv.FormatUint(group.ID, 10)}
	if valid, err := form.Validate(); err != nil || !valid {
		t.Fatalf("unexpected errors: %v %v", err, form.Errors)
	}
	post := models.Post{ID: 7, AuthorID: 3, Text: "original"}
	form.Apply(&post)
	if post.Text != "updated" {
		t.Errorf("Text = %q, want updated", post.Text)
	}
	if post.GroupID == nil || *post.GroupID != group.ID {
		t.Errorf("GroupID = %v, want %d", post.GroupID, group.ID)
	}
	if post.ID != 7 || post.AuthorID != 3 {
		t.Error("Apply touched fields other than text and group")
	}
}

func TestApplyClearsGroup(t *testing.T) {
	initTestDB(t)
	group, _ := models.GroupCreate("Cats", "cats", "")
	form := PostForm{Text: "no more group"}
	if valid, err := form.Validate(); err != nil || !valid {
		t.Fatalf("unexpected errors: %v %v", err, form.Errors)
	}
	post := models.Post{Text: "original", GroupID: &group.ID}
	form.Apply(&post)
	if post.GroupID != nil {
		t.Errorf("GroupID = %v, want nil", post.GroupID)
	}
}

func TestFromPost(t *testing.T) {
	groupID := uint64(4)
	form := FromPost(&models.Post{Text: "existing", GroupID: &groupID})
	if form.Text != "existing" {
		t.Errorf("Text = %q, want existing", form.Text)
	}
	if form.Group != "4" {
		t.Errorf("Group = %q, want 4", form.Group)
	}
	form = FromPost(&models.Post{Text: "no group"})
	if form.Group != "" {
		t.Errorf("Group = %q, want empty", form.Group)
	}
}
