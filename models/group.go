package models

import "blog/db"

// Group is a named community posts can be filed under. Groups are
// created administratively (see the creategroup command) and are
// immutable through the public handlers.
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupCreate(title, slug, description string) (g Group, err error) {
	g.Title = title
	g.Slug = slug
	g.Description = description
	return g, db.Instance.Create(&g).Error
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

// AllGroups returns every group, for the post form's group selector.
func AllGroups() (result []Group, err error) {
	err = db.Instance.Order("title ASC").Find(&result).Error
	return
}
