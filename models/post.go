package models

import (
	"time"

	"blog/db"

	"gorm.io/gorm"
)

// Post is a text entry on the site. CreatedAt is the publication
// timestamp, set once on insert and never updated. Every post has
// exactly one author and at most one group: deleting the author
// deletes the post, deleting the group only clears GroupID.
type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:feed_order"`
	UpdatedAt int64
	AuthorID  uint64
	Author    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
}

func (p Post) PubDate() time.Time {
	return time.Unix(p.CreatedAt, 0)
}

// feedQuery is the base query for all feeds: newest first, ties broken
// by insertion order, author and group preloaded for rendering.
func feedQuery() *gorm.DB {
	return db.Instance.Model(&Post{}).
		Preload("Author").
		Preload("Group").
		Order("created_at DESC, id DESC")
}

func LatestPosts(offset, limit int) (result []Post, err error) {
	err = feedQuery().Offset(offset).Limit(limit).Find(&result).Error
	return
}

func LatestGroupPosts(groupID uint64, offset, limit int) (result []Post, err error) {
	err = feedQuery().Where("group_id = ?", groupID).Offset(offset).Limit(limit).Find(&result).Error
	return
}

func LatestAuthorPosts(authorID uint64, offset, limit int) (result []Post, err error) {
	err = feedQuery().Where("author_id = ?", authorID).Offset(offset).Limit(limit).Find(&result).Error
	return
}

func PostCountAll() (count int64) {
	db.Instance.Model(&Post{}).Count(&count)
	return
}

func PostCountByGroup(groupID uint64) (count int64) {
	db.Instance.Model(&Post{}).Where("group_id = ?", groupID).Count(&count)
	return
}

// PostByAuthorUsername loads the post only when both the id and the
// author's username match; a mismatched pairing is a not-found, not a
// different error.
func PostByAuthorUsername(id uint64, username string) (p Post, err error) {
	err = db.Instance.
		Preload("Author").
		Preload("Group").
		Joins("join users on users.id = posts.author_id").
		Where("posts.id = ? and users.username = ?", id, username).
		First(&p).Error
	return
}
