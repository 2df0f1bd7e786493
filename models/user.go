package models

import (
	"blog/db"
	"blog/utils"

	"github.com/pquerna/otp/totp"
)

type User struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	UpdatedAt  int64
	Username   string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Email      string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password   string `gorm:"type:varchar(128)"`
	PassSalt   string `gorm:"type:varchar(200)"`
	TotpSecret string `gorm:"type:varchar(200)"` // optional second factor, empty means disabled
}

const saltSize = 60

func UserCreate(username, email, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Email = email
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

// CheckTotp returns true when the user has no second factor configured
// or when the given code is valid for the current time window.
func (u *User) CheckTotp(code string) bool {
	if u.TotpSecret == "" {
		return true
	}
	return totp.Validate(code, u.TotpSecret)
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// PostCount is the author's total number of posts, independent of any
// pagination window.
func (u *User) PostCount() int64 {
	var count int64
	db.Instance.Model(&Post{}).Where("author_id = ?", u.ID).Count(&count)
	return count
}
