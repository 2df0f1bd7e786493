package models

import (
	"blog/db"

	log "github.com/sirupsen/logrus"
)

func Init() {
	if err := db.Instance.AutoMigrate(&User{}); err != nil {
		log.Fatalf("Cannot migrate users: %v", err)
	}
	if err := db.Instance.AutoMigrate(&Group{}); err != nil {
		log.Fatalf("Cannot migrate groups: %v", err)
	}
	if err := db.Instance.AutoMigrate(&Post{}); err != nil {
		log.Fatalf("Cannot migrate posts: %v", err)
	}
}
