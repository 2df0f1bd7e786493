package db

import (
	"strings"

	"blog/config"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		dialector = sqlite.Open(sqliteDSN(config.SQLITE_FILE))
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		log.Fatalf("Cannot open database: %v", err)
	}
	Instance = db
}

// sqliteDSN turns a SQLite file name into a DSN with foreign keys
// enabled. SQLite ships with foreign keys off and the pragma is
// per-connection, so it has to travel in the DSN where every pooled
// connection picks it up; the Post author/group delete rules depend
// on it.
func sqliteDSN(file string) string {
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=1"
	}
	return file + "?_foreign_keys=1"
}
