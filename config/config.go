package config

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

var (
	TLS_DOMAINS  = ""        // e.g. "example.com,example2.com"
	MYSQL_DSN    = ""        // MySQL will be used if this is set
	SQLITE_FILE  = "blog.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true
	SESSION_KEY  = "" // Falls back to a random key, which invalidates all sessions on restart
)

// Load reads the settings from the environment. Called from main after
// godotenv has had a chance to populate the environment from a .env file.
func Load() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	if SESSION_KEY == "" {
		SESSION_KEY = uuid.NewString()
	}
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
