package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database handle once at startup. The default is the
// single-file sqlite store; DB_DRIVER=mysql switches to MySQL with the
// connection built from env vars. TranslateError lets duplicate-key inserts
// surface as gorm.ErrDuplicatedKey on both drivers.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_HOST", "127.0.0.1"),
			envOr("DB_PORT", "3306"),
			os.Getenv("DB_NAME"),
		)
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(envOr("DB_PATH", "quisin.db")), cfg)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
