package db

import "gorm.io/gorm"

// EnsureSchema creates the named Postgres schema if it does not exist.
// Called before AutoMigrate so schema-qualified table names resolve.
func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}
