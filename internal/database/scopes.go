package database

import "gorm.io/gorm"

// ByPosition orders siblings by order_position ascending with id as the
// tie-break. Rows without a position come first, ordered by id among
// themselves. The IS NULL term keeps this identical on SQLite (nulls first)
// and PostgreSQL (nulls last by default).
func ByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("order_position IS NULL DESC").
		Order("order_position ASC").
		Order("id ASC")
}
