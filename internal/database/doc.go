// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (SQLite or PostgreSQL), migrations
//	├── scopes.go        # Shared query scopes (sibling ordering)
//	├── users/           # User persistence
//	├── courses/         # Courses and the course -> levels -> flashcards cascade
//	├── levels/          # Levels and the level -> flashcards cascade
//	├── flashcards/      # Flashcards
//	├── audit/           # Audit event log
//	└── store/           # Transactional unit of work over all repositories
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type bound to a *gorm.DB. Bind it to
// a transaction to make several calls atomic:
//
//	db, err := database.NewDatabase("./flashcards.db")
//
//	err = db.DB.Transaction(func(tx *gorm.DB) error {
//		return courses.NewRepository(tx).Delete(courseID)
//	})
//
// Services do not open transactions themselves; they go through store.Store,
// which hands them transaction-bound repositories.
//
// # Ordering
//
// Levels within a course and flashcards within a level are always read
// through ByPosition: order_position ascending, id ascending, unpositioned
// rows first.
//
// # Referential Integrity
//
// Foreign keys carry ON DELETE CASCADE, and SQLite connections are opened with
// the foreign_keys pragma enabled. Repositories still delete descendants
// explicitly, children first, so the cascade does not depend on the pragma.
package database
