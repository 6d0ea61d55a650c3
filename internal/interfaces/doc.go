// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - UserStore, CourseStore, LevelStore, FlashcardStore: per-entity
//     repositories (internal/services/interfaces.go), implemented under
//     internal/database/<entity>/
//   - UnitOfWork: runs a function against transaction-scoped repositories
//     (internal/services/interfaces.go), implemented by internal/database/store
//
// ## Service Interfaces
//
//   - UserService, CourseService, LevelService, FlashcardService: what the
//     HTTP controllers call (internal/http/stores.go)
//   - AuditLog: read side of the audit trail (internal/http/stores.go)
//
// ## Audit Interfaces
//
//   - Auditor: write side, called by services after a commit (internal/services/interfaces.go)
//   - AuditEventCleaner: retention sweep (internal/tasks/cleanup_audit.go)
//   - AuditCleanupRunner: how the scheduler triggers a sweep (internal/scheduler/audit_cleanup.go)
//
// # Adding a New Entity
//
//  1. Add the model to internal/entities/ and to database.Migrate
//
//  2. Create sub-package internal/database/<entity>/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add the store interface and a field on services.Repositories, and
//     construct the repository in store.Repositories
//
//  4. Write the service in internal/services/ and its controller in internal/http/
//
//  5. Add compile-time checks:
//
//     var _ services.DeckStore = (*decks.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
