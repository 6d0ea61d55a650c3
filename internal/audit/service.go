// Package audit records create, update and delete events for the content
// hierarchy and exposes them for inspection and retention cleanup.
package audit

import (
	"encoding/json"
	"sync"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/database/audit"
	"github.com/mrlokans/flashcards/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo  *audit.Repository
	async bool
	wg    sync.WaitGroup
}

// NewService creates a new audit service. When async is true events are
// written in the background; call Wait before closing the database.
func NewService(repo *audit.Repository, async bool) *Service {
	return &Service{repo: repo, async: async}
}

// LogAsync records an audit event in the background (non-blocking) unless
// the service was built synchronous.
func (s *Service) LogAsync(event *entities.AuditEvent) {
	if !s.async {
		s.write(event)
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.write(event)
	}()
}

// Wait blocks until all background writes have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) write(event *entities.AuditEvent) {
	if err := s.repo.LogEvent(event); err != nil {
		log.WithError(err).WithField("action", event.Action).Error("Failed to log audit event")
	}
}

// LogCreate records the creation of an entity.
func (s *Service) LogCreate(entityType string, entityID uint, name string) {
	s.LogAsync(&entities.AuditEvent{
		EventType:   entities.AuditEventCreate,
		Action:      entityType + "_create",
		Description: "Created " + entityType + ": " + truncate(name, 200),
		EntityType:  entityType,
		EntityID:    &entityID,
		Status:      entities.AuditStatusSuccess,
	})
}

// LogUpdate records a change to an entity. fields lists the attributes the
// caller supplied.
func (s *Service) LogUpdate(entityType string, entityID uint, fields []string) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventUpdate,
		Action:      entityType + "_update",
		Description: "Updated " + entityType,
		EntityType:  entityType,
		EntityID:    &entityID,
		Status:      entities.AuditStatusSuccess,
	}
	if mdBytes, err := json.Marshal(map[string]any{"fields": fields}); err == nil {
		event.Metadata = string(mdBytes)
	}
	s.LogAsync(event)
}

// LogDelete records a deletion along with the rows removed by the cascade.
func (s *Service) LogDelete(entityType string, entityID uint, name string, removed database.CascadeResult) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventDelete,
		Action:      entityType + "_delete",
		Description: "Deleted " + entityType + ": " + truncate(name, 200),
		EntityType:  entityType,
		EntityID:    &entityID,
		Status:      entities.AuditStatusSuccess,
	}
	if mdBytes, err := json.Marshal(removed); err == nil {
		event.Metadata = string(mdBytes)
	}
	s.LogAsync(event)
}

// Recent returns the newest events, optionally filtered by entity type.
func (s *Service) Recent(entityType string, limit int) ([]entities.AuditEvent, error) {
	return s.repo.GetRecentEvents(entityType, limit)
}

// History returns every event recorded for one entity.
func (s *Service) History(entityType string, entityID uint) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsForEntity(entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens s to at most maxLen characters, never splitting one.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
