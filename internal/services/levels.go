package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
	"github.com/mrlokans/flashcards/internal/optional"
)

type CreateLevelInput struct {
	CourseID      *uint   `json:"courseId" validate:"required"`
	Name          string  `json:"name" validate:"notblank,max=255"`
	Description   *string `json:"description"`
	OrderPosition *int    `json:"orderPosition"`
}

// UpdateLevelInput is a partial update. A null description or
// orderPosition clears the value.
type UpdateLevelInput struct {
	Name          optional.Value[string] `json:"name"`
	Description   optional.Value[string] `json:"description"`
	OrderPosition optional.Value[int]    `json:"orderPosition"`
}

// LevelService manages the levels of a course.
type LevelService struct {
	uow   UnitOfWork
	audit Auditor
}

func NewLevelService(uow UnitOfWork, auditor Auditor) *LevelService {
	return &LevelService{uow: uow, audit: auditorOrNoop(auditor)}
}

// Create attaches a new level to an existing course.
func (s *LevelService) Create(ctx context.Context, in CreateLevelInput) (LevelResponse, error) {
	if err := validateStruct(in); err != nil {
		return LevelResponse{}, err
	}

	level := &entities.Level{
		CourseID:      *in.CourseID,
		Name:          in.Name,
		Description:   in.Description,
		OrderPosition: in.OrderPosition,
	}

	err := s.uow.InTx(ctx, func(repos Repositories) error {
		exists, err := repos.Courses.CourseExists(level.CourseID)
		if err != nil {
			return fmt.Errorf("failed to check course %d: %w", level.CourseID, err)
		}
		if !exists {
			return notFound(entities.EntityCourse, level.CourseID)
		}
		if err := repos.Levels.CreateLevel(level); err != nil {
			return fmt.Errorf("failed to create level: %w", err)
		}
		return nil
	})
	if err != nil {
		return LevelResponse{}, err
	}

	log.WithFields(log.Fields{"level_id": level.ID, "course_id": level.CourseID}).Info("Level created")
	s.audit.LogCreate(entities.EntityLevel, level.ID, level.Name)
	return toLevelResponse(level), nil
}

func (s *LevelService) GetByID(ctx context.Context, id uint) (LevelResponse, error) {
	var resp LevelResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		level, err := repos.Levels.GetLevelByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityLevel, id)
		}
		resp = toLevelResponse(level)
		return nil
	})
	return resp, err
}

// ListByCourse returns the course's levels in sibling order, each with its
// flashcard summaries. A missing course is NotFound.
func (s *LevelService) ListByCourse(ctx context.Context, courseID uint) ([]LevelResponse, error) {
	var out []LevelResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		exists, err := repos.Courses.CourseExists(courseID)
		if err != nil {
			return fmt.Errorf("failed to check course %d: %w", courseID, err)
		}
		if !exists {
			return notFound(entities.EntityCourse, courseID)
		}

		levels, err := repos.Levels.GetLevelsByCourse(courseID)
		if err != nil {
			return fmt.Errorf("failed to list levels of course %d: %w", courseID, err)
		}
		out = make([]LevelResponse, 0, len(levels))
		for i := range levels {
			out = append(out, toLevelResponse(&levels[i]))
		}
		return nil
	})
	return out, err
}

// Update applies the fields present in the patch. The owning course never changes.
func (s *LevelService) Update(ctx context.Context, id uint, in UpdateLevelInput) (LevelResponse, error) {
	var (
		resp    LevelResponse
		changed []string
	)
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		level, err := repos.Levels.GetLevelByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityLevel, id)
		}

		var p patcher
		p.requiredString("name", in.Name, 255, &level.Name)
		p.nullableString("description", in.Description, 0, &level.Description)
		nullable(&p, "orderPosition", in.OrderPosition, &level.OrderPosition)
		if err := p.err(); err != nil {
			return err
		}

		if len(p.changed) > 0 {
			if err := repos.Levels.UpdateLevel(level); err != nil {
				return fmt.Errorf("failed to update level %d: %w", id, err)
			}
		}
		changed = p.changed
		resp = toLevelResponse(level)
		return nil
	})
	if err != nil {
		return LevelResponse{}, err
	}

	if len(changed) > 0 {
		log.WithFields(log.Fields{"level_id": id, "fields": changed}).Info("Level updated")
		s.audit.LogUpdate(entities.EntityLevel, id, changed)
	}
	return resp, nil
}

// Delete removes the level and its flashcards.
func (s *LevelService) Delete(ctx context.Context, id uint) error {
	var (
		name    string
		removed database.CascadeResult
	)
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		level, err := repos.Levels.GetLevelByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityLevel, id)
		}
		name = level.Name

		removed, err = repos.Levels.DeleteLevel(id)
		if err != nil {
			return fmt.Errorf("failed to delete level %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"level_id": id, "flashcards": removed.Flashcards}).Info("Level deleted")
	s.audit.LogDelete(entities.EntityLevel, id, name, removed)
	return nil
}
