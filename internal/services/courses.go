package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
	"github.com/mrlokans/flashcards/internal/optional"
)

// CreateCourseInput is the course creation request. IsPublic and
// CreatedByUserID are pointers so that a missing value can be told apart
// from false or zero.
type CreateCourseInput struct {
	Name             string  `json:"name" validate:"notblank,max=255"`
	Description      *string `json:"description"`
	TaughtLanguage   string  `json:"taughtLanguage" validate:"notblank,max=64"`
	LearningLanguage string  `json:"learningLanguage" validate:"notblank,max=64"`
	IsPublic         *bool   `json:"isPublic" validate:"required"`
	CreatedByUserID  *uint   `json:"createdByUserId" validate:"required"`
}

// UpdateCourseInput is a partial update. Absent fields are left unchanged;
// a null description clears it.
type UpdateCourseInput struct {
	Name             optional.Value[string] `json:"name"`
	Description      optional.Value[string] `json:"description"`
	TaughtLanguage   optional.Value[string] `json:"taughtLanguage"`
	LearningLanguage optional.Value[string] `json:"learningLanguage"`
	IsPublic         optional.Value[bool]   `json:"isPublic"`
}

// CourseService manages courses.
type CourseService struct {
	uow   UnitOfWork
	audit Auditor
}

func NewCourseService(uow UnitOfWork, auditor Auditor) *CourseService {
	return &CourseService{uow: uow, audit: auditorOrNoop(auditor)}
}

// Create persists a course owned by an existing user.
func (s *CourseService) Create(ctx context.Context, in CreateCourseInput) (CourseResponse, error) {
	if err := validateStruct(in); err != nil {
		return CourseResponse{}, err
	}

	course := &entities.Course{
		Name:             in.Name,
		Description:      in.Description,
		TaughtLanguage:   in.TaughtLanguage,
		LearningLanguage: in.LearningLanguage,
		IsPublic:         *in.IsPublic,
		CreatedByUserID:  *in.CreatedByUserID,
	}

	err := s.uow.InTx(ctx, func(repos Repositories) error {
		exists, err := repos.Users.UserExists(course.CreatedByUserID)
		if err != nil {
			return fmt.Errorf("failed to check user %d: %w", course.CreatedByUserID, err)
		}
		if !exists {
			return notFound(entities.EntityUser, course.CreatedByUserID)
		}
		if err := repos.Courses.CreateCourse(course); err != nil {
			return fmt.Errorf("failed to create course: %w", err)
		}
		return nil
	})
	if err != nil {
		return CourseResponse{}, err
	}

	log.WithFields(log.Fields{"course_id": course.ID, "user_id": course.CreatedByUserID}).Info("Course created")
	s.audit.LogCreate(entities.EntityCourse, course.ID, course.Name)
	return toCourseResponse(course), nil
}

// ListPublic returns every public course with its level summaries.
func (s *CourseService) ListPublic(ctx context.Context) ([]CourseResponse, error) {
	var out []CourseResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		courses, err := repos.Courses.GetPublicCourses()
		if err != nil {
			return fmt.Errorf("failed to list public courses: %w", err)
		}
		out = make([]CourseResponse, 0, len(courses))
		for i := range courses {
			out = append(out, toCourseResponse(&courses[i]))
		}
		return nil
	})
	return out, err
}

func (s *CourseService) GetByID(ctx context.Context, id uint) (CourseResponse, error) {
	var resp CourseResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		course, err := repos.Courses.GetCourseByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityCourse, id)
		}
		resp = toCourseResponse(course)
		return nil
	})
	return resp, err
}

// Update applies the fields present in the patch.
func (s *CourseService) Update(ctx context.Context, id uint, in UpdateCourseInput) (CourseResponse, error) {
	var (
		resp    CourseResponse
		changed []string
	)
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		course, err := repos.Courses.GetCourseByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityCourse, id)
		}

		var p patcher
		p.requiredString("name", in.Name, 255, &course.Name)
		p.nullableString("description", in.Description, 0, &course.Description)
		p.requiredString("taughtLanguage", in.TaughtLanguage, 64, &course.TaughtLanguage)
		p.requiredString("learningLanguage", in.LearningLanguage, 64, &course.LearningLanguage)
		p.requiredBool("isPublic", in.IsPublic, &course.IsPublic)
		if err := p.err(); err != nil {
			return err
		}

		if len(p.changed) > 0 {
			if err := repos.Courses.UpdateCourse(course); err != nil {
				return fmt.Errorf("failed to update course %d: %w", id, err)
			}
		}
		changed = p.changed
		resp = toCourseResponse(course)
		return nil
	})
	if err != nil {
		return CourseResponse{}, err
	}

	if len(changed) > 0 {
		log.WithFields(log.Fields{"course_id": id, "fields": changed}).Info("Course updated")
		s.audit.LogUpdate(entities.EntityCourse, id, changed)
	}
	return resp, nil
}

// Delete removes the course with all of its levels and flashcards.
func (s *CourseService) Delete(ctx context.Context, id uint) error {
	var (
		name    string
		removed database.CascadeResult
	)
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		course, err := repos.Courses.GetCourseByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityCourse, id)
		}
		name = course.Name

		removed, err = repos.Courses.DeleteCourse(id)
		if err != nil {
			return fmt.Errorf("failed to delete course %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"course_id":  id,
		"levels":     removed.Levels,
		"flashcards": removed.Flashcards,
	}).Info("Course deleted")
	s.audit.LogDelete(entities.EntityCourse, id, name, removed)
	return nil
}
