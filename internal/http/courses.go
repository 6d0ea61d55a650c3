package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/flashcards/internal/services"
)

type CoursesController struct {
	courses CourseService
	levels  LevelService
}

func NewCoursesController(courses CourseService, levels LevelService) *CoursesController {
	return &CoursesController{courses: courses, levels: levels}
}

// ListPublic returns all public courses.
// GET /courses
func (cc *CoursesController) ListPublic(c *gin.Context) {
	courses, err := cc.courses.ListPublic(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list public courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// Create adds a course.
// POST /courses
func (cc *CoursesController) Create(c *gin.Context) {
	var in services.CreateCourseInput
	if !bindJSON(c, &in) {
		return
	}

	course, err := cc.courses.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, "create course")
		return
	}
	respondCreated(c, course)
}

// GET /courses/:id
func (cc *CoursesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := cc.courses.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// Update applies a partial update; fields missing from the body are kept.
// PUT /courses/:id
func (cc *CoursesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.UpdateCourseInput
	if !bindJSON(c, &in) {
		return
	}

	course, err := cc.courses.Update(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err, "update course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// Delete removes a course with its levels and flashcards.
// DELETE /courses/:id
func (cc *CoursesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.courses.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete course")
		return
	}
	respondNoContent(c)
}

// ListLevels returns the course's levels in order.
// GET /courses/:id/levels
func (cc *CoursesController) ListLevels(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	levels, err := cc.levels.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		respondServiceError(c, err, "list levels")
		return
	}
	c.JSON(http.StatusOK, levels)
}

// CreateLevel adds a level to the course. The body's courseId must match the path.
// POST /courses/:id/levels
func (cc *CoursesController) CreateLevel(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.CreateLevelInput
	if !bindJSON(c, &in) {
		return
	}
	if in.CourseID == nil || *in.CourseID != courseID {
		respondBadRequest(c, "Path courseId and body.courseId must match")
		return
	}

	level, err := cc.levels.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, "create level")
		return
	}
	respondCreated(c, level)
}
