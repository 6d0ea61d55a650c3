package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/flashcards/internal/entities"
)

const maxAuditLimit = 500

var auditEntityTypes = map[string]bool{
	entities.EntityUser:      true,
	entities.EntityCourse:    true,
	entities.EntityLevel:     true,
	entities.EntityFlashcard: true,
}

type AuditController struct {
	log AuditLog
}

func NewAuditController(log AuditLog) *AuditController {
	return &AuditController{log: log}
}

// ListEvents returns recent change events, newest first.
// GET /audit-events?entityType=course&entityId=3&limit=50
func (ac *AuditController) ListEvents(c *gin.Context) {
	entityType := c.Query("entityType")
	if entityType != "" && !auditEntityTypes[entityType] {
		respondBadRequest(c, "unknown entityType: "+strconv.Quote(entityType))
		return
	}

	if raw := c.Query("entityId"); raw != "" {
		if entityType == "" {
			respondBadRequest(c, "entityId requires entityType")
			return
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid entityId")
			return
		}
		events, err := ac.log.History(entityType, uint(id))
		if err != nil {
			respondInternalError(c, err, "audit history")
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		respondBadRequest(c, "invalid limit")
		return
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	events, err := ac.log.Recent(entityType, limit)
	if err != nil {
		respondInternalError(c, err, "audit events")
		return
	}
	c.JSON(http.StatusOK, events)
}
