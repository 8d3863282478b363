package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/owiro17/smarttrimz/internal/httperr"
	"github.com/owiro17/smarttrimz/internal/httpresp"
	"github.com/owiro17/smarttrimz/internal/middleware"
	"github.com/owiro17/smarttrimz/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the caller's own audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	var logs []models.AuditLog
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to load audit logs.")
		return
	}

	httpresp.List[models.AuditLog](c, logs)
}
