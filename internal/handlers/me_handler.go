package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/owiro17/smarttrimz/internal/audit"
	"github.com/owiro17/smarttrimz/internal/httperr"
	"github.com/owiro17/smarttrimz/internal/middleware"
	"github.com/owiro17/smarttrimz/internal/models"
	"github.com/owiro17/smarttrimz/internal/storage"
)

// AvatarStore persists a processed avatar and returns its public URL.
type AvatarStore interface {
	PutAvatar(ctx context.Context, userID string, data []byte) (string, error)
}

type MeHandler struct {
	db      *gorm.DB
	avatars AvatarStore
	audit   *audit.Dispatcher
}

func NewMeHandler(db *gorm.DB, avatars AvatarStore, auditDispatcher *audit.Dispatcher) *MeHandler {
	return &MeHandler{db: db, avatars: avatars, audit: auditDispatcher}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(&user)})
}

type UpdateMeRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := middleware.UserID(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			httperr.Internal(c, "internal_error", "Failed to update profile.")
			return
		}
		h.audit.Dispatch(audit.Event{
			UserID:   &user.ID,
			Action:   "profile_updated",
			Entity:   "user",
			EntityID: &user.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(&user)})
}

// UploadAvatar accepts a multipart "file", converts it to a bounded
// WebP and stores it, saving the URL on the profile.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.UserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "No image file supplied.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	data, err := storage.EncodeAvatarWebP(f)
	if err != nil {
		if httperr.IsBusiness(err, "unsupported_image") {
			httperr.BadRequest(c, "unsupported_image", "Only JPEG and PNG images are accepted.")
			return
		}
		httperr.Internal(c, "internal_error", "Failed to process the image.")
		return
	}

	url, err := h.avatars.PutAvatar(c.Request.Context(), userID, data)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store the image.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_image_url", url).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to save the image URL.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "avatar_uploaded",
		Entity:   "user",
		EntityID: &userID,
	})

	c.JSON(http.StatusOK, gin.H{"profile_image_url": url})
}
