package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/owiro17/smarttrimz/internal/domain/booking"
	"github.com/owiro17/smarttrimz/internal/httperr"
	"github.com/owiro17/smarttrimz/internal/httpresp"
	"github.com/owiro17/smarttrimz/internal/models"
)

type BarberHandler struct {
	repo domain.Repository
}

func NewBarberHandler(repo domain.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

// List returns the full barber catalog. Public: the app shows it on
// the home screen before login.
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to load barbers.")
		return
	}

	httpresp.List[models.Barber](c, barbers)
}
