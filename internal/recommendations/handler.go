package recommendations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/organizations/:organizationId/recommendations", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	organizationID := strings.TrimSpace(c.Param("organizationId"))
	if organizationID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "organization id is required", nil)
		return
	}

	opts := GenerateOptions{
		SkipNarrative: strings.EqualFold(c.Query("narrative"), "off"),
	}

	result, err := h.Svc.Generate(c.Request.Context(), organizationID, opts)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrSnapshotUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "snapshot_unavailable", "organization records could not be fetched", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to generate recommendations", nil)
		}
		return
	}

	respond.OK(c, result)
}
