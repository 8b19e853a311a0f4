package api

import (
	"net/http"

	"maison-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	q queries.AnnouncementQueries
}

func NewAnnouncementHandler(q queries.AnnouncementQueries) *AnnouncementHandler {
	return &AnnouncementHandler{q: q}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context(), c.Query("page"))
	if err != nil {
		abortGatewayError(c, err, "Failed to load announcements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": views})
}
