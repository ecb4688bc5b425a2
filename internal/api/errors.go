package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okonek/guidedcooking/backend/internal/logging"
	"github.com/okonek/guidedcooking/backend/internal/service"
	"github.com/okonek/guidedcooking/backend/internal/upstream"
)

// respondError maps store and gateway error kinds onto HTTP statuses:
// validation → 400, unknown id → 404, upstream failure → 502, anything
// else → 500 with a generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var ue *upstream.UpstreamError
	if errors.As(err, &ue) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "Error fetching from the external recipe API",
			"upstream_status": ue.StatusCode,
			"detail":          ue.Message,
		})
		return
	}

	logger := logging.NewLogger("api")
	logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
