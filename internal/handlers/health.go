package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status      string `json:"status"`
	Metadata    string `json:"metadata"`
	Storage     string `json:"storage"`
	Environment string `json:"environment"`
}

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	metaStatus := "ok"
	if err := h.meta.Health(ctx); err != nil {
		metaStatus = "error"
		h.log.Error().Err(err).Msg("metadata store ping failed")
	}

	storageStatus := "ok"
	if err := h.storage.Health(ctx); err != nil {
		storageStatus = "error"
		h.log.Error().Err(err).Msg("object store ping failed")
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Metadata:    metaStatus,
		Storage:     storageStatus,
		Environment: h.cfg.Environment,
	})
}
