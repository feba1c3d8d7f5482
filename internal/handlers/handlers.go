package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"imagevault/api/internal/config"
	"imagevault/api/internal/service"
)

// Pinger is a store adapter that can report liveness.
type Pinger interface {
	Health(ctx context.Context) error
}

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	images  *service.ImageService
	meta    Pinger
	storage Pinger
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, images *service.ImageService, meta, storage Pinger) HandlerSet {
	return HandlerSet{
		log:     log,
		cfg:     cfg,
		images:  images,
		meta:    meta,
		storage: storage,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	images := v1.Group("/images")
	{
		images.POST("", h.UploadImage)
		images.GET("", h.ListImages)
		images.GET("/:image_id", h.ViewImage)
		images.DELETE("/:image_id", h.DeleteImage)
	}
}
