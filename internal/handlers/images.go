package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"imagevault/api/internal/apperr"
	"imagevault/api/internal/models"
	"imagevault/api/internal/service"
)

type uploadRequest struct {
	UserID      string   `json:"user_id"`
	ImageData   string   `json:"image_data"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (h HandlerSet) UploadImage(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.images.Upload(c.Request.Context(), service.UploadInput{
		UserID:      req.UserID,
		ImageData:   req.ImageData,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Image uploaded successfully",
		"image_id": record.ImageID,
		"metadata": record,
	})
}

func (h HandlerSet) ListImages(c *gin.Context) {
	params := models.QueryParams{
		UserID: c.Query("user_id"),
		Tag:    c.Query("tag"),
		Cursor: c.Query("cursor"),
	}

	if limit := c.Query("limit"); limit != "" {
		v, err := strconv.ParseInt(limit, 10, 64)
		if err != nil {
			h.respondError(c, apperr.Store("parse limit", err))
			return
		}
		params.Limit = v
	}

	page, err := h.images.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	body := gin.H{
		"images":   page.Images,
		"count":    page.Count,
		"has_more": page.HasMore,
	}
	if page.HasMore {
		body["cursor"] = page.Cursor
	}
	c.JSON(http.StatusOK, body)
}

func (h HandlerSet) ViewImage(c *gin.Context) {
	imageID := c.Param("image_id")
	if imageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: image_id"})
		return
	}
	download := strings.EqualFold(c.Query("download"), "true")

	record, grant, err := h.images.View(c.Request.Context(), imageID, download)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_id":   record.ImageID,
		"metadata":   record,
		"access_url": grant.URL,
		"expires_in": grant.ExpiresIn,
	})
}

func (h HandlerSet) DeleteImage(c *gin.Context) {
	imageID := c.Param("image_id")
	if imageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: image_id"})
		return
	}

	if err := h.images.Delete(c.Request.Context(), imageID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Image deleted successfully",
		"image_id": imageID,
	})
}

// respondError maps the error taxonomy onto statuses. Store error text is
// passed through to the body untouched.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
