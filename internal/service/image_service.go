package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"imagevault/api/internal/apperr"
	"imagevault/api/internal/config"
	"imagevault/api/internal/ids"
	"imagevault/api/internal/models"
)

// MetadataStore is the record store the service writes image metadata to.
type MetadataStore interface {
	Put(ctx context.Context, record models.ImageRecord) error
	GetByID(ctx context.Context, imageID string) (models.ImageRecord, error)
	Delete(ctx context.Context, imageID string) error
	Query(ctx context.Context, params models.QueryParams) (models.QueryPage, error)
}

// BlobStore holds the image payloads and issues access grants for them.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration, disposition string) (string, error)
}

type UploadInput struct {
	UserID      string
	ImageData   string
	Title       string
	Description string
	Tags        []string
}

type ImageService struct {
	meta        MetadataStore
	blobs       BlobStore
	bucket      string
	grantExpiry time.Duration
	log         zerolog.Logger
}

func NewImageService(meta MetadataStore, blobs BlobStore, cfg *config.AppConfig, log zerolog.Logger) *ImageService {
	return &ImageService{
		meta:        meta,
		blobs:       blobs,
		bucket:      cfg.Storage.Bucket,
		grantExpiry: time.Duration(cfg.Grant.Expiry) * time.Second,
		log:         log,
	}
}

// Upload decodes the payload, writes the blob, then writes the metadata
// record. The two writes are not paired transactionally: a metadata write
// failure leaves the blob behind and is reported as-is, with no rollback.
func (s *ImageService) Upload(ctx context.Context, input UploadInput) (models.ImageRecord, error) {
	if input.UserID == "" || input.ImageData == "" {
		return models.ImageRecord{}, apperr.Validation("Missing required fields: user_id and image_data are required")
	}

	data, err := base64.StdEncoding.DecodeString(input.ImageData)
	if err != nil {
		return models.ImageRecord{}, apperr.Validationf("Invalid image data: %v", err)
	}

	imageID := ids.New()
	now := time.Now().UTC().Format(time.RFC3339)
	storageKey := fmt.Sprintf("%s/%s", input.UserID, imageID)

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	record := models.ImageRecord{
		ImageID:     imageID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Tags:        tags,
		StorageKey:  storageKey,
		StorageURL:  fmt.Sprintf("s3://%s/%s", s.bucket, storageKey),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.blobs.Put(ctx, storageKey, data); err != nil {
		return models.ImageRecord{}, err
	}
	if err := s.meta.Put(ctx, record); err != nil {
		return models.ImageRecord{}, err
	}

	return record, nil
}

// View looks up the record and issues a fresh access grant for its blob.
// With download set, the grant carries an attachment disposition named after
// the title, falling back to the image id.
func (s *ImageService) View(ctx context.Context, imageID string, download bool) (models.ImageRecord, models.AccessGrant, error) {
	record, err := s.meta.GetByID(ctx, imageID)
	if err != nil {
		return models.ImageRecord{}, models.AccessGrant{}, err
	}
	if record.StorageKey == "" {
		return models.ImageRecord{}, models.AccessGrant{}, apperr.NotFound("Storage key not found in metadata")
	}

	disposition := ""
	if download {
		name := record.Title
		if name == "" {
			name = record.ImageID
		}
		disposition = fmt.Sprintf("attachment; filename=\"%s.jpg\"", name)
	}

	accessURL, err := s.blobs.PresignGet(ctx, record.StorageKey, s.grantExpiry, disposition)
	if err != nil {
		return models.ImageRecord{}, models.AccessGrant{}, err
	}

	grant := models.AccessGrant{
		URL:       accessURL,
		ExpiresIn: int(s.grantExpiry / time.Second),
	}
	return record, grant, nil
}

// Delete removes the blob best-effort and the metadata record
// unconditionally. A blob delete failure is logged and swallowed so the
// record always disappears from listings, at the cost of a possible
// orphaned blob.
func (s *ImageService) Delete(ctx context.Context, imageID string) error {
	record, err := s.meta.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if record.StorageKey != "" {
		if err := s.blobs.Remove(ctx, record.StorageKey); err != nil {
			s.log.Warn().Err(err).
				Str("image_id", imageID).
				Str("storage_key", record.StorageKey).
				Msg("blob delete failed, removing metadata anyway")
		}
	}

	return s.meta.Delete(ctx, imageID)
}

// List delegates to the metadata store's scan; filters, page bound and
// cursor pass through untouched.
func (s *ImageService) List(ctx context.Context, params models.QueryParams) (models.QueryPage, error) {
	return s.meta.Query(ctx, params)
}
