package models

// ImageRecord is the metadata row stored for one uploaded image. Field names
// follow the DynamoDB table attributes; timestamps are RFC3339 UTC strings.
type ImageRecord struct {
	ImageID     string   `json:"image_id" dynamodbav:"image_id"`
	UserID      string   `json:"user_id" dynamodbav:"user_id"`
	Title       string   `json:"title" dynamodbav:"title"`
	Description string   `json:"description" dynamodbav:"description"`
	Tags        []string `json:"tags" dynamodbav:"tags"`
	StorageKey  string   `json:"s3_key" dynamodbav:"s3_key"`
	StorageURL  string   `json:"s3_url" dynamodbav:"s3_url"`
	CreatedAt   string   `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   string   `json:"updated_at" dynamodbav:"updated_at"`
}

// AccessGrant is a freshly issued, time-bounded URL for fetching one blob.
// It is never persisted or cached.
type AccessGrant struct {
	URL       string
	ExpiresIn int
}
