package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"

	"imagevault/api/internal/apperr"
	"imagevault/api/internal/config"
	"imagevault/api/internal/models"
)

// DefaultPageSize bounds a listing scan when the caller supplies no limit.
const DefaultPageSize = 100

// ImageRepository is the metadata store adapter, backed by a DynamoDB table
// keyed by image_id.
type ImageRepository struct {
	client *dynamodb.DynamoDB
	table  string
}

func NewImageRepository(cfg config.MetadataConfig) (*ImageRepository, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}

	return &ImageRepository{
		client: dynamodb.New(sess),
		table:  cfg.Table,
	}, nil
}

func (r *ImageRepository) Put(ctx context.Context, record models.ImageRecord) error {
	item, err := dynamodbattribute.MarshalMap(record)
	if err != nil {
		return apperr.Store("marshal image record", err)
	}

	_, err = r.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return apperr.Store("put image record", err)
	}
	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, imageID string) (models.ImageRecord, error) {
	out, err := r.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]*dynamodb.AttributeValue{
			"image_id": {S: aws.String(imageID)},
		},
	})
	if err != nil {
		return models.ImageRecord{}, apperr.Store("get image record", err)
	}
	if out.Item == nil {
		return models.ImageRecord{}, apperr.NotFound("Image not found")
	}

	var record models.ImageRecord
	if err := dynamodbattribute.UnmarshalMap(out.Item, &record); err != nil {
		return models.ImageRecord{}, apperr.Store("unmarshal image record", err)
	}
	return record, nil
}

func (r *ImageRepository) Delete(ctx context.Context, imageID string) error {
	_, err := r.client.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]*dynamodb.AttributeValue{
			"image_id": {S: aws.String(imageID)},
		},
	})
	if err != nil {
		return apperr.Store("delete image record", err)
	}
	return nil
}

// Query runs exactly one scan against the table and returns whatever that
// scan yields. The limit applies to items scanned, not items matched, so a
// filtered page can come back shorter than the limit while more matches
// exist; callers resume from the returned cursor.
func (r *ImageRepository) Query(ctx context.Context, params models.QueryParams) (models.QueryPage, error) {
	input, err := buildScanInput(r.table, params)
	if err != nil {
		return models.QueryPage{}, err
	}

	out, err := r.client.ScanWithContext(ctx, input)
	if err != nil {
		return models.QueryPage{}, apperr.Store("scan image records", err)
	}

	return pageFromScanOutput(out)
}

// pageFromScanOutput normalizes one scan result into a page: records in
// scan order, HasMore true iff the store reported an unconsumed
// continuation position, and a cursor present iff HasMore.
func pageFromScanOutput(out *dynamodb.ScanOutput) (models.QueryPage, error) {
	images := make([]models.ImageRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var record models.ImageRecord
		if err := dynamodbattribute.UnmarshalMap(item, &record); err != nil {
			return models.QueryPage{}, apperr.Store("unmarshal image record", err)
		}
		images = append(images, record)
	}

	page := models.QueryPage{
		Images: images,
		Count:  len(images),
	}
	if len(out.LastEvaluatedKey) > 0 {
		cursor, err := encodeCursor(out.LastEvaluatedKey)
		if err != nil {
			return models.QueryPage{}, apperr.Store("encode cursor", err)
		}
		page.Cursor = cursor
		page.HasMore = true
	}
	return page, nil
}

// buildScanInput translates the filter parameters into a single scan
// request: supplied filters AND-ed into one filter expression, the page
// bound as the scan limit, and the cursor as the exclusive start position.
func buildScanInput(table string, params models.QueryParams) (*dynamodb.ScanInput, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
		Limit:     aws.Int64(limit),
	}

	var filter expression.ConditionBuilder
	hasFilter := false
	if params.UserID != "" {
		filter = expression.Name("user_id").Equal(expression.Value(params.UserID))
		hasFilter = true
	}
	if params.Tag != "" {
		tagFilter := expression.Name("tags").Contains(params.Tag)
		if hasFilter {
			filter = filter.And(tagFilter)
		} else {
			filter = tagFilter
			hasFilter = true
		}
	}
	if hasFilter {
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, apperr.Store("build filter expression", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	if params.Cursor != "" {
		startKey, err := decodeCursor(params.Cursor)
		if err != nil {
			return nil, err
		}
		input.ExclusiveStartKey = startKey
	}

	return input, nil
}

func (r *ImageRepository) Health(ctx context.Context) error {
	_, err := r.client.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	return err
}
