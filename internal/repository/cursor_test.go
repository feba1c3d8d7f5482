package repository

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagevault/api/internal/apperr"
)

func TestCursorRoundTrip(t *testing.T) {
	key := map[string]*dynamodb.AttributeValue{
		"image_id": {S: aws.String("2f1f9a34-7c55-4a12-9f2e-8f3f0a1b2c3d")},
	}

	cursor, err := encodeCursor(key)
	require.NoError(t, err)
	assert.NotEmpty(t, cursor)
	assert.NotContains(t, cursor, "image_id", "cursor must be opaque")

	decoded, err := decodeCursor(cursor)
	require.NoError(t, err)
	require.Contains(t, decoded, "image_id")
	assert.Equal(t, "2f1f9a34-7c55-4a12-9f2e-8f3f0a1b2c3d", *decoded["image_id"].S)
}

func TestEncodeCursorRejectsNonStringKey(t *testing.T) {
	key := map[string]*dynamodb.AttributeValue{
		"created_at": {N: aws.String("1700000000")},
	}

	_, err := encodeCursor(key)
	assert.Error(t, err)
}

func TestDecodeCursorMalformed(t *testing.T) {
	for _, cursor := range []string{"%%%not-base64%%%", "bm90LWpzb24", "e30"} {
		_, err := decodeCursor(cursor)
		require.Error(t, err, "cursor %q", cursor)
		assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
	}
}
