package repository

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"imagevault/api/internal/apperr"
)

// The cursor is the scan's last evaluated key, flattened and encoded so the
// store-native key shape never leaks to callers. The table key is a single
// string attribute, so only string attributes are representable.

func encodeCursor(key map[string]*dynamodb.AttributeValue) (string, error) {
	plain := make(map[string]string, len(key))
	for name, attr := range key {
		if attr.S == nil {
			return "", fmt.Errorf("non-string key attribute %q", name)
		}
		plain[name] = *attr.S
	}

	raw, err := json.Marshal(plain)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeCursor(cursor string) (map[string]*dynamodb.AttributeValue, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, apperr.Store("decode cursor", err)
	}

	var plain map[string]string
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, apperr.Store("decode cursor", err)
	}
	if len(plain) == 0 {
		return nil, apperr.Store("decode cursor", fmt.Errorf("empty cursor"))
	}

	key := make(map[string]*dynamodb.AttributeValue, len(plain))
	for name, value := range plain {
		key[name] = &dynamodb.AttributeValue{S: aws.String(value)}
	}
	return key, nil
}
