package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindStore, KindOf(Store("scan", errors.New("boom"))))
	assert.Equal(t, KindStore, KindOf(errors.New("unclassified")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("list images: %w", NotFound("Image not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestStoreMessagePassthrough(t *testing.T) {
	err := Store("scan image records", errors.New("connection refused"))
	assert.Equal(t, "scan image records: connection refused", err.Error())
}

func TestValidationf(t *testing.T) {
	err := Validationf("Invalid image data: %v", errors.New("illegal base64 data"))
	assert.Contains(t, err.Error(), "Invalid image data")
}
