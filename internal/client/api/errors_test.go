package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/its-steo/GrandV-sub001/internal/common"
)

func TestAPIError_SentinelMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{401, common.ErrorUnauthorized},
		{403, common.ErrorUnauthorized},
		{404, common.ErrorNotFound},
		{500, common.ErrorInternal},
		{503, common.ErrorInternal},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status, Message: "m"}
		assert.True(t, errors.Is(err, tt.want), "status %d", tt.status)
	}

	badRequest := &APIError{StatusCode: 400, Message: "m"}
	assert.False(t, errors.Is(badRequest, common.ErrorNotFound))
	assert.False(t, errors.Is(badRequest, common.ErrorUnauthorized))
}
