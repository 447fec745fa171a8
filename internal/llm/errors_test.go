package llm

import (
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError_BySubstring(t *testing.T) {
	cases := []struct {
		msg  string
		want ErrorClass
	}{
		{"status 429", ErrClassRateLimit},
		{"Rate Limit reached for model", ErrClassRateLimit},
		{"too many requests, slow down", ErrClassRateLimit},
		{"upstream returned 500", ErrClassServer},
		{"502 bad gateway", ErrClassServer},
		{"503 service unavailable", ErrClassServer},
		{"504 gateway timeout", ErrClassServer},
		{"400 bad request", ErrClassOther},
		{"invalid api key", ErrClassOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyError(errors.New(tc.msg)), "msg=%q", tc.msg)
	}
}

func TestClassifyError_ByAPIStatusCode(t *testing.T) {
	rate := &openai.APIError{HTTPStatusCode: 429, Message: "quota exceeded"}
	assert.Equal(t, ErrClassRateLimit, ClassifyError(fmt.Errorf("chat: %w", rate)))

	srv := &openai.APIError{HTTPStatusCode: 503, Message: "overloaded"}
	assert.Equal(t, ErrClassServer, ClassifyError(srv))

	perm := &openai.APIError{HTTPStatusCode: 401, Message: "bad key"}
	assert.Equal(t, ErrClassOther, ClassifyError(perm))
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Equal(t, ErrClassOther, ClassifyError(nil))
}
