package llm

import (
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrRetryExhausted indicates all retry attempts have been exhausted.
// The upstream error is wrapped alongside it.
var ErrRetryExhausted = errors.New("chat retry attempts exhausted")

// ErrorClass buckets upstream failures for retry and monitoring decisions.
type ErrorClass string

const (
	ErrClassRateLimit ErrorClass = "rate_limit"
	ErrClassServer    ErrorClass = "server_error"
	ErrClassOther     ErrorClass = "other"
)

// ClassifyError maps an upstream error to its retry class. HTTP status is
// used when the provider returns a typed API error; otherwise the error
// text is substring-matched, which is how the provider distinguishes its
// own failure modes.
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrClassOther
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return ErrClassRateLimit
		case apiErr.HTTPStatusCode >= 500 && apiErr.HTTPStatusCode <= 504:
			return ErrClassServer
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "too many requests"):
		return ErrClassRateLimit
	case strings.Contains(msg, "500"),
		strings.Contains(msg, "502"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "504"):
		return ErrClassServer
	}
	return ErrClassOther
}
