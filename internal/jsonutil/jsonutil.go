// Package jsonutil provides the JSON helpers shared by the API client:
// context-wrapped decoding, bounded body reads, and request body encoding.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultBodyLimit caps how much of a response body is read before decoding.
const DefaultBodyLimit = 8 << 20

// snippetLen is how much of an undecodable body is quoted in errors.
const snippetLen = 120

// ErrEmptyBody is returned when a response carries no bytes to decode.
var ErrEmptyBody = errors.New("empty response body")

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeBody reads at most limit bytes from r and unmarshals them into v.
// A non-JSON body (an HTML error page from a proxy, say) is reported with a
// short quoted snippet so the caller can show something useful.
func DecodeBody(r io.Reader, limit int64, v any, context string) error {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return fmt.Errorf("%s: read body: %w", context, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%s: %w", context, ErrEmptyBody)
	}
	if !json.Valid(data) {
		return fmt.Errorf("%s: non-JSON response %q", context, Snippet(data, snippetLen))
	}
	return UnmarshalWithContext(data, v, context)
}

// EncodeBody marshals v into a reader suitable for an HTTP request body.
func EncodeBody(v any, context string) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: encode body: %w", context, err)
	}
	return bytes.NewReader(data), nil
}

// Snippet returns at most n runes of data with whitespace runs collapsed.
func Snippet(data []byte, n int) string {
	s := strings.Join(strings.Fields(string(data)), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
