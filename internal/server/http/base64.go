package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// decodeBase64Payload decodes a base64 payload that may carry a data-URL
// prefix ("data:audio/wav;base64,...."). The prefix is stripped at the first
// comma; decoding is strict so malformed input surfaces as a client error.
func decodeBase64Payload(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("payload must be a non-empty base64 string")
	}

	if strings.HasPrefix(s, "data:") {
		_, rest, ok := strings.Cut(s, ",")
		if !ok {
			return nil, errors.New("invalid data URL payload")
		}
		s = rest
	}

	data, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return data, nil
}
