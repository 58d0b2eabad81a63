// Package service wires model handles to inference backends, one service per
// capability.
package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/transly-team/transly/internal/backend"
)

// readText drains a backend response into a string.
func readText(resp *backend.Response) (string, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, resp.Output); err != nil {
		return "", fmt.Errorf("read backend output: %w", err)
	}
	return sb.String(), nil
}
