package http

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/model"
)

// classify maps service-layer failures onto the HTTP error taxonomy:
// out-of-enum input → 400, missing capability or unloaded model → 503,
// anything else → 500 with the cause attached.
func classify(publicMsg string, err error) error {
	switch {
	case errors.Is(err, lang.ErrUnsupportedSpeechTag):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, model.ErrUnavailable), errors.Is(err, backend.ErrNotFound):
		return huma.Error503ServiceUnavailable(publicMsg, err)
	default:
		return huma.Error500InternalServerError(publicMsg, err)
	}
}
