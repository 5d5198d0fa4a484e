package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/llm"
	"github.com/aylin/article-stylist/internal/translate"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unknownFormat *formats.UnknownFormatError
		validation    *ErrValidation
		generation    *llm.GenerationError
		translation   *translate.TranslationError
	)
	switch {
	case errors.As(err, &unknownFormat):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &generation), errors.As(err, &translation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
