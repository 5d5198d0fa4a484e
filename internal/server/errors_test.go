package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/llm"
	"github.com/aylin/article-stylist/internal/translate"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown format", &formats.UnknownFormatError{Slug: "x"}, http.StatusNotFound},
		{"validation", &ErrValidation{Message: "bad"}, http.StatusBadRequest},
		{"generation", &llm.GenerationError{Message: "provider down"}, http.StatusBadGateway},
		{"translation", &translate.TranslationError{Message: "quota"}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
