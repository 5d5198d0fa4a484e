package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/generate"
	"github.com/aylin/article-stylist/internal/render"
	"github.com/aylin/article-stylist/internal/translate"
	"github.com/aylin/article-stylist/internal/types"
)

// maxBatchFormats bounds how many pipelines one batch request may fan out to.
const maxBatchFormats = 8

// FormatResponse is the public view of a format spec.
type FormatResponse struct {
	Slug  string        `json:"slug"`
	Name  string        `json:"name"`
	Rules formats.Rules `json:"rules"`
}

// handleGenerate runs the full pipeline for one format and returns the
// finalized article.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	spec, err := s.registry.Get(req.Format)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sourceText, err := s.translateSource(r, req.SourceText, req.TranslateFrom)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	contentID := req.ContentID
	if contentID == "" {
		contentID = uuid.NewString()
	}

	result, err := s.controller.Run(r.Context(), generate.Request{
		Spec:       spec,
		SourceText: sourceText,
		ContentID:  contentID,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, toGenerateResponse(spec.Slug, result))
}

// handleGenerateBatch runs the pipeline once per requested format. Formats
// run concurrently; a failure in any one fails the whole batch so the caller
// never receives a partial article set.
func (s *Server) handleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Formats) > maxBatchFormats {
		s.errorResponse(w, http.StatusBadRequest, "too many formats in one batch")
		return
	}

	// Resolve every slug before starting any generation.
	specs := make([]formats.Spec, len(req.Formats))
	for i, slug := range req.Formats {
		spec, err := s.registry.Get(slug)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		specs[i] = spec
	}

	sourceText, err := s.translateSource(r, req.SourceText, req.TranslateFrom)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	contentID := req.ContentID
	if contentID == "" {
		contentID = uuid.NewString()
	}

	results := make([]types.GenerateResponse, len(specs))
	g, ctx := errgroup.WithContext(r.Context())
	for i, spec := range specs {
		g.Go(func() error {
			result, err := s.controller.Run(ctx, generate.Request{
				Spec:       spec,
				SourceText: sourceText,
				ContentID:  contentID,
			})
			if err != nil {
				return err
			}
			results[i] = toGenerateResponse(spec.Slug, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BatchGenerateResponse{
		ContentID: contentID,
		Results:   results,
	})
}

// handleListFormats returns every registered format.
func (s *Server) handleListFormats(w http.ResponseWriter, _ *http.Request) {
	specs := s.registry.List()
	out := make([]FormatResponse, len(specs))
	for i, spec := range specs {
		out[i] = FormatResponse{Slug: spec.Slug, Name: spec.Name, Rules: spec.Rules}
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleGetFormat returns one format by slug.
func (s *Server) handleGetFormat(w http.ResponseWriter, r *http.Request) {
	spec, err := s.registry.Get(r.PathValue("slug"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, FormatResponse{Slug: spec.Slug, Name: spec.Name, Rules: spec.Rules})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// translateSource brings the source text into Turkish when the request names
// a source language. An empty sourceLang means the text is already Turkish.
func (s *Server) translateSource(r *http.Request, text, sourceLang string) (string, error) {
	if sourceLang == "" || sourceLang == translate.DefaultTargetLang {
		return text, nil
	}
	if s.translator == nil {
		return "", &ErrValidation{Message: "translate_from requested but translation is not configured"}
	}
	return s.translator.Translate(r.Context(), text, sourceLang, translate.DefaultTargetLang)
}

func toGenerateResponse(slug string, result *generate.Result) types.GenerateResponse {
	resp := types.GenerateResponse{
		Format:       slug,
		Text:         result.Text,
		State:        string(result.State),
		Attempts:     result.Attempts,
		BelowMinimum: result.BelowMinimum,
		Report:       result.Report,
	}
	if html, err := render.HTML(result.Document); err == nil {
		resp.HTML = html
	} else {
		log.Printf("render html: %v", err)
	}
	return resp
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
