// Package translate brings non-Turkish source material into Turkish
// before it is handed to draft generation. Editors routinely paste
// agency copy in English; translating it first keeps the generation
// prompts monolingual.
package translate

import "context"

// Translator converts source text into the target language.
type Translator interface {
	// Translate returns text in the target language. sourceLang may be
	// empty, in which case the provider detects the language itself.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Name identifies the provider for logs.
	Name() string

	Close() error
}

// DefaultTargetLang is the editorial language of the pipeline.
const DefaultTargetLang = "tr"
