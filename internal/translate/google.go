package translate

import (
	"context"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator translates via the Google Cloud Translation API.
type GoogleTranslator struct {
	client *translate.Client
}

// NewGoogleTranslator creates a translator using application default
// credentials, or an explicit credentials file when path is not empty.
func NewGoogleTranslator(ctx context.Context, credentialsFile string) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, &TranslationError{Message: "failed to create translation client", Cause: err}
	}
	return &GoogleTranslator{client: client}, nil
}

func (t *GoogleTranslator) Name() string {
	return "google"
}

func (t *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if targetLang == "" {
		targetLang = DefaultTargetLang
	}

	targetTag, err := language.Parse(targetLang)
	if err != nil {
		return "", &TranslationError{Message: fmt.Sprintf("invalid target language %q", targetLang), Cause: err}
	}

	var translateOpts *translate.Options
	if sourceLang != "" && sourceLang != "auto" {
		sourceTag, err := language.Parse(sourceLang)
		if err != nil {
			return "", &TranslationError{Message: fmt.Sprintf("invalid source language %q", sourceLang), Cause: err}
		}
		translateOpts = &translate.Options{Source: sourceTag, Format: translate.Text}
	} else {
		translateOpts = &translate.Options{Format: translate.Text}
	}

	translations, err := t.client.Translate(ctx, []string{text}, targetTag, translateOpts)
	if err != nil {
		return "", &TranslationError{Message: "translation request failed", Cause: err}
	}
	if len(translations) == 0 {
		return "", &TranslationError{Message: "provider returned no translation"}
	}
	return translations[0].Text, nil
}

func (t *GoogleTranslator) Close() error {
	return t.client.Close()
}
