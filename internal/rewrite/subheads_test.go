package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

func classified(texts []string, introParagraphs int) types.Document {
	return types.Classify(types.NewDocument(texts), introParagraphs)
}

func TestStripSubheads_ForbiddenFormat(t *testing.T) {
	d := classified([]string{
		"**Başlık**",
		"**Giriş cümlesi burada.**",
		"**Ara Başlık**",
		"Gövde paragrafı devam ediyor.",
	}, 1)

	got := StripSubheads(d, formats.Rules{AllowSubheads: false})
	require.Len(t, got.Paragraphs, 4)
	assert.Equal(t, "Ara Başlık", got.Paragraphs[2].Text)
	assert.Equal(t, types.RoleBody, got.Paragraphs[2].Role)
	// Headline and intro keep their markers.
	assert.Equal(t, "**Başlık**", got.Paragraphs[0].Text)
	assert.Equal(t, "**Giriş cümlesi burada.**", got.Paragraphs[1].Text)
}

func TestStripSubheads_AllowedFormatIsNoOp(t *testing.T) {
	d := classified([]string{
		"**Başlık**",
		"**Giriş cümlesi burada.**",
		"**Ara Başlık**",
		"Gövde paragrafı.",
	}, 1)

	got := StripSubheads(d, formats.Rules{AllowSubheads: true})
	assert.Equal(t, d, got)
}

func TestStripSubheads_ContentPreserved(t *testing.T) {
	d := classified([]string{
		"**Başlık**",
		"**Giriş.**",
		"**Plajlar ve Koylar**",
		"Gövde.",
	}, 1)

	before := d.WordCount()
	got := StripSubheads(d, formats.Rules{AllowSubheads: false})
	assert.Equal(t, before, got.WordCount())
}

func TestStripSubheads_Idempotent(t *testing.T) {
	d := classified([]string{
		"**Başlık**",
		"**Giriş.**",
		"**Ara Başlık**",
		"Gövde.",
	}, 1)

	rules := formats.Rules{AllowSubheads: false}
	once := StripSubheads(d, rules)
	twice := StripSubheads(types.Classify(once, 1), rules)
	assert.Equal(t, once.Texts(), twice.Texts())
}
