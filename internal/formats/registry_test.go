package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_BuiltinFormats(t *testing.T) {
	r := NewRegistry()
	for _, slug := range []string{"hard_news", "soft_news", "feature", "brief"} {
		spec, err := r.Get(slug)
		require.NoError(t, err, "builtin %s missing", slug)
		assert.Equal(t, slug, spec.Slug)
		assert.NoError(t, spec.Validate())
	}
}

func TestRegistry_GetUnknownSlug(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("liveblog")
	var unknownErr *UnknownFormatError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "liveblog", unknownErr.Slug)
}

func TestRegistry_ListSortedBySlug(t *testing.T) {
	r := NewRegistry()
	specs := r.List()
	require.NotEmpty(t, specs)
	for i := 1; i < len(specs); i++ {
		assert.Less(t, specs[i-1].Slug, specs[i].Slug)
	}
}

func TestBuiltin_HardNewsRules(t *testing.T) {
	r := NewRegistry()
	spec, err := r.Get("hard_news")
	require.NoError(t, err)

	assert.False(t, spec.Rules.AllowSubheads)
	assert.Equal(t, 3, spec.Rules.IntroMaxSentences)
	require.NotNil(t, spec.Rules.MinWords)
	require.NotNil(t, spec.Rules.MaxWords)
	assert.Equal(t, 220, *spec.Rules.MinWords)
	assert.Equal(t, 400, *spec.Rules.MaxWords)
}

func TestBuiltin_SoftNewsAllowsSubheads(t *testing.T) {
	r := NewRegistry()
	spec, err := r.Get("soft_news")
	require.NoError(t, err)

	assert.True(t, spec.Rules.AllowSubheads)
	assert.Equal(t, 2, spec.Rules.IntroParagraphsBeforeSubhead)
}

func TestBuiltin_BriefHasNoMinimum(t *testing.T) {
	r := NewRegistry()
	spec, err := r.Get("brief")
	require.NoError(t, err)

	assert.Nil(t, spec.Rules.MinWords)
	require.NotNil(t, spec.Rules.MaxWords)
	assert.Equal(t, 140, *spec.Rules.MaxWords)
}

func TestSpec_Validate(t *testing.T) {
	valid := Spec{
		Slug:              "custom",
		Name:              "Custom",
		PromptKey:         "custom-system",
		Temperature:       0.5,
		OutputTokenBudget: 512,
		Rules: Rules{
			IntroMaxSentences:            2,
			IntroParagraphsBeforeSubhead: 1,
			MaxSentencesPerParagraph:     3,
		},
	}
	assert.NoError(t, valid.Validate())

	noSlug := valid
	noSlug.Slug = ""
	assert.Error(t, noSlug.Validate())

	badTemp := valid
	badTemp.Temperature = 2.5
	assert.Error(t, badTemp.Validate())

	inverted := valid
	inverted.Rules.MinWords = intPtr(300)
	inverted.Rules.MaxWords = intPtr(200)
	assert.Error(t, inverted.Validate())
}
