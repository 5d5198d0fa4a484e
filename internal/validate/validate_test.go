package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

func intPtr(i int) *int { return &i }

func newsSpec() formats.Spec {
	return formats.Spec{
		Slug:              "hard_news",
		PromptKey:         "hard-news-system",
		Temperature:       0.3,
		OutputTokenBudget: 1024,
		Rules: formats.Rules{
			AllowSubheads:                false,
			IntroMaxSentences:            3,
			IntroParagraphsBeforeSubhead: 1,
			MinWords:                     intPtr(10),
			MaxWords:                     intPtr(60),
			MaxSentencesPerParagraph:     4,
		},
	}
}

func validDocument() types.Document {
	return types.NewDocument([]string{
		"**Antalya'da Turizm Sezonu Erken Açıldı**",
		"**Turizm sezonu bu yıl erken başladı. Oteller yüksek doluluk bildirdi.**",
		"Kent merkezindeki esnaf hareketlilikten memnun. Rezervasyonlar geçen yıla göre arttı.",
	})
}

func TestCheck_ValidDocumentPassesAllRules(t *testing.T) {
	report := Check(validDocument(), newsSpec())
	require.NotNil(t, report)
	assert.Equal(t, "hard_news", report.FormatSlug)
	assert.True(t, report.AllPassed())
	assert.Empty(t, report.Violations)

	// Every rule appears in the report even when all pass.
	for _, rule := range types.AllRules {
		_, ok := report.Results[rule]
		assert.True(t, ok, "rule %s missing from report", rule)
	}
}

func TestCheck_MalformedBoldMarkers(t *testing.T) {
	d := types.NewDocument([]string{
		"**Başlık**",
		"**Giriş cümlesi burada kalıyor.**",
		"Gövde **yarım kalın metin içeriyor.",
	})
	report := Check(d, newsSpec())
	assert.False(t, report.Passed(types.RuleBoldMarkers))
	assert.NotEmpty(t, report.FailedRules())
}

func TestCheck_UnboldedIntro(t *testing.T) {
	d := types.NewDocument([]string{
		"**Başlık**",
		"Giriş cümlesi kalın değil ve burada.",
		"Gövde paragrafı devam ediyor burada.",
	})
	report := Check(d, newsSpec())
	assert.False(t, report.Passed(types.RuleIntroBold))
}

func TestCheck_ForbiddenSubhead(t *testing.T) {
	d := types.NewDocument([]string{
		"**Başlık**",
		"**Giriş cümlesi burada yer alıyor.**",
		"**Ara Başlık**",
		"Gövde paragrafı devam ediyor burada.",
	})
	report := Check(d, newsSpec())
	assert.False(t, report.Passed(types.RuleSubheads))
}

func TestCheck_AllowedSubheadLeadCount(t *testing.T) {
	spec := newsSpec()
	spec.Rules.AllowSubheads = true
	spec.Rules.IntroParagraphsBeforeSubhead = 2

	d := types.NewDocument([]string{
		"**Başlık**",
		"**Birinci giriş paragrafı burada.**",
		"**İkinci giriş paragrafı burada.**",
		"**Ara Başlık**",
		"Gövde paragrafı devam ediyor burada.",
	})
	report := Check(d, spec)
	assert.True(t, report.Passed(types.RuleSubheads))
}

func TestCheck_AllowedSubheadWrongLeadCount(t *testing.T) {
	spec := newsSpec()
	spec.Rules.AllowSubheads = true
	spec.Rules.IntroParagraphsBeforeSubhead = 2

	// Three lead paragraphs precede the first subhead where the format
	// expects two.
	d := types.NewDocument([]string{
		"**Başlık**",
		"**Birinci giriş paragrafı burada.**",
		"**İkinci giriş paragrafı burada.**",
		"Araya giren düz bir gövde paragrafı.",
		"**Ara Başlık**",
		"Gövde paragrafı devam ediyor burada.",
	})
	report := Check(d, spec)
	assert.False(t, report.Passed(types.RuleSubheads))
}

func TestCheck_SentenceLimitViolation(t *testing.T) {
	d := types.NewDocument([]string{
		"**Başlık**",
		"**Giriş cümlesi burada yer alıyor.**",
		"Bir. İki. Üç. Dört. Beş.",
	})
	report := Check(d, newsSpec())
	assert.False(t, report.Passed(types.RuleSentenceLimits))
}

func TestCheck_WordCountBelowMinimum(t *testing.T) {
	d := types.NewDocument([]string{
		"**Başlık**",
		"**Kısa giriş.**",
	})
	report := Check(d, newsSpec())
	assert.False(t, report.Passed(types.RuleWordCount))
	assert.Less(t, report.WordCount, 10)
}

func TestCheck_WordCountUnconstrainedWhenNil(t *testing.T) {
	spec := newsSpec()
	spec.Rules.MinWords = nil
	spec.Rules.MaxWords = nil

	d := types.NewDocument([]string{
		"**Başlık**",
		"**Kısa giriş.**",
	})
	report := Check(d, spec)
	assert.True(t, report.Passed(types.RuleWordCount))
}

func TestCheck_RulesEvaluatedIndependently(t *testing.T) {
	// Both the intro rule and the word count fail; the report records both
	// instead of stopping at the first.
	d := types.NewDocument([]string{
		"**Başlık**",
		"Kalın olmayan giriş.",
	})
	report := Check(d, newsSpec())
	failed := report.FailedRules()
	assert.Contains(t, failed, types.RuleIntroBold)
	assert.Contains(t, failed, types.RuleWordCount)
}

func TestCheck_DoesNotMutateDocument(t *testing.T) {
	d := validDocument()
	_ = Check(d, newsSpec())
	assert.Equal(t, types.Role(""), d.Paragraphs[0].Role)
}
