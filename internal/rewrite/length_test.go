package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

func TestEnforceParagraphLength_SplitsLongParagraph(t *testing.T) {
	d := types.Document{Paragraphs: []types.Paragraph{
		{Text: "Bir. İki. Üç. Dört. Beş. Altı.", Role: types.RoleBody},
	}}

	got := EnforceParagraphLength(d, formats.Rules{MaxSentencesPerParagraph: 4})
	require.Len(t, got.Paragraphs, 2)
	assert.Equal(t, "Bir. İki. Üç. Dört.", got.Paragraphs[0].Text)
	assert.Equal(t, "Beş. Altı.", got.Paragraphs[1].Text)
}

func TestEnforceParagraphLength_ChainsAcrossRemainders(t *testing.T) {
	d := types.Document{Paragraphs: []types.Paragraph{
		{Text: "Bir. İki. Üç. Dört. Beş. Altı. Yedi.", Role: types.RoleBody},
	}}

	got := EnforceParagraphLength(d, formats.Rules{MaxSentencesPerParagraph: 3})
	require.Len(t, got.Paragraphs, 3)
	assert.Equal(t, "Bir. İki. Üç.", got.Paragraphs[0].Text)
	assert.Equal(t, "Dört. Beş. Altı.", got.Paragraphs[1].Text)
	assert.Equal(t, "Yedi.", got.Paragraphs[2].Text)
}

func TestEnforceParagraphLength_WithinBoundIsNoOp(t *testing.T) {
	d := types.Document{Paragraphs: []types.Paragraph{
		{Text: "Bir. İki. Üç.", Role: types.RoleBody},
	}}

	got := EnforceParagraphLength(d, formats.Rules{MaxSentencesPerParagraph: 4})
	assert.Equal(t, d.Texts(), got.Texts())
}

func TestEnforceParagraphLength_SkipsIntroAndBold(t *testing.T) {
	d := types.Document{Paragraphs: []types.Paragraph{
		{Text: "**Bir. İki. Üç. Dört. Beş.**", Role: types.RoleIntro},
		{Text: "**Bir. İki. Üç. Dört. Beş.**", Role: types.RoleBody},
	}}

	got := EnforceParagraphLength(d, formats.Rules{MaxSentencesPerParagraph: 2})
	assert.Equal(t, d.Texts(), got.Texts())
}

func TestEnforceParagraphLength_NoContentLoss(t *testing.T) {
	d := types.Document{Paragraphs: []types.Paragraph{
		{Text: "Uzun cümle bir burada. Uzun cümle iki burada. Uzun cümle üç burada. Uzun cümle dört burada. Uzun cümle beş burada.", Role: types.RoleBody},
	}}

	before := d.WordCount()
	got := EnforceParagraphLength(d, formats.Rules{MaxSentencesPerParagraph: 2})
	assert.Equal(t, before, got.WordCount())
	require.Len(t, got.Paragraphs, 3)
}
