package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

func TestJoinIleInText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "back vowel harmony",
			text: "Yolcular otobüs ile geldi.",
			want: "Yolcular otobüsle geldi.",
		},
		{
			name: "front vowel harmony",
			text: "Kente tren ile ulaşılıyor.",
			want: "Kente trenle ulaşılıyor.",
		},
		{
			name: "back vowel word",
			text: "Adaya vapur ile geçtik.",
			want: "Adaya vapurla geçtik.",
		},
		{
			name: "y buffer after vowel",
			text: "Sahile araba ile gidilir.",
			want: "Sahile arabayla gidilir.",
		},
		{
			name: "proper noun takes apostrophe",
			text: "Antalya ile İzmir arasında sefer var.",
			want: "Antalya'yla İzmir arasında sefer var.",
		},
		{
			name: "exception ile birlikte",
			text: "Aileler çocukları ile birlikte geldi.",
			want: "Aileler çocukları ile birlikte geldi.",
		},
		{
			name: "exception ile ilgili",
			text: "Sezon ile ilgili açıklama yapıldı.",
			want: "Sezon ile ilgili açıklama yapıldı.",
		},
		{
			name: "trailing punctuation survives",
			text: "Tura rehber ile, sabah başlandı.",
			want: "Tura rehberle, sabah başlandı.",
		},
		{
			name: "sentence-initial ile untouched",
			text: "İle başlayan cümle olmaz.",
			want: "İle başlayan cümle olmaz.",
		},
		{
			name: "no ile",
			text: "Sezon erken başladı.",
			want: "Sezon erken başladı.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinIleInText(tt.text))
		})
	}
}

func TestJoinIleSuffix_SkipsHeadlineAndByline(t *testing.T) {
	d := types.Document{Paragraphs: []types.Paragraph{
		{Text: "**Tren ile Yolculuk**", Role: types.RoleHeadline},
		{Text: "Ayşe Yılmaz / Ankara", Role: types.RoleByline},
		{Text: "Kente tren ile ulaşılıyor.", Role: types.RoleBody},
	}}

	got := JoinIleSuffix(d, formats.Rules{})
	assert.Equal(t, "**Tren ile Yolculuk**", got.Paragraphs[0].Text)
	assert.Equal(t, "Kente trenle ulaşılıyor.", got.Paragraphs[2].Text)
}

func TestJoinIleSuffix_Idempotent(t *testing.T) {
	d := types.Document{Paragraphs: []types.Paragraph{
		{Text: "Yolcular otobüs ile geldi.", Role: types.RoleBody},
	}}

	once := JoinIleSuffix(d, formats.Rules{})
	twice := JoinIleSuffix(once, formats.Rules{})
	assert.Equal(t, once.Texts(), twice.Texts())
}
