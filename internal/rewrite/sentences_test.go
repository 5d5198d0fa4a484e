package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentences",
			text: "Birinci cümle. İkinci cümle. Üçüncü cümle.",
			want: []string{"Birinci cümle.", "İkinci cümle.", "Üçüncü cümle."},
		},
		{
			name: "mixed terminators",
			text: "Gerçekten mi? Evet! Harika…",
			want: []string{"Gerçekten mi?", "Evet!", "Harika…"},
		},
		{
			name: "abbreviation does not split",
			text: "Dr. Yılmaz açıklama yaptı. Toplantı sona erdi.",
			want: []string{"Dr. Yılmaz açıklama yaptı.", "Toplantı sona erdi."},
		},
		{
			name: "single initial does not split",
			text: "A. Demir konuştu. Salon doluydu.",
			want: []string{"A. Demir konuştu.", "Salon doluydu."},
		},
		{
			name: "ordinal numeral does not split",
			text: "Kent 19. yüzyılda kuruldu. Bugün bir müze var.",
			want: []string{"Kent 19. yüzyılda kuruldu.", "Bugün bir müze var."},
		},
		{
			name: "decimal number does not split",
			text: "Oran yüzde 3.5 arttı. Sezon uzadı.",
			want: []string{"Oran yüzde 3.5 arttı.", "Sezon uzadı."},
		},
		{
			name: "closing quote stays with sentence",
			text: "\"Sezon harika geçiyor.\" dedi. Ardından gitti.",
			want: []string{"\"Sezon harika geçiyor.\"", "dedi.", "Ardından gitti."},
		},
		{
			name: "quote with punctuation outside",
			text: "Vali \"destek sürecek\". Açılış yarın.",
			want: []string{"Vali \"destek sürecek\".", "Açılış yarın."},
		},
		{
			name: "no terminator",
			text: "Başlıkta nokta olmaz",
			want: []string{"Başlıkta nokta olmaz"},
		},
		{
			name: "empty input",
			text: "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.text))
		})
	}
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 3, CountSentences("Bir. İki. Üç."))
	assert.Equal(t, 1, CountSentences("Dr. Yılmaz geldi."))
	assert.Equal(t, 0, CountSentences(""))
}
