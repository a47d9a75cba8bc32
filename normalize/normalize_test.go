package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  "",
		},
		{
			name:  "collapses whitespace runs",
			input: "secure   cookies\tand\n\nCSRF",
			want:  "secure cookies and CSRF",
		},
		{
			name:  "trims leading and trailing whitespace",
			input: "  hello world  ",
			want:  "hello world",
		},
		{
			name:  "arabic yeh maps to farsi yeh",
			input: "علي",
			want:  "علی",
		},
		{
			name:  "arabic kaf maps to keheh",
			input: "كتاب",
			want:  "کتاب",
		},
		{
			name:  "zero width non-joiner becomes a space",
			input: "بازیابی‌شده",
			want:  "بازیابی شده",
		},
		{
			name:  "direction marks stripped",
			input: "‏سلام‎",
			want:  "سلام",
		},
		{
			name:  "byte order mark stripped",
			input: "\uFEFFhello",
			want:  "hello",
		},
		{
			name:  "nfkc folds compatibility forms",
			input: "ﬁle", // U+FB01 LATIN SMALL LIGATURE FI
			want:  "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii text",
		"  spaced   out  ",
		"متن فارسی با نیم‌فاصله",
		"عربي and English كتاب mixed",
	}

	for _, input := range inputs {
		once := Text(input)
		twice := Text(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", input)
	}
}

func TestText_VariantsCompareEqual(t *testing.T) {
	// Codepoint-distinct spellings of the same visible word must normalize
	// to the same output.
	pairs := [][2]string{
		{"علي", "علی"},
		{"كتاب", "کتاب"},
		{"بازیابی‌شده", "بازیابی شده"},
	}

	for _, pair := range pairs {
		assert.Equal(t, Text(pair[0]), Text(pair[1]),
			"%q and %q must normalize identically", pair[0], pair[1])
	}
}

func TestContainsArabicScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"english", "How do I secure a Django backend?", false},
		{"empty", "", false},
		{"persian", "زمان بررسی اولیه رخداد چقدر است؟", true},
		{"mixed", "what does رخداد mean?", true},
		{"digits and punctuation", "12345 !?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsArabicScript(tt.text))
		})
	}
}
