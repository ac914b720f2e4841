package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLSanitizer_Sanitize(t *testing.T) {
	s := NewHTMLSanitizer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:        "script removed",
			input:       `<p>safe</p><script>alert(1)</script>`,
			contains:    []string{"<p>safe</p>"},
			notContains: []string{"script", "alert"},
		},
		{
			name:        "event handler removed",
			input:       `<p onclick="x()">text</p>`,
			contains:    []string{"text"},
			notContains: []string{"onclick"},
		},
		{
			name:     "direction kept",
			input:    `<p dir="rtl" lang="ar">نص</p>`,
			contains: []string{`dir="rtl"`, `lang="ar"`, "نص"},
		},
		{
			name:        "invalid direction dropped",
			input:       `<p dir="sideways">نص</p>`,
			contains:    []string{"نص"},
			notContains: []string{"sideways"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Sanitize(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}
