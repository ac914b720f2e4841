package converter

import (
	"context"
	"testing"

	docsysSvc "safha/internal/domain/services/docsystem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		filename   string
		wantFormat string
		wantOK     bool
	}{
		{"chapter.txt", docsysSvc.FormatText, true},
		{"notes.TEXT", docsysSvc.FormatText, true},
		{"README.md", docsysSvc.FormatMarkdown, true},
		{"draft.markdown", docsysSvc.FormatMarkdown, true},
		{"page.HTML", docsysSvc.FormatHTML, true},
		{"page.htm", docsysSvc.FormatHTML, true},
		{"book.docx", "", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			c, ok := r.ForFile(tt.filename)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantFormat, c.Format())
			}
		})
	}

	assert.Equal(t, []string{"html", "markdown", "text"}, r.Formats())

	_, ok := r.ForFormat("pdf")
	assert.False(t, ok)
}

func TestTextConverter_StripsByteOrderMark(t *testing.T) {
	c := NewTextConverter()

	out, err := c.Convert(context.Background(), []byte("\ufeffمرحبا\r\nبكم"))
	require.NoError(t, err)
	assert.Equal(t, "مرحبا\r\nبكم", out, "only the BOM is removed")

	out, err = c.Convert(context.Background(), []byte("a\ufeffb"))
	require.NoError(t, err)
	assert.Equal(t, "a\ufeffb", out, "BOM inside the text is content")
}

func TestMarkdownConverter_Passthrough(t *testing.T) {
	c := NewMarkdownConverter()

	out, err := c.Convert(context.Background(), []byte("# عنوان\n\n*نص*"))
	require.NoError(t, err)
	assert.Equal(t, "# عنوان\n\n*نص*", out)
}

func TestHTMLConverter_SanitizesAndConverts(t *testing.T) {
	c := NewHTMLConverter()

	input := `<h1>Title</h1><p dir="rtl">مرحبا <strong>بكم</strong><script>alert("x")</script></p>` +
		`<a href="javascript:alert(1)" onclick="steal()">link</a>`

	out, err := c.Convert(context.Background(), []byte(input))
	require.NoError(t, err)

	assert.Contains(t, out, "# Title")
	assert.Contains(t, out, "مرحبا **بكم**")
	assert.Contains(t, out, "link")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "steal")
	assert.NotContains(t, out, "javascript:")
}

func TestHTMLConverter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTMLConverter().Convert(ctx, []byte("<p>x</p>"))
	assert.ErrorIs(t, err, context.Canceled)
}
