package workspace

import (
	"bytes"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// renderMarkdown converts the fallback markdown templates into the HTML
// the presentation layer expects for note and case-study content.
func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return src
	}
	return buf.String()
}
