package content

import (
	"regexp"
	"strings"
)

var (
	openFenceRe  = regexp.MustCompile("^```[a-zA-Z0-9_-]*[ \t]*\r?\n")
	closeFenceRe = regexp.MustCompile("\r?\n```\\s*$")
	rootVarsRe   = regexp.MustCompile(`(?s):root\s*\{[^}]*\}`)
)

// stripFences removes a leading and trailing markdown code fence.
// Models wrap output in fences no matter how firmly told not to.
func stripFences(s string) string {
	out := strings.TrimSpace(s)
	out = openFenceRe.ReplaceAllString(out, "")
	out = closeFenceRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// stripRootVars removes any :root variable block the model re-declared
// despite being told the host owns that scope.
func stripRootVars(s string) string {
	return rootVarsRe.ReplaceAllString(s, "")
}

// closeScript appends a closing script tag when one was opened and
// never closed, so a truncated completion does not break the page.
func closeScript(s string) string {
	if strings.Contains(s, "<script") && !strings.Contains(s, "</script>") {
		return s + "\n</script>"
	}
	return s
}
