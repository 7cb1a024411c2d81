package draftschema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	infoPolicyOnce sync.Once
	infoPolicy     *bluemonday.Policy
)

// sanitizeInfoMarkup strips everything but basic formatting from info-text
// content. Info blocks are authored in the editor but rendered verbatim to
// applicants, so script-capable markup must not survive a parse.
func sanitizeInfoMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(infoSanitizer().Sanitize(trimmed))
}

func infoSanitizer() *bluemonday.Policy {
	infoPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"p", "br", "strong", "em", "b", "i", "u", "ul", "ol", "li", "a",
		)
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		infoPolicy = policy
	})
	return infoPolicy
}
