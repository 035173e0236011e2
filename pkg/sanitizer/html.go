package sanitizer

import (
	"html"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// safePolicy allows the formatting produced by rendered markdown.
var safePolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br",
		"strong", "b", "em", "i",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
	)
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
})

// StripHTML removes all markup. The result is HTML-escaped text.
func StripHTML(s string) string {
	return strictPolicy().Sanitize(s)
}

// SanitizeHTML keeps safe formatting (paragraphs, emphasis, lists, code, links)
// and drops scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	return safePolicy().Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

// PlainText strips markup, decodes entities and trims surrounding space.
// The result is unescaped and must be escaped again when written into HTML.
// A positive maxRunes truncates the result.
func PlainText(s string, maxRunes int) string {
	out := strings.TrimSpace(html.UnescapeString(StripHTML(s)))
	if maxRunes <= 0 || utf8.RuneCountInString(out) <= maxRunes {
		return out
	}
	return string([]rune(out)[:maxRunes])
}
