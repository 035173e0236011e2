package htmx

import (
	"net/textproto"
	"strings"

	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

// Response headers.
const (
	HeaderHXLocation           httpfields.Name = "HX-Location"
	HeaderHXPushURL            httpfields.Name = "HX-Push-Url"
	HeaderHXRedirect           httpfields.Name = "HX-Redirect"
	HeaderHXRefresh            httpfields.Name = "HX-Refresh"
	HeaderHXReplaceURL         httpfields.Name = "HX-Replace-Url"
	HeaderHXReswap             httpfields.Name = "HX-Reswap"
	HeaderHXRetarget           httpfields.Name = "HX-Retarget"
	HeaderHXReselect           httpfields.Name = "HX-Reselect"
	HeaderHXTriggerAfterSettle httpfields.Name = "HX-Trigger-After-Settle"
	HeaderHXTriggerAfterSwap   httpfields.Name = "HX-Trigger-After-Swap"
)

// Request headers.
const (
	HeaderHXBoosted               httpfields.Name = "HX-Boosted"
	HeaderHXCurrentURL            httpfields.Name = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest httpfields.Name = "HX-History-Restore-Request"
	HeaderHXPrompt                httpfields.Name = "HX-Prompt"
	HeaderHXRequest               httpfields.Name = "HX-Request"
	HeaderHXTarget                httpfields.Name = "HX-Target"
	HeaderHXTriggerName           httpfields.Name = "HX-Trigger-Name"
)

// HeaderHXTrigger carries the triggering element id on requests
// and the event name(s) or event JSON on responses.
const HeaderHXTrigger httpfields.Name = "HX-Trigger"

var requestHeaders = []httpfields.Name{
	HeaderHXBoosted,
	HeaderHXCurrentURL,
	HeaderHXHistoryRestoreRequest,
	HeaderHXPrompt,
	HeaderHXRequest,
	HeaderHXTarget,
	HeaderHXTriggerName,
	HeaderHXTrigger,
}

var responseHeaders = []httpfields.Name{
	HeaderHXLocation,
	HeaderHXPushURL,
	HeaderHXRedirect,
	HeaderHXRefresh,
	HeaderHXReplaceURL,
	HeaderHXReswap,
	HeaderHXRetarget,
	HeaderHXReselect,
	HeaderHXTriggerAfterSettle,
	HeaderHXTriggerAfterSwap,
	HeaderHXTrigger,
}

// canonicalNames maps lower-cased names to their canonical form.
var canonicalNames = func() map[string]httpfields.Name {
	m := make(map[string]httpfields.Name, len(requestHeaders)+len(responseHeaders))
	for _, n := range requestHeaders {
		m[strings.ToLower(string(n))] = n
	}
	for _, n := range responseHeaders {
		m[strings.ToLower(string(n))] = n
	}
	return m
}()

// RequestHeaders returns the headers HTMX sends with a request.
func RequestHeaders() []httpfields.Name {
	return append([]httpfields.Name(nil), requestHeaders...)
}

// ResponseHeaders returns the headers HTMX understands on a response.
func ResponseHeaders() []httpfields.Name {
	return append([]httpfields.Name(nil), responseHeaders...)
}

// CanonicalName returns the documented casing of a known HTMX header
// (so "hx-current-url" and "Hx-Current-Url" both become "HX-Current-URL").
// Unknown names are returned in MIME canonical form.
func CanonicalName(name string) httpfields.Name {
	if n, ok := canonicalNames[strings.ToLower(name)]; ok {
		return n
	}
	return httpfields.Name(textproto.CanonicalMIMEHeaderKey(name))
}
