package htmx

import (
	"net/http"

	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

// HXLocation navigates without a full reload. The value is a path or a JSON context.
func HXLocation(value string) httpfields.Field { return field(HeaderHXLocation, value) }

// HXPushURL pushes a URL into the history, or prevents it with PushURLFalse.
func HXPushURL(u PushURL) httpfields.Field { return field(HeaderHXPushURL, u.String()) }

// HXRedirect performs a client-side redirect with a full reload.
func HXRedirect(u string) httpfields.Field { return field(HeaderHXRedirect, u) }

// HXRefresh forces a full page refresh.
func HXRefresh() httpfields.Field { return flag(HeaderHXRefresh) }

// HXReplaceURL replaces the current URL, or prevents it with ReplaceURLFalse.
func HXReplaceURL(u ReplaceURL) httpfields.Field { return field(HeaderHXReplaceURL, u.String()) }

// HXReswap overrides hx-swap.
func HXReswap(s SwapStrategy) httpfields.Field { return field(HeaderHXReswap, s.String()) }

// HXRetarget overrides hx-target with a CSS selector.
func HXRetarget(selector string) httpfields.Field { return field(HeaderHXRetarget, selector) }

// HXReselect overrides hx-select with a CSS selector.
func HXReselect(selector string) httpfields.Field { return field(HeaderHXReselect, selector) }

// HXTriggerAfterSettle triggers client events after the settle step.
func HXTriggerAfterSettle(events string) httpfields.Field {
	return field(HeaderHXTriggerAfterSettle, events)
}

// HXTriggerAfterSwap triggers client events after the swap step.
func HXTriggerAfterSwap(events string) httpfields.Field {
	return field(HeaderHXTriggerAfterSwap, events)
}

// ResponseView decodes HTMX response headers from any header collection.
type ResponseView struct {
	g httpfields.Getter
}

// Response returns a view over g.
func Response(g httpfields.Getter) ResponseView {
	return ResponseView{g: g}
}

// FromResponse returns a view over the headers of r.
func FromResponse(r *http.Response) ResponseView {
	return Response(httpfields.HTTPHeader(r.Header))
}

// Location returns HX-Location verbatim.
func (v ResponseView) Location() (string, bool) { return read(v.g, HeaderHXLocation) }

// PushURL returns HX-Push-Url.
func (v ResponseView) PushURL() (PushURL, bool) {
	s, ok := read(v.g, HeaderHXPushURL)
	if !ok {
		return PushURL{}, false
	}
	return ParsePushURL(s), true
}

// Redirect returns HX-Redirect.
func (v ResponseView) Redirect() (string, bool) { return read(v.g, HeaderHXRedirect) }

// Refresh reports whether HX-Refresh is exactly "true".
func (v ResponseView) Refresh() bool { return readFlag(v.g, HeaderHXRefresh) }

// ReplaceURL returns HX-Replace-Url.
func (v ResponseView) ReplaceURL() (ReplaceURL, bool) {
	s, ok := read(v.g, HeaderHXReplaceURL)
	if !ok {
		return ReplaceURL{}, false
	}
	return ParseReplaceURL(s), true
}

// Reswap returns HX-Reswap. Unknown tokens come back raw.
func (v ResponseView) Reswap() (SwapStrategy, bool) {
	s, ok := read(v.g, HeaderHXReswap)
	if !ok {
		return "", false
	}
	return ParseSwapStrategy(s), true
}

// Retarget returns HX-Retarget.
func (v ResponseView) Retarget() (string, bool) { return read(v.g, HeaderHXRetarget) }

// Reselect returns HX-Reselect.
func (v ResponseView) Reselect() (string, bool) { return read(v.g, HeaderHXReselect) }

// Trigger returns HX-Trigger as sent: an event name, a list, or JSON.
func (v ResponseView) Trigger() (string, bool) { return read(v.g, HeaderHXTrigger) }

// TriggerAfterSettle returns HX-Trigger-After-Settle.
func (v ResponseView) TriggerAfterSettle() (string, bool) {
	return read(v.g, HeaderHXTriggerAfterSettle)
}

// TriggerAfterSwap returns HX-Trigger-After-Swap.
func (v ResponseView) TriggerAfterSwap() (string, bool) {
	return read(v.g, HeaderHXTriggerAfterSwap)
}
