package htmx

import (
	"net/http"

	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

const trueToken = "true"

// HXBoosted marks a request issued by a boosted link or form.
func HXBoosted() httpfields.Field { return flag(HeaderHXBoosted) }

// HXCurrentURL carries the browser's current URL.
func HXCurrentURL(u string) httpfields.Field { return field(HeaderHXCurrentURL, u) }

// HXHistoryRestoreRequest marks a history restoration after a cache miss.
func HXHistoryRestoreRequest() httpfields.Field { return flag(HeaderHXHistoryRestoreRequest) }

// HXPrompt carries the user's answer to hx-prompt.
func HXPrompt(answer string) httpfields.Field { return field(HeaderHXPrompt, answer) }

// HXRequest marks a request issued by HTMX.
func HXRequest() httpfields.Field { return flag(HeaderHXRequest) }

// HXTarget carries the id of the target element.
func HXTarget(id string) httpfields.Field { return field(HeaderHXTarget, id) }

// HXTriggerName carries the name of the triggering element.
func HXTriggerName(name string) httpfields.Field { return field(HeaderHXTriggerName, name) }

// RequestView decodes HTMX request headers from any header collection.
type RequestView struct {
	g httpfields.Getter
}

// Request returns a view over g.
func Request(g httpfields.Getter) RequestView {
	return RequestView{g: g}
}

// FromRequest returns a view over the headers of r.
func FromRequest(r *http.Request) RequestView {
	return Request(httpfields.HTTPHeader(r.Header))
}

// Boosted reports whether HX-Boosted is exactly "true".
func (v RequestView) Boosted() bool { return readFlag(v.g, HeaderHXBoosted) }

// CurrentURL returns HX-Current-URL.
func (v RequestView) CurrentURL() (string, bool) { return read(v.g, HeaderHXCurrentURL) }

// HistoryRestoreRequest reports whether HX-History-Restore-Request is exactly "true".
func (v RequestView) HistoryRestoreRequest() bool {
	return readFlag(v.g, HeaderHXHistoryRestoreRequest)
}

// Prompt returns HX-Prompt. An empty answer is present.
func (v RequestView) Prompt() (string, bool) { return read(v.g, HeaderHXPrompt) }

// IsHTMX reports whether HX-Request is exactly "true".
func (v RequestView) IsHTMX() bool { return readFlag(v.g, HeaderHXRequest) }

// Target returns HX-Target.
func (v RequestView) Target() (string, bool) { return read(v.g, HeaderHXTarget) }

// TriggerName returns HX-Trigger-Name.
func (v RequestView) TriggerName() (string, bool) { return read(v.g, HeaderHXTriggerName) }

// Trigger returns the id of the triggering element.
func (v RequestView) Trigger() (string, bool) { return read(v.g, HeaderHXTrigger) }

func field(name httpfields.Name, value string) httpfields.Field {
	return httpfields.Field{Name: name, Value: value}
}

func flag(name httpfields.Name) httpfields.Field {
	return field(name, trueToken)
}

func read(g httpfields.Getter, name httpfields.Name) (string, bool) {
	if g == nil {
		return "", false
	}
	return g.Get(name)
}

// readFlag accepts only the literal "true"; "True", "1" and "false" all read as false.
func readFlag(g httpfields.Getter, name httpfields.Name) bool {
	v, ok := read(g, name)
	return ok && v == trueToken
}
