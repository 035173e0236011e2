// Package htmx provides typed HTMX request and response headers.
//
// Every header has an encoder returning an httpfields.Field and an accessor
// on a decoding view. Encoders never fail, and decoders never fail either:
// a missing header reads as absent, and an unknown swap token reads as a raw
// value.
//
// # Request Detection
//
// Use IsHTMX to check if an incoming HTTP request originated from an HTMX element:
//
//	func myHandler(w http.ResponseWriter, r *http.Request) {
//		if htmx.IsHTMX(r) {
//			// Handle HTMX-specific logic
//		}
//	}
//
// FromRequest exposes the remaining request headers:
//
//	req := htmx.FromRequest(r)
//	target, ok := req.Target()
//	boosted := req.Boosted()
//
// Flags such as HX-Request and HX-Boosted are true only when the value is
// exactly "true".
//
// # Building Headers
//
//	fields := httpfields.New(
//		htmx.HXRetarget("#timestamp"),
//		htmx.HXReswap(htmx.SwapOuterHTML),
//	)
//	fields.AddTo(w.Header())
//
// Request and Response decode any httpfields.Getter, so the same code reads
// an ordered httpfields.Fields or a plain http.Header:
//
//	strategy, ok := htmx.Response(fields).Reswap() // SwapOuterHTML, true
//
// # Swap Strategies
//
// SwapStrategy holds one of the named strategies below, or a raw token:
//   - SwapInnerHTML: Replace inner HTML (default)
//   - SwapOuterHTML: Replace entire element
//   - SwapBeforeBegin: Insert before element
//   - SwapAfterBegin: Insert before first child
//   - SwapBeforeEnd: Insert after last child
//   - SwapAfterEnd: Insert after element
//   - SwapDelete: Remove the element
//   - SwapNone: Don't swap
//
// SwapRaw("innerHTML swap:1s") carries modifiers or future strategies through
// unchanged; IsRaw reports whether a value is outside the named set.
//
// # History
//
// HX-Push-Url and HX-Replace-Url take either a URL or the "false" sentinel:
//
//	htmx.HXPushURL(htmx.PushURLTo("/next")) // HX-Push-Url: /next
//	htmx.HXPushURL(htmx.PushURLFalse)       // HX-Push-Url: false
//
// # Triggering Events
//
// HX-Trigger is sent verbatim. TriggerEvents builds the list form and
// TriggerDetails the JSON form:
//
//	v, _ := htmx.TriggerDetails(map[string]any{"showMessage": "Saved"})
//	htmx.HXTriggerEvent(v) // HX-Trigger: {"showMessage":"Saved"}
//
// # Navigation and Redirects
//
// Location and Redirect detect HTMX requests and answer with HX-Location or
// HX-Redirect; regular requests get a standard HTTP redirect:
//
//	htmx.Redirect(w, r, "/new-page")
//	htmx.LocationTarget(w, r, "/api/users", "#user-list")
package htmx
