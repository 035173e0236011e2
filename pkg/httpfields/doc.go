// Package httpfields provides an ordered, multi-valued HTTP header collection.
//
// net/http stores headers in a map, which loses the order fields were added
// in and canonicalizes names to Go's MIME form ("Hx-Push-Url"). Fields keeps
// every (name, value) pair in insertion order and keeps the name exactly as
// given, while lookups stay case-insensitive as HTTP requires.
//
// # Building fields
//
//	fields := httpfields.New(
//		httpfields.Field{Name: "HX-Retarget", Value: "#timestamp"},
//		httpfields.Field{Name: "HX-Reswap", Value: "outerHTML"},
//	)
//	fields.String() // "HX-Retarget: #timestamp\nHX-Reswap: outerHTML"
//
// # Reading fields
//
// Get returns the first value stored under a name, compared case-insensitively:
//
//	v, ok := fields.Get("hx-reswap") // "outerHTML", true
//
// Any type with the same Get method satisfies Getter. HTTPHeader adapts a
// standard http.Header so code written against Getter works with
// r.Header and w.Header() directly:
//
//	v, ok := httpfields.HTTPHeader(r.Header).Get("HX-Target")
//
// # Writing to a response
//
// AddTo appends every field to an http.Header in order:
//
//	fields.AddTo(w.Header())
package httpfields
