package htmx

const falseToken = "false"

// historyValue is either the "false" sentinel or a URL.
type historyValue struct {
	url      string
	disabled bool
}

// String returns the wire form: "false" for the sentinel, the URL otherwise.
func (v historyValue) String() string {
	if v.disabled {
		return falseToken
	}
	return v.url
}

// IsFalse reports whether the value is the sentinel that leaves history untouched.
func (v historyValue) IsFalse() bool {
	return v.disabled
}

// URL returns the held URL. It reports false for the sentinel and for the empty URL.
func (v historyValue) URL() (string, bool) {
	if v.disabled || v.url == "" {
		return "", false
	}
	return v.url, true
}

// IsZero reports whether the value is the empty URL.
func (v historyValue) IsZero() bool {
	return !v.disabled && v.url == ""
}

// PushURL is the value of HX-Push-Url.
// The zero value is the empty URL, so PushURLTo("") == PushURL{}.
// Config.Fields skips it; HXPushURL always emits a field, with an empty value
// for the zero value, which decodes back to the zero value.
//
// PushURLTo("false") and PushURLFalse are different values but share
// the same wire form; the protocol cannot tell them apart.
type PushURL struct {
	historyValue
}

// ReplaceURL is the value of HX-Replace-Url. It follows the same rules as PushURL.
type ReplaceURL struct {
	historyValue
}

var (
	// PushURLFalse prevents the browser history from being updated.
	PushURLFalse = PushURL{historyValue{disabled: true}}
	// ReplaceURLFalse prevents the current URL from being replaced.
	ReplaceURLFalse = ReplaceURL{historyValue{disabled: true}}
)

// PushURLTo pushes u into the browser history.
func PushURLTo(u string) PushURL {
	return PushURL{historyValue{url: u}}
}

// ReplaceURLTo replaces the current URL with u.
func ReplaceURLTo(u string) ReplaceURL {
	return ReplaceURL{historyValue{url: u}}
}

// ParsePushURL decodes a wire value. Only the exact string "false" is the sentinel.
func ParsePushURL(s string) PushURL {
	if s == falseToken {
		return PushURLFalse
	}
	return PushURLTo(s)
}

// ParseReplaceURL decodes a wire value. Only the exact string "false" is the sentinel.
func ParseReplaceURL(s string) ReplaceURL {
	if s == falseToken {
		return ReplaceURLFalse
	}
	return ReplaceURLTo(s)
}
