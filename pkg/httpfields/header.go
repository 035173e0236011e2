package httpfields

import (
	"net/http"
	"slices"
	"strings"
)

// HTTPHeader adapts an http.Header to the Getter interface.
type HTTPHeader http.Header

// Get returns the first value stored under name.
// The Go-canonical key is tried first, then any key that matches case-insensitively,
// so headers assigned directly into the map with their wire casing are found too.
// When several such keys exist, the lexically smallest one wins.
func (h HTTPHeader) Get(name Name) (string, bool) {
	if vs := http.Header(h).Values(string(name)); len(vs) > 0 {
		return vs[0], true
	}
	var keys []string
	for k, vs := range h {
		if len(vs) > 0 && strings.EqualFold(k, string(name)) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	return h[slices.Min(keys)][0], true
}
