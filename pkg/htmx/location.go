package htmx

import (
	"encoding/json"
	"net/http"
)

// LocationOptions is the JSON context form of HX-Location.
type LocationOptions struct {
	Path    string            `json:"path"`
	Source  string            `json:"source,omitempty"`
	Event   string            `json:"event,omitempty"`
	Handler string            `json:"handler,omitempty"`
	Target  string            `json:"target,omitempty"`
	Swap    SwapStrategy      `json:"swap,omitempty"`
	Values  map[string]string `json:"values,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Select  string            `json:"select,omitempty"`
}

// Value returns the HX-Location value: the bare path when no other option
// is set, the JSON context otherwise.
func (o LocationOptions) Value() string {
	if o.pathOnly() {
		return o.Path
	}
	b, err := json.Marshal(o)
	if err != nil {
		return o.Path
	}
	return string(b)
}

func (o LocationOptions) pathOnly() bool {
	return o.Source == "" && o.Event == "" && o.Handler == "" && o.Target == "" &&
		o.Swap == "" && len(o.Values) == 0 && len(o.Headers) == 0 && o.Select == ""
}

// Location performs a client-side navigation with URL update and history entry.
func Location(w http.ResponseWriter, r *http.Request, path string) {
	LocationWithOptions(w, r, LocationOptions{Path: path})
}

// LocationTarget performs a client-side navigation that updates a specific element.
func LocationTarget(w http.ResponseWriter, r *http.Request, path, target string) {
	LocationWithOptions(w, r, LocationOptions{Path: path, Target: target})
}

// LocationWithOptions performs a client-side navigation with full HTMX location options.
// Regular requests get a 302 to opts.Path.
func LocationWithOptions(w http.ResponseWriter, r *http.Request, opts LocationOptions) {
	if !IsHTMX(r) {
		http.Redirect(w, r, opts.Path, http.StatusFound)
		return
	}

	setField(w.Header(), HXLocation(opts.Value()))
	w.WriteHeader(http.StatusOK)
}
