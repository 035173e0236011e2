package htmx

import (
	"net/http"
)

// Redirect performs a redirect for both HTMX and regular requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusFound)
}

// RedirectWithStatus performs a redirect with a custom status code.
// HTMX requests always get 200; the browser follows HX-Redirect itself.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if !IsHTMX(r) {
		http.Redirect(w, r, targetURL, status)
		return
	}

	setField(w.Header(), HXRedirect(targetURL))
	w.WriteHeader(http.StatusOK)
}

// RedirectBack redirects to the "redirect" query parameter, or to fallback.
// Only local paths are honored.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := r.URL.Query().Get("redirect")
	if !isLocalPath(target) {
		target = fallback
	}

	Redirect(w, r, target)
}

func isLocalPath(p string) bool {
	return len(p) > 0 && p[0] == '/' && (len(p) == 1 || (p[1] != '/' && p[1] != '\\'))
}
