package internal

// ExtractorSource reads one candidate value from a request.
// An empty value counts as a miss.
type ExtractorSource = func(Context) (string, bool)

// Extractor resolves a value from an ordered list of sources; the first hit wins.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor returns an Extractor over sources, consulted in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false) when every source misses.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource { return lookup(Context.Header, name) }

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource { return lookup(Context.Query, name) }

// FromForm reads a form field, which includes the query for GET requests.
func FromForm(name string) ExtractorSource { return lookup(Context.Form, name) }

func lookup(get func(Context, string) string, name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := get(c, name)
		return v, v != ""
	}
}
