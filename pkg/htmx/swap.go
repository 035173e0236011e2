package htmx

// SwapStrategy defines how HTMX should swap content into the target element.
// Values outside the named strategies are raw tokens and pass through unchanged.
type SwapStrategy string

const (
	SwapInnerHTML   SwapStrategy = "innerHTML"   // Replace the inner html of the target element
	SwapOuterHTML   SwapStrategy = "outerHTML"   // Replace the entire target element with the response
	SwapBeforeBegin SwapStrategy = "beforebegin" // Insert before the target element
	SwapAfterBegin  SwapStrategy = "afterbegin"  // Insert before the first child of the target element
	SwapBeforeEnd   SwapStrategy = "beforeend"   // Insert after the last child of the target element
	SwapAfterEnd    SwapStrategy = "afterend"    // Insert after the target element
	SwapDelete      SwapStrategy = "delete"      // Delete the target element
	SwapNone        SwapStrategy = "none"        // Do not swap content
)

var swapStrategies = map[SwapStrategy]struct{}{
	SwapInnerHTML:   {},
	SwapOuterHTML:   {},
	SwapBeforeBegin: {},
	SwapAfterBegin:  {},
	SwapBeforeEnd:   {},
	SwapAfterEnd:    {},
	SwapDelete:      {},
	SwapNone:        {},
}

// SwapRaw wraps an arbitrary token, e.g. "innerHTML swap:1s" or a strategy
// added to HTMX later.
func SwapRaw(token string) SwapStrategy {
	return SwapStrategy(token)
}

// ParseSwapStrategy decodes a wire token.
// Matching is case-sensitive; unknown tokens become raw values, never errors.
func ParseSwapStrategy(token string) SwapStrategy {
	return SwapStrategy(token)
}

// IsRaw reports whether s is outside the named strategies.
func (s SwapStrategy) IsRaw() bool {
	_, ok := swapStrategies[s]
	return !ok
}

// String returns the wire token.
func (s SwapStrategy) String() string {
	return string(s)
}
