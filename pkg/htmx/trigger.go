package htmx

import (
	"encoding/json"
	"strings"

	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

// HXTriggerID is the request form of HX-Trigger: the id of the triggering element.
func HXTriggerID(id string) httpfields.Field { return field(HeaderHXTrigger, id) }

// HXTriggerEvent is the response form of HX-Trigger.
// The value is sent verbatim; build it with TriggerEvents or TriggerDetails.
func HXTriggerEvent(value string) httpfields.Field { return field(HeaderHXTrigger, value) }

// TriggerEvents joins event names into the comma-separated list form.
func TriggerEvents(names ...string) string {
	return strings.Join(names, ", ")
}

// TriggerDetails encodes events with their detail payloads as a JSON object,
// e.g. {"showMessage":"Saved"}.
func TriggerDetails(events map[string]any) (string, error) {
	b, err := json.Marshal(events)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
