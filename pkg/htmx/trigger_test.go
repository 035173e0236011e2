package htmx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hxfields/pkg/htmx"
)

func TestTriggerShapes(t *testing.T) {
	t.Parallel()

	t.Run("request and response share the wire shape", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, htmx.HXTriggerID("save"), htmx.HXTriggerEvent("save"))
	})

	t.Run("event list", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "saved", htmx.TriggerEvents("saved"))
		assert.Equal(t, "saved, closeModal", htmx.TriggerEvents("saved", "closeModal"))
		assert.Empty(t, htmx.TriggerEvents())
	})

	t.Run("event details", func(t *testing.T) {
		t.Parallel()

		v, err := htmx.TriggerDetails(map[string]any{
			"showMessage": "This alert was triggered by HX-Trigger",
		})
		require.NoError(t, err)
		assert.Equal(t, `{"showMessage":"This alert was triggered by HX-Trigger"}`, v)
	})

	t.Run("event details with nested payload", func(t *testing.T) {
		t.Parallel()

		v, err := htmx.TriggerDetails(map[string]any{
			"b": map[string]int{"level": 2},
			"a": nil,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"a":null,"b":{"level":2}}`, v)
	})

	t.Run("unmarshalable details", func(t *testing.T) {
		t.Parallel()

		_, err := htmx.TriggerDetails(map[string]any{"bad": func() {}})
		assert.Error(t, err)
	})
}
