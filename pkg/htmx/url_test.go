package htmx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hxfields/pkg/htmx"
	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

func TestPushURL(t *testing.T) {
	t.Parallel()

	t.Run("url round-trips", func(t *testing.T) {
		t.Parallel()

		f := htmx.HXPushURL(htmx.PushURLTo("/next"))
		assert.Equal(t, htmx.HeaderHXPushURL, f.Name)
		assert.Equal(t, "/next", f.Value)

		got, ok := htmx.Response(httpfields.New(f)).PushURL()
		require.True(t, ok)
		assert.Equal(t, htmx.PushURLTo("/next"), got)
		assert.False(t, got.IsFalse())

		u, ok := got.URL()
		assert.True(t, ok)
		assert.Equal(t, "/next", u)
	})

	t.Run("false round-trips", func(t *testing.T) {
		t.Parallel()

		f := htmx.HXPushURL(htmx.PushURLFalse)
		assert.Equal(t, "false", f.Value)

		got, ok := htmx.Response(httpfields.New(f)).PushURL()
		require.True(t, ok)
		assert.Equal(t, htmx.PushURLFalse, got)
		assert.True(t, got.IsFalse())

		_, ok = got.URL()
		assert.False(t, ok)
	})

	t.Run("url and false are distinct", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, htmx.PushURLTo("/next"), htmx.PushURLFalse)
		assert.NotEqual(t, htmx.HXPushURL(htmx.PushURLTo("/next")), htmx.HXPushURL(htmx.PushURLFalse))
	})

	t.Run("literal false url shares the wire form", func(t *testing.T) {
		t.Parallel()

		u := htmx.PushURLTo("false")
		assert.NotEqual(t, htmx.PushURLFalse, u)
		assert.Equal(t, "false", htmx.HXPushURL(u).Value)
		assert.Equal(t, htmx.PushURLFalse, htmx.ParsePushURL(htmx.HXPushURL(u).Value))
	})

	t.Run("decoding keeps the wire string", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"https://example.com/a?b=c#d", "False", "", " false"} {
			got := htmx.ParsePushURL(s)
			assert.Equal(t, s, got.String())
			assert.False(t, got.IsFalse(), s)
		}
	})

	t.Run("zero value is the empty url", func(t *testing.T) {
		t.Parallel()

		var u htmx.PushURL
		assert.True(t, u.IsZero())
		assert.Equal(t, u, htmx.PushURLTo(""))
		assert.False(t, htmx.PushURLFalse.IsZero())
		assert.False(t, htmx.PushURLTo("/a").IsZero())

		_, ok := u.URL()
		assert.False(t, ok)
	})

	t.Run("zero value round-trips through an empty field", func(t *testing.T) {
		t.Parallel()

		f := htmx.HXPushURL(htmx.PushURL{})
		assert.Equal(t, htmx.HeaderHXPushURL, f.Name)
		assert.Empty(t, f.Value)

		got, ok := htmx.Response(httpfields.New(f)).PushURL()
		require.True(t, ok)
		assert.Equal(t, htmx.PushURL{}, got)
		assert.True(t, got.IsZero())
	})
}

func TestReplaceURL(t *testing.T) {
	t.Parallel()

	t.Run("url round-trips", func(t *testing.T) {
		t.Parallel()

		f := htmx.HXReplaceURL(htmx.ReplaceURLTo("/items?page=2"))
		assert.Equal(t, htmx.HeaderHXReplaceURL, f.Name)

		got, ok := htmx.Response(httpfields.New(f)).ReplaceURL()
		require.True(t, ok)
		assert.Equal(t, htmx.ReplaceURLTo("/items?page=2"), got)
	})

	t.Run("false round-trips", func(t *testing.T) {
		t.Parallel()

		f := htmx.HXReplaceURL(htmx.ReplaceURLFalse)
		assert.Equal(t, "false", f.Value)

		got, ok := htmx.Response(httpfields.New(f)).ReplaceURL()
		require.True(t, ok)
		assert.Equal(t, htmx.ReplaceURLFalse, got)
	})

	t.Run("zero value round-trips through an empty field", func(t *testing.T) {
		t.Parallel()

		f := htmx.HXReplaceURL(htmx.ReplaceURL{})
		assert.Empty(t, f.Value)

		got, ok := htmx.Response(httpfields.New(f)).ReplaceURL()
		require.True(t, ok)
		assert.Equal(t, htmx.ReplaceURL{}, got)
	})
}
