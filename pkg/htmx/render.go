package htmx

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

// Renderable is the interface for OOB components.
// Compatible with templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds the HTMX response settings for a single render.
type Config struct {
	OOBComponents       []Renderable
	Retarget            string
	Reswap              SwapStrategy
	Reselect            string
	PushURL             PushURL
	ReplaceURL          ReplaceURL
	Triggers            []string
	TriggersAfterSwap   []string
	TriggersAfterSettle []string
	Refresh             bool
}

// RenderOption configures HTMX render behavior.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Fields returns the configured headers in a fixed order:
// retarget, reswap, reselect, push, replace, triggers, refresh.
func (c *Config) Fields() httpfields.Fields {
	var f httpfields.Fields
	if c == nil {
		return f
	}

	if c.Retarget != "" {
		f.Append(HXRetarget(c.Retarget))
	}
	if c.Reswap != "" {
		f.Append(HXReswap(c.Reswap))
	}
	if c.Reselect != "" {
		f.Append(HXReselect(c.Reselect))
	}
	if !c.PushURL.IsZero() {
		f.Append(HXPushURL(c.PushURL))
	}
	if !c.ReplaceURL.IsZero() {
		f.Append(HXReplaceURL(c.ReplaceURL))
	}
	if len(c.Triggers) > 0 {
		f.Append(HXTriggerEvent(TriggerEvents(c.Triggers...)))
	}
	if len(c.TriggersAfterSwap) > 0 {
		f.Append(HXTriggerAfterSwap(TriggerEvents(c.TriggersAfterSwap...)))
	}
	if len(c.TriggersAfterSettle) > 0 {
		f.Append(HXTriggerAfterSettle(TriggerEvents(c.TriggersAfterSettle...)))
	}
	if c.Refresh {
		f.Append(HXRefresh())
	}
	return f
}

// ApplyHeaders sets HTMX headers on the response.
// Must run before WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	h := w.Header()
	for fld := range c.Fields().All() {
		setField(h, fld)
	}
}

// WithOOB appends out-of-band components to render after the main component.
// Components must include id and hx-swap-oob attributes.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets HX-Retarget.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets HX-Reswap.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithReselect sets HX-Reselect.
func WithReselect(selector string) RenderOption {
	return func(c *Config) {
		c.Reselect = selector
	}
}

// WithPushURL sets HX-Push-Url. Use PushURLFalse to keep history unchanged.
func WithPushURL(u PushURL) RenderOption {
	return func(c *Config) {
		c.PushURL = u
	}
}

// WithReplaceURL sets HX-Replace-Url. Use ReplaceURLFalse to keep the URL unchanged.
func WithReplaceURL(u ReplaceURL) RenderOption {
	return func(c *Config) {
		c.ReplaceURL = u
	}
}

// WithTrigger adds events to HX-Trigger. Multiple events are comma-joined.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithTriggerAfterSwap adds events to HX-Trigger-After-Swap.
func WithTriggerAfterSwap(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSwap = append(c.TriggersAfterSwap, events...)
	}
}

// WithTriggerAfterSettle adds events to HX-Trigger-After-Settle.
func WithTriggerAfterSettle(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSettle = append(c.TriggersAfterSettle, events...)
	}
}

// WithRefresh sets HX-Refresh to force a full page refresh.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
