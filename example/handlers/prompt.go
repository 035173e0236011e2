package handlers

import (
	"net/http"

	"github.com/dmitrymomot/hxfields/example/views"
	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/pkg/sanitizer"
)

// maxPromptRunes bounds the echoed answer.
const maxPromptRunes = 100

// Prompt echoes the answer to hx-prompt.
type Prompt struct{}

func NewPrompt() *Prompt { return &Prompt{} }

func (h *Prompt) Routes(r internal.Router) {
	r.GET("/examples/hx-prompt", h.show)
	r.POST("/examples/hx-prompt", h.answer, requireHTMX)
}

func (h *Prompt) show(c internal.Context) error {
	return c.Render(http.StatusOK, views.PromptPage())
}

func (h *Prompt) answer(c internal.Context) error {
	answer, _ := c.HTMX().Prompt()
	return c.Render(http.StatusOK, views.PromptAnswer(sanitizer.PlainText(answer, maxPromptRunes)))
}
