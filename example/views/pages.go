package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// LocationPage is the first page of the HX-Location round trip.
func LocationPage() templ.Component {
	return Layout(section(
		"HX-Location Example",
		"Pressing the button will do client-side redirection via the HX-Location header",
		templ.Raw(`    <button hx-post="/examples/hx-location">Submit</button>`),
	))
}

// LocationBPage is where HX-Location sends the user.
func LocationBPage() templ.Component {
	return Layout(section(
		"Redirected!",
		"You got redirected here via HX-Location header, click the button to be redirected back.",
		templ.Raw(`    <button hx-post="/examples/hx-location-b">Submit</button>`),
	))
}

// ReswapPage shows the timestamp input and a button that refreshes it.
func ReswapPage(timestamp string) templ.Component {
	return Layout(section(
		"HX-Reswap Example",
		"This example uses HX-Reswap and HX-Retarget headers to update the input with the server's current timestamp",
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if err := write(w, `    <button hx-get="/examples/hx-reswap" hx-swap="none">Swap via HX-Reswap and HX-Retarget</button>
    <br>
    <br>
    `); err != nil {
				return err
			}
			return TimestampInput(timestamp).Render(ctx, w)
		}),
	))
}

// TimestampInput is the element HX-Retarget points at.
func TimestampInput(timestamp string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<input id="timestamp" value="`, templ.EscapeString(timestamp), `" readonly />`)
	})
}

// TriggerPage listens for the showMessage event fired by HX-Trigger.
func TriggerPage() templ.Component {
	return Layout(section(
		"HX-Trigger Example",
		"This example uses HX-Trigger to trigger a client-side event that shows an alert",
		templ.Raw(`    <button hx-post="/examples/hx-trigger" hx-swap="none">Trigger</button>
  </div>
  <script>
    document.body.addEventListener("showMessage", function(evt){
      alert(evt.detail.value);
    })
  </script>
  <div>`),
	))
}

// PromptPage asks for a name with hx-prompt.
func PromptPage() templ.Component {
	return Layout(section(
		"HX-Prompt Example",
		"The answer to the browser prompt is sent to the server in the HX-Prompt header",
		templ.Raw(`    <button hx-post="/examples/hx-prompt" hx-prompt="What is your name?" hx-target="#answer">Ask</button>
    <p id="answer"></p>`),
	))
}

// PromptAnswer echoes the prompt answer. Empty answers get a placeholder.
func PromptAnswer(answer string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if answer == "" {
			return write(w, `<p id="answer"><em>No answer given</em></p>`)
		}
		return write(w, `<p id="answer">Hello, `, templ.EscapeString(answer), `!</p>`)
	})
}

// PushURLPage shows the current step and the buttons that advance it.
func PushURLPage(step int) templ.Component {
	return Layout(section(
		"HX-Push-Url Example",
		"The server decides whether each step is added to the browser history",
		PushURLStep(step),
	))
}

// PushURLStep is the fragment swapped on every step.
func PushURLStep(step int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		s := strconv.Itoa(step)
		next := strconv.Itoa(step + 1)
		return write(w, `    <div id="step">
      <p>Step `, s, `</p>
      <form hx-post="/examples/hx-push-url" hx-target="#step" hx-swap="outerHTML">
        <input type="hidden" name="step" value="`, next, `">
        <label><input type="checkbox" name="push" value="false"> Skip history</label>
        <button type="submit">Next</button>
      </form>
    </div>`)
	})
}
