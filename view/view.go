// Package view renders the HTML pages of the login endpoint with pongo2.
package view

import (
	"fmt"
	"go-login-api/model"
	"io"

	pongo2 "github.com/flosch/pongo2/v6"
)

// The result page is built only from fixed markup and the outcome message.
// Submitted values must never be passed into its context.
const resultTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{ message }}</title></head>
<body><h2>{{ message }}</h2></body>
</html>
`

const formTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Login</title></head>
<body>
<form method="post" action="{{ action }}" accept-charset="UTF-8">
  <label for="username">Username</label>
  <input type="text" id="username" name="username" autocomplete="username" required>
  <label for="password">Password</label>
  <input type="password" id="password" name="password" autocomplete="current-password" required>
  <button type="submit">Submit</button>
</form>
</body>
</html>
`

// Renderer holds the compiled templates. It is safe for concurrent use.
type Renderer struct {
	result *pongo2.Template
	form   *pongo2.Template
	action string
}

// NewRenderer compiles the templates. action is the URL the form posts to.
func NewRenderer(action string) (*Renderer, error) {
	result, err := pongo2.FromString(resultTemplate)
	if err != nil {
		return nil, fmt.Errorf("compile result template: %w", err)
	}
	form, err := pongo2.FromString(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("compile form template: %w", err)
	}
	return &Renderer{result: result, form: form, action: action}, nil
}

func (r *Renderer) RenderResult(w io.Writer, outcome model.LoginOutcome) error {
	return r.result.ExecuteWriter(pongo2.Context{"message": outcome.Message()}, w)
}

func (r *Renderer) RenderForm(w io.Writer) error {
	return r.form.ExecuteWriter(pongo2.Context{"action": r.action}, w)
}
