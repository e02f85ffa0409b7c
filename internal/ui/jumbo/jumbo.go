// Package jumbo renders the banner shown at the top of a game page.
package jumbo

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/jumbo.html.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/jumbo.html.tmpl"))

// Props are the inputs of the banner. Both fields may be empty.
type Props struct {
	ServerName  string
	Description string
}

// Jumbo is a stateless banner component.
type Jumbo struct {
	props Props
}

// New returns a banner for the given props.
func New(props Props) *Jumbo {
	return &Jumbo{props: props}
}

// Render writes the banner markup to w.
func (j *Jumbo) Render(_ context.Context, w io.Writer) error {
	return tmpl.ExecuteTemplate(w, "jumbo", j.props)
}

// HTML renders the banner into a value that can be embedded in another html/template.
func (j *Jumbo) HTML(ctx context.Context) (template.HTML, error) {
	var buf bytes.Buffer
	if err := j.Render(ctx, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
