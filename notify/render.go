// Package notify renders and delivers release run notifications.
package notify

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

// Context carries everything the notification body needs. It is assembled
// from the finalized run; rendering reads nothing else.
type Context struct {
	Project     string
	BuildNumber string
	Branch      string
	Environment string
	Version     string
	BuildURL    string
	RunID       string
	Status      string
	ReportURL   string
}

//go:embed mail.html.tmpl
var mailTemplate string

var bodyTmpl = template.Must(template.New("mail").Parse(mailTemplate))

// statusColors keys the notification accent by final run status.
var statusColors = map[string]string{
	"SUCCESS": "#2e7d32",
	"FAILURE": "#c62828",
}

// RenderBody renders the HTML notification body for ctx. It is a pure
// function of its input: the same Context always yields the same bytes.
func RenderBody(ctx Context) (string, error) {
	color, ok := statusColors[ctx.Status]
	if !ok {
		color = "#616161"
	}

	// Build and report links are produced internally (CI server, artifact
	// store); mark them safe so non-http schemes like file:// survive.
	data := struct {
		Context
		Color      template.CSS
		BuildLink  template.URL
		ReportLink template.URL
	}{ctx, template.CSS(color), template.URL(ctx.BuildURL), template.URL(ctx.ReportURL)}

	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering notification body: %w", err)
	}
	return buf.String(), nil
}
