package mailer

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template names understood by the worker.
const (
	TemplateWelcome = "welcome"
)

// EmailJob is the JSON payload put on the RabbitMQ queue. Either Text or
// Template must be set; Template wins when both are present.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

var welcomeTmpl = template.Must(template.New(TemplateWelcome).Parse(
	"Hi {{.Name}},\n\nYour account is ready. Log in and start writing.\n",
))

// Render resolves the job's template into a text body.
func (j *EmailJob) Render() (string, error) {
	switch j.Template {
	case "":
		return j.Text, nil
	case TemplateWelcome:
		var buf bytes.Buffer
		if err := welcomeTmpl.Execute(&buf, j.Data); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unknown email template %q", j.Template)
	}
}
