// Package templates embeds the HTML templates so pages render the same
// from the compiled binary and from the handler tests.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.tmpl"))
}
