// Package templates holds the text templates for the generated C files.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template and parses it with the given funcs.
// funcs may be nil.
func Parse(name string, funcs template.FuncMap) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	if funcs == nil {
		funcs = template.FuncMap{}
	}
	t, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	return t, nil
}
