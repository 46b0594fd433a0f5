// Package templates renders scaffolding text from a template string and a
// context mapping.
package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Engine renders templates with the sprig function set available
type Engine struct{}

// NewEngine creates an engine
func NewEngine() *Engine {
	return &Engine{}
}

// Render executes the template source against the context mapping
func (e *Engine) Render(source string, context map[string]string) (string, error) {
	tmpl, err := template.New("scaffold").Funcs(sprig.FuncMap()).Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, context); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return b.String(), nil
}
