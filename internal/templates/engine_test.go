package templates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_SubstitutesContext(t *testing.T) {
	engine := NewEngine()

	out, err := engine.Render("# {{.title}}\n\n{{.description}}\n", map[string]string{
		"title":       "Acme Widgets",
		"description": "A widget management system.",
	})
	require.NoError(t, err)
	require.Equal(t, "# Acme Widgets\n\nA widget management system.\n", out)
}

func TestRender_SprigFunctionsAvailable(t *testing.T) {
	engine := NewEngine()

	out, err := engine.Render("{{.name | upper}}", map[string]string{"name": "acme"})
	require.NoError(t, err)
	require.Equal(t, "ACME", out)
}

func TestRender_ParseFailure(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Render("{{.unclosed", nil)
	require.Error(t, err)
}
