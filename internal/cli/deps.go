package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/deps"
	"github.com/develmaycare/pyprojectutils/internal/packaging"
	"github.com/develmaycare/pyprojectutils/internal/project"
)

// DepsCommand handles the deps command
type DepsCommand struct {
	deps Deps
}

// NewDepsCommand creates the deps command
func NewDepsCommand(d Deps) *cobra.Command {
	cmd := &DepsCommand{deps: d}

	cobraCmd := &cobra.Command{
		Use:     "deps <project>",
		Aliases: []string{"lsdependencies"},
		Short:   "List the dependencies of a project",
		Long: `Lists a project's dependencies from its packages.ini manifest, falling
back to a flat requirements.pip when no manifest exists.`,
		Example: `  # All dependencies
  pyprojects deps acme-widgets

  # Only the live environment, as install commands
  pyprojects deps acme-widgets --env live --format command

  # Only apt packages
  pyprojects deps acme-widgets --manager apt`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("path", "", "Path to search instead of the project home")
	cobraCmd.Flags().String("env", "", "Filter by environment")
	cobraCmd.Flags().String("manager", "", "Filter by package manager")
	cobraCmd.Flags().String("format", "plain", "Output format: plain, markdown, or command")

	return cobraCmd
}

// Run executes the deps command
func (c *DepsCommand) Run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	env, _ := cmd.Flags().GetString("env")
	manager, _ := cmd.Flags().GetString("manager")
	format, _ := cmd.Flags().GetString("format")

	if manager != "" {
		if _, ok := packaging.LookupManager(manager); !ok {
			return InputError("unrecognized manager: %s", manager)
		}
	}

	repo := c.deps.Repository()
	p := repo.Autoload(cmd.Context(), args[0], path, project.LoadOptions{})
	if !p.Exists() {
		return EnvironmentError("project not found: %s", args[0])
	}

	resolution, err := p.Requirements(env, manager)
	if err != nil {
		return InputError("failed to resolve dependencies: %s", err)
	}

	switch resolution.Mode {
	case deps.ModeNone:
		fmt.Println("No dependency manifest found.")
		return nil
	case deps.ModeRaw:
		for _, line := range resolution.Raw {
			fmt.Println(line)
		}
		return nil
	}

	for _, pkg := range resolution.Packages {
		switch format {
		case "plain":
			plain, err := pkg.Plain()
			if err != nil {
				return InputError("%s", err)
			}
			fmt.Println(plain)
		case "command":
			command, err := pkg.Command()
			if err != nil {
				return InputError("%s", err)
			}
			fmt.Println(command)
		case "markdown":
			block, err := pkg.ToMarkdown()
			if err != nil {
				return InputError("%s", err)
			}
			fmt.Println(block)
		default:
			return InputError("unrecognized format: %s", format)
		}
	}

	return nil
}
