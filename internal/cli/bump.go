package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/project"
)

// BumpCommand handles the bump command
type BumpCommand struct {
	deps Deps
}

// NewBumpCommand creates the bump command
func NewBumpCommand(deps Deps) *cobra.Command {
	cmd := &BumpCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "bump <project>",
		Aliases: []string{"bumpversion"},
		Short:   "Increment a project's version",
		Long: `Increments the version recorded in the project's VERSION.txt. Bumping a
component resets the lower components and drops any pre-release suffix
unless a new one is given with --pre.`,
		Example: `  # 1.2.3 -> 1.2.4
  pyprojects bump acme-widgets

  # 1.2.3 -> 1.3.0-d
  pyprojects bump acme-widgets --part minor --pre d`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("path", "", "Path to search instead of the project home")
	cobraCmd.Flags().String("part", "patch", "Version part to bump: major, minor, or patch")
	cobraCmd.Flags().String("pre", "", "Pre-release suffix for the new version")

	return cobraCmd
}

// Run executes the bump command
func (c *BumpCommand) Run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	partFlag, _ := cmd.Flags().GetString("part")
	preRelease, _ := cmd.Flags().GetString("pre")

	part, err := project.ParseBumpPart(partFlag)
	if err != nil {
		return InputError("%s", err)
	}

	repo := c.deps.Repository()
	p := repo.Autoload(cmd.Context(), args[0], path, project.LoadOptions{})
	if !p.Exists() {
		return EnvironmentError("project not found: %s", args[0])
	}

	previous := p.Version
	next, err := p.BumpVersion(part, preRelease)
	if err != nil {
		return InputError("failed to bump version: %s", err)
	}

	fmt.Printf("%s: %s -> %s\n", p.Name, previous, next)
	return nil
}
