package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/project"
)

// StatCommand handles the stat command
type StatCommand struct {
	deps Deps
}

// NewStatCommand creates the stat command
func NewStatCommand(deps Deps) *cobra.Command {
	cmd := &StatCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "stat <project>",
		Aliases: []string{"statproject"},
		Short:   "Show the status of a project",
		Long: `Shows one project in detail. The project is found by name across the
active, hold, and archive areas, forgiving case and separator differences
between the given name and the directory name.`,
		Example: `  # Short status block
  pyprojects stat acme-widgets

  # Full record including config sections and dependencies
  pyprojects stat acme-widgets --format markdown

  # Include disk usage and per-language line counts
  pyprojects stat acme-widgets --disk --cloc`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("path", "", "Path to search instead of the project home")
	cobraCmd.Flags().Bool("disk", false, "Calculate disk usage")
	cobraCmd.Flags().Bool("cloc", false, "Count lines of code per language (requires cloc)")
	cobraCmd.Flags().String("format", "stat", "Output format: stat, markdown, or txt")
	cobraCmd.Flags().Bool("color", true, "Colorize stat output")

	return cobraCmd
}

// Run executes the stat command
func (c *StatCommand) Run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	includeDisk, _ := cmd.Flags().GetBool("disk")
	includeCLOC, _ := cmd.Flags().GetBool("cloc")
	format, _ := cmd.Flags().GetString("format")
	color, _ := cmd.Flags().GetBool("color")

	repo := c.deps.Repository()
	p := repo.Autoload(cmd.Context(), args[0], path, project.LoadOptions{
		IncludeDisk: includeDisk,
		IncludeCLOC: includeCLOC,
	})

	if !p.Exists() {
		return EnvironmentError("project not found: %s", args[0])
	}

	if p.HasError() {
		fmt.Printf("Warning: %s\n\n", p.Error())
	}

	switch format {
	case "markdown":
		block, err := p.ToMarkdown()
		if err != nil {
			return err
		}
		fmt.Println(block)
	case "txt":
		fmt.Println(p.ToTxt())
	case "stat":
		fmt.Println(p.ToStat(color))
	default:
		return InputError("unrecognized format: %s", format)
	}

	return nil
}
