package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/models"
	"github.com/develmaycare/pyprojectutils/internal/project"
)

// InitCommand handles the init command
type InitCommand struct {
	deps Deps
}

// NewInitCommand creates the init command
func NewInitCommand(deps Deps) *cobra.Command {
	cmd := &InitCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "init <project>",
		Aliases: []string{"initproject"},
		Short:   "Initialize a project directory",
		Long: `Scaffolds the standard files of a new project: project.ini, README,
.gitignore, VERSION.txt, requirements.pip, and (when a description or
license is given) DESCRIPTION.txt and LICENSE.txt.

Files that already exist are left untouched, so running init on an
established project only fills gaps.`,
		Example: `  # A new client project
  pyprojects init acme-widgets --title "Acme Widgets" --client ACME

  # A private internal tool
  pyprojects init ops-scripts --license private --category tools`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("path", "", "Create the project here instead of the project home")
	cobraCmd.Flags().String("title", "", "Project title (defaults to the name)")
	cobraCmd.Flags().String("category", "uncategorized", "Project category")
	cobraCmd.Flags().String("type", "project", "Project type")
	cobraCmd.Flags().String("description", "", "Short project description")
	cobraCmd.Flags().String("license", "", "License identifier, or 'private'")
	cobraCmd.Flags().String("client", "", "Client organization code")
	cobraCmd.Flags().Bool("quiet", false, "Do not echo the files being written")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	title, _ := cmd.Flags().GetString("title")
	category, _ := cmd.Flags().GetString("category")
	projectType, _ := cmd.Flags().GetString("type")
	description, _ := cmd.Flags().GetString("description")
	license, _ := cmd.Flags().GetString("license")
	client, _ := cmd.Flags().GetString("client")
	quiet, _ := cmd.Flags().GetBool("quiet")

	factory := project.NewFactory(c.deps.FS, c.deps.Runner, c.deps.Settings)
	p := factory.New(args[0], path)

	p.Title = title
	p.Category = category
	p.Type = projectType
	p.Description = description
	p.License = license

	if client != "" {
		p.ClientOrg = models.NewOrganization(models.OrganizationClient, client, "")
	}

	if err := p.Initialize(project.InitializeOptions{Display: !quiet}); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", args[0], err)
	}

	fmt.Printf("Initialized %s\n", p.Root)
	return nil
}
