package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/project"
	"github.com/develmaycare/pyprojectutils/internal/repository"
)

// titleDisplayLimit is the column budget for project titles in table output
const titleDisplayLimit = 30

// ListCommand handles the ls command
type ListCommand struct {
	deps Deps
}

// NewListCommand creates the ls command
func NewListCommand(deps Deps) *cobra.Command {
	cmd := &ListCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"lsprojects"},
		Short:   "List projects",
		Long: `Lists the projects under the project home (or the given path). By default
only directories carrying a project.ini are shown; --all includes the rest.

Filters combine with AND. The name, description, and title filters match
substrings without regard to case, the tag filter matches membership, and
all other filters match exactly.`,
		Example: `  # List active projects
  pyprojects ls

  # Include disk usage, which costs a full subtree walk per project
  pyprojects ls --disk

  # Filter by stage and tag
  pyprojects ls --stage development --tag django

  # The same filters in generic form
  pyprojects ls --filter stage:development --filter tag:django

  # Show every distinct category in use
  pyprojects ls --values category`,
		Args: usageArgs(cobra.NoArgs),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("path", "", "Path to search instead of the project home")
	cobraCmd.Flags().Bool("all", false, "Include directories without a project.ini")
	cobraCmd.Flags().Bool("disk", false, "Calculate disk usage per project")
	cobraCmd.Flags().String("format", "table", "Output format: table, csv, or markdown")
	cobraCmd.Flags().String("values", "", "List distinct values of the given attribute instead of projects")
	cobraCmd.Flags().StringArray("filter", nil, "Filter as attribute:value, repeatable")

	cobraCmd.Flags().String("name", "", "Filter by name substring")
	cobraCmd.Flags().String("title", "", "Filter by title substring")
	cobraCmd.Flags().String("description", "", "Filter by description substring")
	cobraCmd.Flags().String("tag", "", "Filter by tag membership")
	cobraCmd.Flags().String("category", "", "Filter by category")
	cobraCmd.Flags().String("type", "", "Filter by type")
	cobraCmd.Flags().String("stage", "", "Filter by stage")
	cobraCmd.Flags().String("org", "", "Filter by organization code")
	cobraCmd.Flags().String("scm", "", "Filter by version control system")

	return cobraCmd
}

// Run executes the ls command
func (c *ListCommand) Run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	showAll, _ := cmd.Flags().GetBool("all")
	includeDisk, _ := cmd.Flags().GetBool("disk")
	format, _ := cmd.Flags().GetString("format")
	valuesAttribute, _ := cmd.Flags().GetString("values")

	repo := c.deps.Repository()

	criteria, err := c.criteria(cmd)
	if err != nil {
		return err
	}

	opts := repository.ListOptions{
		ShowAll:  showAll,
		Criteria: criteria,
		Load:     project.LoadOptions{IncludeDisk: includeDisk},
	}

	if valuesAttribute != "" {
		return c.runValues(cmd, repo, path, valuesAttribute, opts)
	}

	projects, err := repo.List(cmd.Context(), path, opts)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownAttribute) {
			return InputError("failed to list projects: %s", err)
		}
		return fmt.Errorf("failed to list projects: %w", err)
	}

	switch format {
	case "csv":
		fmt.Println(project.CSVHeader())
		for _, p := range projects {
			fmt.Println(p.ToCSV(false))
		}
	case "markdown":
		for _, p := range projects {
			block, err := p.ToMarkdown()
			if err != nil {
				return err
			}
			fmt.Println(block)
		}
	case "table":
		c.printTable(projects)
	default:
		return InputError("unrecognized format: %s", format)
	}

	return nil
}

func (c *ListCommand) runValues(cmd *cobra.Command, repo *repository.Repository, path, attribute string, opts repository.ListOptions) error {
	values, err := repo.DistinctAttributeValues(cmd.Context(), path, attribute, opts)
	if err != nil {
		return InputError("failed to list values: %s", err)
	}

	for _, value := range values {
		fmt.Printf("%s (%d)\n", value.Value, value.Count)
	}
	return nil
}

func (c *ListCommand) criteria(cmd *cobra.Command) (map[string]string, error) {
	criteria := make(map[string]string)
	for _, attribute := range []string{"name", "title", "description", "tag", "category", "type", "stage", "org", "scm"} {
		if value, _ := cmd.Flags().GetString(attribute); value != "" {
			criteria[attribute] = value
		}
	}

	filters, _ := cmd.Flags().GetStringArray("filter")
	for _, filter := range filters {
		attribute, value, ok := strings.Cut(filter, ":")
		if !ok || attribute == "" {
			return nil, InputError("filter must be attribute:value, got %q", filter)
		}
		criteria[attribute] = value
	}

	return criteria, nil
}

func (c *ListCommand) printTable(projects []*project.Project) {
	fmt.Printf("%-30s %-15s %-10s %-6s %-10s %-12s %-8s %s\n",
		"Title", "Category", "Type", "Org", "Version", "Stage", "SCM", "Disk")
	fmt.Println(strings.Repeat("-", 105))

	errorCount := 0
	for _, p := range projects {
		scmLabel := string(p.SCM.Type)
		if p.SCM.IsDirty() {
			scmLabel += "*"
		}

		title := p.TruncatedTitle(titleDisplayLimit, "...")
		if p.HasError() {
			title += " (!)"
			errorCount++
		}

		fmt.Printf("%-30s %-15s %-10s %-6s %-10s %-12s %-8s %s\n",
			title, p.Category, p.Type, p.Org(), p.Version, p.Stage, scmLabel, p.Disk)
	}

	fmt.Println()
	fmt.Printf("%d projects.\n", len(projects))
	if errorCount > 0 {
		fmt.Printf("%d with errors; run stat on them for details.\n", errorCount)
	}
}
