package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/repos"
)

// ReposCommand handles the repos command group
type ReposCommand struct {
	deps Deps
}

// NewReposCommand creates the repos command with its subcommands
func NewReposCommand(deps Deps) *cobra.Command {
	cmd := &ReposCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "repos",
		Short: "Work with repositories on the hosting service",
	}

	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"lsrepos"},
		Short:   "List the account's remote repositories",
		Args:    usageArgs(cobra.NoArgs),
		RunE:    cmd.RunList,
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a repository on the hosting service",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE:  cmd.RunCreate,
	}
	createCmd.Flags().Bool("private", false, "Create the repository as private")
	createCmd.Flags().String("description", "", "Repository description")
	createCmd.Flags().Bool("issues", true, "Enable the issue tracker")
	createCmd.Flags().Bool("wiki", false, "Enable the wiki")

	cobraCmd.AddCommand(lsCmd)
	cobraCmd.AddCommand(createCmd)

	return cobraCmd
}

// RunList executes repos ls
func (c *ReposCommand) RunList(cmd *cobra.Command, args []string) error {
	if c.deps.Provider == nil {
		return EnvironmentError("no hosting credentials configured")
	}

	remotes, err := c.deps.Provider.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	for _, repo := range remotes {
		visibility := "public"
		if repo.Private {
			visibility = "private"
		}
		fmt.Printf("%-40s %s\n", repo.String(), visibility)
	}

	fmt.Printf("\n%d repositories.\n", len(remotes))
	return nil
}

// RunCreate executes repos create
func (c *ReposCommand) RunCreate(cmd *cobra.Command, args []string) error {
	if c.deps.Provider == nil {
		return EnvironmentError("no hosting credentials configured")
	}

	private, _ := cmd.Flags().GetBool("private")
	description, _ := cmd.Flags().GetString("description")
	issues, _ := cmd.Flags().GetBool("issues")
	wiki, _ := cmd.Flags().GetBool("wiki")

	repo := repos.NewRepo(args[0], c.deps.Settings.DefaultSCM, c.deps.Settings.GitHubUser)
	repo.Private = private
	repo.Description = description
	repo.HasIssues = issues
	repo.HasWiki = wiki

	created, err := c.deps.Provider.Create(cmd.Context(), repo)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	store := repos.NewStore(c.deps.FS, c.deps.Settings.RepoMetaPath)
	if err := store.Save(created); err != nil {
		fmt.Printf("Warning: %s\n", err)
	}

	fmt.Printf("Created %s\n", created)
	return nil
}
