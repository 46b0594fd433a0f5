// Package cli wires the toolkit's commands. Each command is a struct holding
// its collaborators, constructed through a New*Command function so tests can
// substitute mocks.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/repos"
	"github.com/develmaycare/pyprojectutils/internal/repository"
	"github.com/develmaycare/pyprojectutils/internal/settings"
	"github.com/develmaycare/pyprojectutils/internal/shell"
)

// Deps bundles the collaborators every command draws from
type Deps struct {
	FS       filesystem.FileSystem
	Runner   shell.Runner
	Settings *settings.Settings

	// Provider is nil when no hosting credentials are configured
	Provider repos.Provider
}

// Repository builds the project repository over the bundled collaborators
func (d Deps) Repository() *repository.Repository {
	return repository.New(d.FS, d.Runner, d.Settings)
}

// NewRootCommand creates the root command with all subcommands attached
func NewRootCommand(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pyprojects",
		Short: "Manage software projects on the local machine",
		Long: `A toolkit for managing software projects stored under a common home
directory. Projects are described by a project.ini file and can be listed,
inspected, initialized, and moved between the active, hold, and archive
areas.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewListCommand(deps))
	rootCmd.AddCommand(NewStatCommand(deps))
	rootCmd.AddCommand(NewInitCommand(deps))
	rootCmd.AddCommand(NewArchiveCommand(deps))
	rootCmd.AddCommand(NewHoldCommand(deps))
	rootCmd.AddCommand(NewEnableCommand(deps))
	rootCmd.AddCommand(NewDepsCommand(deps))
	rootCmd.AddCommand(NewBumpCommand(deps))
	rootCmd.AddCommand(NewCheckoutCommand(deps))
	rootCmd.AddCommand(NewReposCommand(deps))
	rootCmd.AddCommand(NewPasswordCommand())

	return rootCmd
}

// usageArgs converts cobra argument validation failures into usage errors
// so they exit with the usage code.
func usageArgs(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validator(cmd, args); err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		return nil
	}
}

// Execute runs the root command against the real environment and returns
// the process exit code.
func Execute() int {
	s := settings.FromEnv()

	deps := Deps{
		FS:       filesystem.NewOSFileSystem(),
		Runner:   shell.NewOSRunner(),
		Settings: s,
	}

	if s.GitHubEnabled() {
		deps.Provider = repos.NewGitHubProvider(s.GitHubUser, s.GitHubPassword)
	}

	rootCmd := NewRootCommand(deps)
	return ExitCode(rootCmd.Execute())
}
