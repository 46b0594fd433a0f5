package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/config"
	"github.com/develmaycare/pyprojectutils/internal/repos"
)

// CheckoutCommand handles the checkout command
type CheckoutCommand struct {
	deps Deps
}

// NewCheckoutCommand creates the checkout command
func NewCheckoutCommand(deps Deps) *cobra.Command {
	cmd := &CheckoutCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "checkout <repo>",
		Aliases: []string{"checkoutproject"},
		Short:   "Clone a remote repository into the project home",
		Long: `Clones a repository into the project home. The repo's host and owner come
from its repo.ini sidecar when one exists under the repo meta path; otherwise
they fall back to the default SCM host and the configured account, and a
sidecar is written for next time.`,
		Example: `  # Checkout using the recorded metadata
  pyprojects checkout acme-widgets

  # Checkout from an explicit owner
  pyprojects checkout acme-widgets --user acmecorp`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("user", "", "Repository owner (defaults to the recorded or configured account)")
	cobraCmd.Flags().String("host", "", "Hosting service (defaults to the recorded or configured one)")

	return cobraCmd
}

// Run executes the checkout command
func (c *CheckoutCommand) Run(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetString("user")
	host, _ := cmd.Flags().GetString("host")

	name := args[0]
	store := repos.NewStore(c.deps.FS, c.deps.Settings.RepoMetaPath)

	repo, err := store.Load(name)
	switch {
	case err == nil:
		// Recorded metadata wins unless overridden on the command line
	case errors.Is(err, config.ErrNotFound):
		repo = repos.NewRepo(name, c.deps.Settings.DefaultSCM, c.defaultUser(host))
	default:
		return InputError("failed to read repo metadata: %s", err)
	}

	if user != "" {
		repo.User = user
	}
	if host != "" {
		repo.Host = host
	}

	if repo.User == "" {
		return EnvironmentError("no account configured for %s; set credentials or pass --user", repo.Host)
	}

	target, err := repos.Checkout(cmd.Context(), c.deps.FS, repo, c.deps.Settings.ProjectHome)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	if saveErr := store.Save(repo); saveErr != nil {
		fmt.Printf("Warning: %s\n", saveErr)
	}

	fmt.Printf("Checked out %s to %s\n", repo, target)
	return nil
}

// defaultUser picks the configured account for the effective host
func (c *CheckoutCommand) defaultUser(host string) string {
	if host == "" {
		host = c.deps.Settings.DefaultSCM
	}

	switch host {
	case repos.HostBitbucket:
		return c.deps.Settings.BitbucketUser
	default:
		return c.deps.Settings.GitHubUser
	}
}
