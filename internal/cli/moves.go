package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ArchiveCommand handles the archive command
type ArchiveCommand struct {
	deps Deps
}

// NewArchiveCommand creates the archive command
func NewArchiveCommand(deps Deps) *cobra.Command {
	cmd := &ArchiveCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "archive <project>",
		Aliases: []string{"archiveproject"},
		Short:   "Move a project to the archive",
		Long: `Moves a project out of circulation into the archive root. Projects with
uncommitted changes are refused unless --force is given.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("force", false, "Archive even with uncommitted changes")

	return cobraCmd
}

// Run executes the archive command
func (c *ArchiveCommand) Run(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	newRoot, err := c.deps.Repository().Archive(cmd.Context(), args[0], force)
	if err != nil {
		return InputError("failed to archive %s: %s", args[0], err)
	}

	fmt.Printf("Archived to %s\n", newRoot)
	return nil
}

// HoldCommand handles the hold command
type HoldCommand struct {
	deps Deps
}

// NewHoldCommand creates the hold command
func NewHoldCommand(deps Deps) *cobra.Command {
	cmd := &HoldCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "hold <project>",
		Aliases: []string{"holdproject"},
		Short:   "Put a project on hold",
		Long:    `Moves a project into the hold root, keeping it out of the active listing without archiving it.`,
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE:    cmd.Run,
	}

	return cobraCmd
}

// Run executes the hold command
func (c *HoldCommand) Run(cmd *cobra.Command, args []string) error {
	newRoot, err := c.deps.Repository().Hold(cmd.Context(), args[0])
	if err != nil {
		return InputError("failed to hold %s: %s", args[0], err)
	}

	fmt.Printf("On hold at %s\n", newRoot)
	return nil
}

// EnableCommand handles the enable command
type EnableCommand struct {
	deps Deps
}

// NewEnableCommand creates the enable command
func NewEnableCommand(deps Deps) *cobra.Command {
	cmd := &EnableCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:     "enable <project>",
		Aliases: []string{"enableproject"},
		Short:   "Return a held or archived project to the active home",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE:    cmd.Run,
	}

	return cobraCmd
}

// Run executes the enable command
func (c *EnableCommand) Run(cmd *cobra.Command, args []string) error {
	newRoot, err := c.deps.Repository().Enable(cmd.Context(), args[0])
	if err != nil {
		return InputError("failed to enable %s: %s", args[0], err)
	}

	fmt.Printf("Enabled at %s\n", newRoot)
	return nil
}
