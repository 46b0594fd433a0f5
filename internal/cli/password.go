package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/develmaycare/pyprojectutils/internal/passwords"
)

// PasswordCommand handles the password command
type PasswordCommand struct{}

// NewPasswordCommand creates the password command
func NewPasswordCommand() *cobra.Command {
	cmd := &PasswordCommand{}

	cobraCmd := &cobra.Command{
		Use:     "password",
		Aliases: []string{"randompw"},
		Short:   "Generate a random password",
		Example: `  # A 12 character mixed-case alphanumeric password
  pyprojects password

  # A longer password including symbols
  pyprojects password --length 20 --symbols

  # A secret key for application settings
  pyprojects password --secret-key`,
		Args: usageArgs(cobra.NoArgs),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Int("length", passwords.DefaultOptions.Length, "Password length")
	cobraCmd.Flags().Bool("no-upper", false, "Exclude uppercase letters")
	cobraCmd.Flags().Bool("no-digits", false, "Exclude digits")
	cobraCmd.Flags().Bool("symbols", false, "Include symbols")
	cobraCmd.Flags().Bool("secret-key", false, "Generate a 50 character application secret key")

	return cobraCmd
}

// Run executes the password command
func (c *PasswordCommand) Run(cmd *cobra.Command, args []string) error {
	secretKey, _ := cmd.Flags().GetBool("secret-key")
	if secretKey {
		key, err := passwords.GenerateSecretKey()
		if err != nil {
			return fmt.Errorf("failed to generate secret key: %w", err)
		}
		fmt.Println(key)
		return nil
	}

	length, _ := cmd.Flags().GetInt("length")
	noUpper, _ := cmd.Flags().GetBool("no-upper")
	noDigits, _ := cmd.Flags().GetBool("no-digits")
	symbols, _ := cmd.Flags().GetBool("symbols")

	password, err := passwords.Generate(passwords.Options{
		Length:  length,
		Upper:   !noUpper,
		Digits:  !noDigits,
		Symbols: symbols,
	})
	if err != nil {
		return InputError("%s", err)
	}

	fmt.Println(password)
	return nil
}
