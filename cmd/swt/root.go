package swt

import (
	"fmt"
	"os"

	"github.com/arthur-debert/swt/internal/version"
	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/arthur-debert/swt/pkg/ui"
	"github.com/arthur-debert/swt/pkg/ui/confirmations"
	"github.com/arthur-debert/swt/pkg/worktree"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		format    string
		dir       string
	)

	rootCmd := &cobra.Command{
		Use:     "swt",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but fail
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", "", MsgFlagDir)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "worktree",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCdCmd())
	rootCmd.AddCommand(newHomeCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newDeleteAllCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// workDir returns the directory given with --dir, or the process's cwd
func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Root().PersistentFlags().GetString("dir")
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// newManager builds a worktree manager for the command's working directory.
// Confirmations read from the command's stdin and prompt on its stderr.
func newManager(cmd *cobra.Command) (*worktree.Manager, error) {
	dir, err := workDir(cmd)
	if err != nil {
		return nil, err
	}
	overrides, err := configOverrides(cmd)
	if err != nil {
		return nil, err
	}
	dialog := confirmations.NewDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
	return worktree.NewManager(dir,
		worktree.WithConfirm(dialog.Confirm),
		worktree.WithOverrides(overrides),
	), nil
}

// addConfigFlags registers the flags that override configuration values
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-gitignore", false, MsgFlagNoGitignore)
	cmd.Flags().String("oracle", "", MsgFlagOracle)
}

// configOverrides collects the configuration flags the user actually set
func configOverrides(cmd *cobra.Command) (config.Overrides, error) {
	overrides := config.Overrides{}
	if cmd.Flags().Changed("no-gitignore") {
		skip, _ := cmd.Flags().GetBool("no-gitignore")
		overrides["addToGitignore"] = !skip
	}
	if cmd.Flags().Changed("oracle") {
		oracle, _ := cmd.Flags().GetString("oracle")
		if err := config.ValidateOracle(oracle); err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --oracle")
		}
		overrides["ignoreOracle"] = oracle
	}
	return overrides, nil
}

// newRenderer returns the renderer selected with --format, writing to stdout
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// PrintError renders err on the command's stderr using the selected format.
// An unusable --format falls back to plain text.
func PrintError(cmd *cobra.Command, err error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	format, perr := ui.ParseFormat(name)
	if perr != nil {
		format = ui.FormatText
	}
	renderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
	if rerr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	if werr := renderer.RenderError(err); werr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
}
