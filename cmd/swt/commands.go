package swt

import (
	"fmt"
	"os"

	"github.com/arthur-debert/swt/internal/version"
	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/git"
	"github.com/arthur-debert/swt/pkg/shell"
	"github.com/arthur-debert/swt/pkg/ui/converter"
	"github.com/arthur-debert/swt/pkg/worktree"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// worktreeNamesCompletion completes worktree directory names
func worktreeNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	m, err := newManager(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	entries, err := m.List(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newCreateCmd() *cobra.Command {
	var opts worktree.CreateOptions

	cmd := &cobra.Command{
		Use:     "create NAME",
		Aliases: []string{"c"},
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		GroupID: "worktree",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			opts.Name = args[0]
			log.Info().Str("name", opts.Name).Str("branch", opts.Branch).Msg("Creating worktree")

			result, err := m.Create(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return renderer.RenderResult(converter.CreateReport(opts.Name, result))
		},
	}

	cmd.Flags().StringVarP(&opts.Branch, "branch", "b", "", MsgFlagBranch)
	cmd.Flags().StringVarP(&opts.Path, "path", "p", "", MsgFlagPath)
	addConfigFlags(cmd)

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: "worktree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			entries, err := m.List(cmd.Context())
			if err != nil {
				return err
			}
			return renderer.RenderResult(converter.WorktreeList(entries))
		},
	}
}

func newCdCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "cd NAME",
		Short:             MsgCdShort,
		Long:              MsgCdLong,
		GroupID:           "worktree",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: worktreeNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			wt, err := m.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), wt.Path)
			return err
		},
	}
}

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "home",
		Aliases: []string{"h"},
		Short:   MsgHomeShort,
		GroupID: "worktree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			home, err := m.Home(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), home)
			return err
		},
	}
}

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"d"},
		Short:   MsgDeleteShort,
		Long:    MsgDeleteLong,
		GroupID: "worktree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			result, err := m.Delete(cmd.Context(), force)
			if err != nil {
				return err
			}
			return renderer.RenderResult(converter.DeleteReport(result))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}

func newDeleteAllCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete-all",
		Short:   MsgDeleteAllShort,
		Long:    MsgDeleteAllLong,
		GroupID: "worktree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			result, err := m.DeleteAll(cmd.Context(), force)
			if err != nil {
				return err
			}
			return renderer.RenderResult(converter.DeleteAllReport(result))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync [SOURCE] [TARGET]",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		GroupID: "worktree",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			var source, target string
			if len(args) > 0 {
				source = args[0]
			}
			if len(args) > 1 {
				target = args[1]
			}

			result, err := m.Sync(cmd.Context(), source, target)
			if err != nil {
				return err
			}
			return renderer.RenderResult(converter.WorktreeSync(result))
		},
	}

	addConfigFlags(cmd)

	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			dir, err := workDir(cmd)
			if err != nil {
				return err
			}

			// Outside a repository the file goes to the working directory
			if repo := git.New(dir); repo.IsRepo(cmd.Context()) {
				root, err := repo.TopLevel(cmd.Context())
				if err != nil {
					return err
				}
				dir = root
			}

			path, err := config.InitConfig(dir)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigCreated, path))
		},
	}
}

func newSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		Example: MsgSnippetExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("shell")
			if name == "" {
				name = shell.Detect(os.Getenv("SHELL"))
			}

			snippet, err := shell.Snippet(name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), snippet)
			return err
		},
	}

	cmd.Flags().StringP("shell", "s", "", MsgFlagShell)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
