package usm

import (
	"github.com/adamnew123456/usm/internal/version"
	"github.com/adamnew123456/usm/pkg/config"
	"github.com/adamnew123456/usm/pkg/logging"
	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/adamnew123456/usm/pkg/searchpath"
	"github.com/adamnew123456/usm/pkg/shell"
	"github.com/adamnew123456/usm/pkg/store"
	"github.com/adamnew123456/usm/pkg/style"
	"github.com/adamnew123456/usm/pkg/types"
	"github.com/spf13/cobra"
)

func newAddCmd(rootFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:     "add <app> <version>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*rootFlag)
			if err != nil {
				return err
			}

			app, ver := args[0], args[1]
			if err := ctx.store.CreateVersion(app, ver); err != nil {
				return err
			}

			cmd.Printf(MsgAddedFormat, app, ver)
			return maybeResync(ctx)
		},
	}
}

func newSwitchCmd(rootFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:     "switch <app> <version>",
		Short:   MsgSwitchShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*rootFlag)
			if err != nil {
				return err
			}

			app, ver := args[0], args[1]
			if err := ctx.store.SwitchVersion(app, ver); err != nil {
				return err
			}

			cmd.Printf(MsgCurrentFormat, ver, app)
			return maybeResync(ctx)
		},
	}
}

func newListCmd(rootFlag *string) *cobra.Command {
	var (
		appFilter     string
		versionFilter string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*rootFlag)
			if err != nil {
				return err
			}

			records, err := ctx.store.ListVersions(types.ListFilter{
				App:     appFilter,
				Version: versionFilter,
			})
			if err != nil {
				return err
			}

			if len(records) == 0 {
				cmd.Println(MsgNoVersionsFound)
				return nil
			}

			cmd.Print(renderRecords(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&appFilter, "app", "", MsgFlagApp)
	cmd.Flags().StringVar(&versionFilter, "version", "", MsgFlagVersion)

	return cmd
}

func newRemoveCmd(rootFlag *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "remove <app> [<version>]",
		Short:   MsgRemoveShort,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*rootFlag)
			if err != nil {
				return err
			}

			app := args[0]
			ver := ""
			if len(args) == 2 {
				ver = args[1]
			}

			if err := store.ValidateRemovalArgs(ver, all); err != nil {
				return err
			}

			if all {
				if err := ctx.store.RemoveApplication(app); err != nil {
					return err
				}
				cmd.Printf(MsgRemovedAppFmt, app)
			} else {
				if err := ctx.store.RemoveVersion(app, ver); err != nil {
					return err
				}
				cmd.Printf(MsgRemovedFormat, app, ver)
			}

			return maybeResync(ctx)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)

	return cmd
}

func newResyncCmd(rootFlag *string) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "resync",
		Short:   MsgResyncShort,
		Long:    MsgResyncLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*rootFlag)
			if err != nil {
				return err
			}

			value, err := searchpath.ResyncEnv(ctx.paths, ctx.fs)
			if err != nil {
				return err
			}

			if printOnly {
				// Raw value only: the shell integration evals this
				cmd.Println(value)
				return nil
			}

			cmd.Printf(MsgResyncedFormat, len(searchpath.Split(value)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, MsgFlagPrint)

	return cmd
}

func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "snippet [bash|zsh|fish]",
		Short:     MsgSnippetShort,
		GroupID:   "misc",
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shellName := "bash"
			if len(args) == 1 {
				shellName = args[0]
			}

			cmd.Println(shell.Snippet(shellName, paths.DataDir()))
			return nil
		},
	}
}

func newInitCmd(rootFlag *string) *cobra.Command {
	var writeConfig bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*rootFlag)
			if err != nil {
				return err
			}

			if err := ctx.fs.MkdirAll(ctx.paths.Root(), 0755); err != nil {
				return err
			}

			if err := shell.InstallShellIntegration(paths.DataDir(), ctx.fs); err != nil {
				return err
			}

			cmd.Printf(MsgInitializedFmt, ctx.paths.Root())

			if writeConfig {
				configPath := config.UserConfigPath()
				if err := config.WriteSample(configPath, ctx.cfg); err != nil {
					return err
				}
				cmd.Printf(MsgConfigWritten, configPath)
			}

			cmd.Println(MsgSnippetHint)
			cmd.Println("  " + shell.Snippet("bash", paths.DataDir()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&writeConfig, "write-config", false, MsgFlagWriteConfig)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("usm version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			}
			return nil
		},
	}
}

// maybeResync rebuilds the process search path after a store mutation
// when resync.auto is on. The shell integration makes the result
// visible to future shells; this keeps the current process consistent.
func maybeResync(ctx *appContext) error {
	if !ctx.cfg.Resync.Auto {
		return nil
	}

	logger := logging.GetLogger("cmd")
	if _, err := searchpath.ResyncEnv(ctx.paths, ctx.fs); err != nil {
		return err
	}
	logger.Debug().Msg("Search path resynchronized after store mutation")
	return nil
}

// renderRecords formats a listing grouped by application, with the
// current version highlighted.
func renderRecords(records []types.VersionRecord) string {
	out := ""
	lastApp := ""
	for _, r := range records {
		if r.App != lastApp {
			out += style.Render(style.AppStyle, r.App) + "\n"
			lastApp = r.App
		}
		if r.IsCurrent {
			out += "  * " + style.Render(style.CurrentStyle, r.Version) + "\n"
		} else {
			out += "    " + r.Version + "\n"
		}
	}
	return out
}
