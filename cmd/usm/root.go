package usm

import (
	"fmt"

	"github.com/adamnew123456/usm/internal/version"
	"github.com/adamnew123456/usm/pkg/config"
	"github.com/adamnew123456/usm/pkg/filesystem"
	"github.com/adamnew123456/usm/pkg/logging"
	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/adamnew123456/usm/pkg/store"
	"github.com/adamnew123456/usm/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		rootFlag  string
	)

	rootCmd := &cobra.Command{
		Use:     "usm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help, report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", MsgFlagRoot)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newAddCmd(&rootFlag))
	rootCmd.AddCommand(newSwitchCmd(&rootFlag))
	rootCmd.AddCommand(newListCmd(&rootFlag))
	rootCmd.AddCommand(newRemoveCmd(&rootFlag))
	rootCmd.AddCommand(newResyncCmd(&rootFlag))
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newInitCmd(&rootFlag))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// appContext bundles the resolved configuration with the store it
// opens. Every command builds one from the --root flag.
type appContext struct {
	cfg   *config.Config
	paths *paths.Paths
	fs    types.FS
	store *store.Store
}

func newAppContext(rootFlag string) (*appContext, error) {
	cfg, err := config.Load(config.Overrides{Root: rootFlag})
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.Root)
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()

	return &appContext{
		cfg:   cfg,
		paths: p,
		fs:    fs,
		store: store.New(fs, p),
	}, nil
}
