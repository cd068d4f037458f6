package usm

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "A per-user software version manager"
	MsgRootLong  = `usm manages multiple installed versions of your tools under a single
root directory, designates one version per application as current via a
symbolic link, and keeps PATH pointing at each application's
current/bin directory.`

	MsgAddShort    = "Install a new version of an application"
	MsgAddLong     = "Add creates the directory for a new version. The first version of a new application is automatically made current."
	MsgSwitchShort = "Make a version the current one for its application"
	MsgListShort   = "List installed applications and versions"
	MsgListLong    = "List shows every version of every application in the store and marks the current one."
	MsgRemoveShort = "Remove a version, or a whole application with --all"
	MsgResyncShort = "Rebuild PATH from the store layout"
	MsgResyncLong  = `Resync strips every PATH entry under the store root and re-adds
<root>/<app>/current/bin for each installed application. Run with
--print to emit only the new PATH value, suitable for eval by the
shell integration.`
	MsgSnippetShort    = "Output the shell profile snippet"
	MsgInitShort       = "Create the store root and install shell integration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Store root directory (overrides USM_ROOT and config)"
	MsgFlagApp         = "Only list the named application"
	MsgFlagVersion     = "Only list the named version"
	MsgFlagAll         = "Remove the whole application, current version included"
	MsgFlagPrint       = "Print only the new PATH value"
	MsgFlagWriteConfig = "Write a sample config file to the XDG config home"

	// Status messages
	MsgAddedFormat     = "Added %s %s\n"
	MsgCurrentFormat   = "%s is now the current version of %s\n"
	MsgRemovedFormat   = "Removed %s %s\n"
	MsgRemovedAppFmt   = "Removed application %s\n"
	MsgResyncedFormat  = "Search path rebuilt: %d entries\n"
	MsgNoVersionsFound = "No versions installed."
	MsgInitializedFmt  = "Store initialized at %s\n"
	MsgSnippetHint     = "Add this line to your shell profile:"
	MsgConfigWritten   = "Wrote config file %s\n"
)

// MsgUsageTemplate is the custom cobra usage template
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
