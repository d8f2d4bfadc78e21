package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Inspect and edit DOS gamebox packages"
	MsgInfoShort      = "Show a gamebox summary"
	MsgIDShort        = "Show or set the game identifier"
	MsgTargetShort    = "Show or set the default target program"
	MsgLaunchersShort = "Manage the gamebox's launchers"
	MsgDocsShort      = "Manage the gamebox's documentation"
	MsgScanShort      = "List executables and drive volumes"
	MsgVersionShort   = "Print version information"

	// Flag help
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Status messages
	MsgNoLaunchers     = "No launchers defined."
	MsgNoDocumentation = "No documentation found."
	MsgNoExecutables   = "No executables found."
	MsgNoVolumes       = "No drive volumes found."
	MsgTargetCleared   = "Target program cleared.\n"
	MsgTargetSet       = "Target program set to '%s'.\n"
	MsgIdentifierSet   = "Game identifier set to '%s'.\n"
	MsgLauncherAdded   = "Added launcher '%s'.\n"
	MsgLauncherRemoved = "Removed launcher at index %d.\n"
	MsgDefaultSet      = "Launcher %d is now the default.\n"
	MsgDefaultCleared  = "Default launcher cleared.\n"
	MsgDocImported     = "Imported '%s'.\n"
	MsgDocTrashed      = "Moved '%s' to trash.\n"
	MsgDocsOrganized   = "Documentation folder ready at '%s'.\n"
)
