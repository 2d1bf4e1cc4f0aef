package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A rule-driven file triage tool"
	MsgRootLong       = "filesort inspects a directory, classifies each file against an ordered\nrule list (by extension or filename prefix), and moves it into a\ncategory folder, producing a summary report."
	MsgOrganizeShort  = "Classify and move the files of a directory"
	MsgOrganizeLong   = "Organize runs one triage session over the source directory (default: the\ncurrent directory). Each file is matched against the configured rules,\nfirst match wins, and moved into its category folder under the output\nroot. Unmatched files go to the unmatched folder."
	MsgRulesShort     = "Print the effective rule list"
	MsgGenconfigShort = "Print a commented default configuration"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgNothingToDo   = "No files to process in the source directory."
	MsgDryRunNotice  = "DRY-RUN MODE - no files will be moved"
	MsgSessionFormat = "Organizing %s -> %s\n"

	// Flag descriptions
	FlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	FlagDryRun    = "Preview moves without executing them"
	FlagOverwrite = "Replace existing files at the destination instead of renaming"
	FlagConfig    = "Config file (default: filesort.toml in the source dir, then XDG config)"
	FlagOutput    = "Output root for category folders (default: the source directory)"
	FlagReport    = "Export the summary report to a file (.json, .yaml or .xml)"
)
