package nuspecmaker

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep package manifests in sync with project lock files"
	MsgSyncShort       = "Synchronize the manifests of a solution's projects"
	MsgDepsShort       = "Print the package dependencies of a project"
	MsgConfigShort     = "Manage nuspec.config"
	MsgConfigInitShort = "Write the default nuspec.config if none exists"
	MsgConfigShowShort = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "nuspecmaker version %s\n  commit: %s\n  built:  %s\n"
	MsgNoProjects    = "No projects found."
	MsgCancelled     = "Interrupted, remaining projects were not processed."
	MsgUsageHint     = "Run 'nuspecmaker --help' for usage."

	// Error messages
	MsgErrWorkingDir     = "cannot determine the working directory: %w"
	MsgErrProjectsFailed = "%d project(s) failed"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot     = "Solution root holding nuspec.config (default: current directory)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagSln      = "Solution file listing the projects"
	MsgFlagProjects = "YAML or TOML file listing the projects"
	MsgFlagNuget    = "Packaging tool, overrides nuspec.config"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/deps-long.txt
	msgDepsLongRaw string
	MsgDepsLong    = strings.TrimSpace(msgDepsLongRaw)

	//go:embed msgs/deps-example.txt
	msgDepsExampleRaw string
	MsgDepsExample    = strings.TrimRight(msgDepsExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
