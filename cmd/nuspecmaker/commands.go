package nuspecmaker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/nuspecmaker/internal/version"
	"github.com/arthur-debert/nuspecmaker/pkg/commands"
	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/arthur-debert/nuspecmaker/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	root      string
	format    string

	// fileSystem and generator are swapped in by tests
	fileSystem types.FS
	generator  types.SkeletonGenerator
}

// solutionRoot returns --root as an absolute path, defaulting to the
// working directory
func (g *globalOptions) solutionRoot() (string, error) {
	root := g.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf(MsgErrWorkingDir, err)
		}
		return wd, nil
	}
	if g.fileSystem != nil {
		return root, nil
	}
	return filepath.Abs(root)
}

// renderers returns the renderer for results on stdout and the one for
// errors on stderr
func (g *globalOptions) renderers(cmd *cobra.Command) (ui.Renderer, ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	out, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}
	errOut, err := ui.NewRenderer(format, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return out, errOut, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{})
}

func newRootCmd(g *globalOptions) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "nuspecmaker",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSyncCmd(g))
	rootCmd.AddCommand(newDepsCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newSyncCmd(g *globalOptions) *cobra.Command {
	var (
		solutionFile string
		listFile     string
		toolPath     string
	)

	cmd := &cobra.Command{
		Use:     "sync [projects...]",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut, err := g.renderers(cmd)
			if err != nil {
				return err
			}
			root, err := g.solutionRoot()
			if err != nil {
				return err
			}

			log.Info().
				Str("solutionRoot", root).
				Strs("projects", args).
				Msg("Synchronizing manifests")

			result, err := commands.Sync(cmd.Context(), commands.SyncOptions{
				SolutionRoot: root,
				Projects:     args,
				ListFile:     listFile,
				SolutionFile: solutionFile,
				ToolPath:     toolPath,
				FileSystem:   g.fileSystem,
				Generator:    g.generator,
			})

			var nerr *errors.NuspecError
			if errors.As(err, &nerr) && nerr.Code == errors.ErrNotConfigured {
				return out.RenderMessage(nerr.Message)
			}
			if result != nil {
				if len(result.Projects) == 0 && err == nil {
					return out.RenderMessage(MsgNoProjects)
				}
				if rerr := out.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				if result != nil {
					_ = errOut.RenderMessage(MsgCancelled)
				}
				return reported(errOut, err)
			}
			if result.HasFailures() {
				return &reportedError{err: fmt.Errorf(MsgErrProjectsFailed, result.Summary.Failed)}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&solutionFile, "sln", "", MsgFlagSln)
	cmd.Flags().StringVar(&listFile, "projects", "", MsgFlagProjects)
	cmd.Flags().StringVar(&toolPath, "nuget", "", MsgFlagNuget)
	_ = cmd.MarkFlagFilename("sln", "sln")
	_ = cmd.MarkFlagFilename("projects", "yaml", "yml", "toml")

	return cmd
}

func newDepsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "deps [projectDir]",
		Short:   MsgDepsShort,
		Long:    MsgDepsLong,
		Example: MsgDepsExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut, err := g.renderers(cmd)
			if err != nil {
				return err
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if g.fileSystem == nil {
				if dir, err = filepath.Abs(dir); err != nil {
					return err
				}
			}

			result, err := commands.Deps(commands.DepsOptions{
				ProjectDir: dir,
				FileSystem: g.fileSystem,
			})
			if err != nil {
				return reported(errOut, err)
			}
			return out.RenderResult(result)
		},
	}
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var toolPath string

	configCmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut, err := g.renderers(cmd)
			if err != nil {
				return err
			}
			root, err := g.solutionRoot()
			if err != nil {
				return err
			}
			result, err := commands.InitConfig(commands.ConfigOptions{
				SolutionRoot: root,
				FileSystem:   g.fileSystem,
			})
			if err != nil {
				return reported(errOut, err)
			}
			return out.RenderResult(result)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut, err := g.renderers(cmd)
			if err != nil {
				return err
			}
			root, err := g.solutionRoot()
			if err != nil {
				return err
			}
			report, err := commands.ShowConfig(commands.ConfigOptions{
				SolutionRoot: root,
				ToolPath:     toolPath,
				FileSystem:   g.fileSystem,
			})
			if err != nil {
				return reported(errOut, err)
			}
			return out.RenderResult(report)
		},
	}
	showCmd.Flags().StringVar(&toolPath, "nuget", "", MsgFlagNuget)

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
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
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
