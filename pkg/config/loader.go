package config

import (
	"encoding/json"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// LoadOptions defines the options for loading the configuration
type LoadOptions struct {
	// SolutionRoot is the directory holding nuspec.config
	SolutionRoot string
	// ToolPath overrides the configured packaging tool (optional)
	ToolPath string
	// SkipToolCheck skips resolving the packaging tool, for commands that
	// never run it
	SkipToolCheck bool
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Load reads nuspec.config from the solution root.
//
// When the file does not exist the default settings are written and an
// ErrNotConfigured error is returned; nothing else is touched. A malformed
// file yields ErrConfigParse and a packaging tool that cannot be found
// yields ErrToolNotFound.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	path := PathFor(opts.SolutionRoot)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read configuration").
				WithDetail("path", path)
		}

		logger.Info().Str("path", path).Msg("Configuration missing, writing defaults")
		if _, _, err := Bootstrap(fsys, opts.SolutionRoot); err != nil {
			return nil, err
		}
		return nil, errors.Newf(errors.ErrNotConfigured,
			"first run: created %s, edit the global settings and run again", path).
			WithDetail("path", path)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "malformed configuration").
			WithDetail("path", path)
	}
	cfg.SolutionRoot = opts.SolutionRoot
	cfg.Path = path

	if opts.ToolPath != "" {
		cfg.Tool = opts.ToolPath
	}

	logger.Debug().
		Str("path", path).
		Str("tool", cfg.Tool).
		Int("defaults", cfg.Defaults.Len()).
		Int("ignoreRules", len(cfg.Ignore)).
		Msg("Configuration loaded")

	if opts.SkipToolCheck {
		return cfg, nil
	}

	toolPath, err := ResolveToolPath(fsys, opts.SolutionRoot, cfg.Tool)
	if err != nil {
		return nil, err
	}
	cfg.ToolPath = toolPath

	return cfg, nil
}

// Bootstrap writes the default configuration unless a file already exists.
// It returns the settings path and whether the file was created.
func Bootstrap(fsys types.FS, solutionRoot string) (string, bool, error) {
	path := PathFor(solutionRoot)
	if _, err := fsys.Stat(path); err == nil {
		return path, false, nil
	}

	if err := fsys.WriteFile(path, DefaultContent(), 0644); err != nil {
		return path, false, errors.Wrap(err, errors.ErrFileAccess, "cannot write default configuration").
			WithDetail("path", path)
	}
	return path, true, nil
}

// Default returns the configuration the bootstrap file describes
func Default() *Config {
	cfg, err := parse(defaultConfig)
	if err != nil {
		panic("embedded default configuration is invalid: " + err.Error())
	}
	return cfg
}

// parse loads the JSON settings and applies environment overrides
func parse(data []byte) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: data}, koanfjson.Parser()); err != nil {
		return nil, err
	}

	// NUSPECMAKER_NUGET overrides the packaging tool
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if key == EnvPrefix+"NUGET" && value != "" {
			return "Nuget", value
		}
		return "", nil
	}), nil); err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}

	return &Config{
		Tool:     fc.Nuget,
		Defaults: NewMetadataDefaults(fc.Global).withFieldOrder(globalFieldOrder(data)),
		Ignore:   CompileIgnoreRules(fc.Ignore),
	}, nil
}

// ResolveToolPath locates the packaging tool. An empty value means
// <root>/nuget.exe; relative values resolve against the solution root and
// a bare command name not found there is looked up on PATH.
func ResolveToolPath(fsys types.FS, solutionRoot, tool string) (string, error) {
	candidate := tool
	if candidate == "" {
		candidate = DefaultToolName
	}
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(solutionRoot, candidate)
	}

	if info, err := fsys.Stat(candidate); err == nil && !info.IsDir() {
		return candidate, nil
	}

	if tool != "" && !strings.ContainsAny(tool, `/\`) {
		if found, err := exec.LookPath(tool); err == nil {
			return found, nil
		}
	}

	return "", errors.Newf(errors.ErrToolNotFound, "packaging tool not found: %s", candidate).
		WithDetail("path", candidate)
}

// Marshal renders the configuration in its file layout, with Global in
// field order
func (c *Config) Marshal() ([]byte, error) {
	return json.MarshalIndent(c.toFile(), "", "  ")
}
