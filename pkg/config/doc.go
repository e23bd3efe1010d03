// Package config handles the solution-wide nuspecmaker settings.
//
// Settings live in a JSON file named nuspec.config at the solution root:
//
//	{
//	  "Nuget":  "path to the packaging tool (default <root>/nuget.exe)",
//	  "Global": { "authors": "...", "owners": "..." },
//	  "Ignore": [ "ProjectName", "[\\\\/]test[\\\\/]" ]
//	}
//
// The file is parsed with koanf, layered with NUSPECMAKER_* environment
// overrides. When the file does not exist Load writes the embedded default
// and reports ErrNotConfigured so the operator can edit it before the
// first real run.
package config
