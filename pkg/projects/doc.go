// Package projects builds the ordered list of projects a run synchronizes.
//
// Sources, in order of precedence:
//
//   - explicit arguments, either "Name=path" or a path to a project
//     directory or project file
//   - a YAML or TOML list file with a top level "projects" array
//   - a solution file, named explicitly or the single *.sln in the root
//   - a scan of the solution root for project files
//
// Relative paths resolve against the solution root.
package projects
