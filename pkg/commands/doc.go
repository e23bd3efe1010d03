// Package commands implements the operations behind the CLI commands.
//
// Each operation takes an Options struct and returns a result value the ui
// package can render; none of them print.
package commands
