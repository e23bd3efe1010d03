package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/nuspecmaker/cmd/nuspecmaker"
	"github.com/arthur-debert/nuspecmaker/internal/version"
)

func main() {
	rootCmd := nuspecmaker.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "NUSPECMAKER",
		Section: "1",
		Source:  "nuspecmaker " + version.Version,
		Manual:  "nuspecmaker manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
