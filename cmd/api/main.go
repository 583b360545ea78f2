// Command api serves the resume editor HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-editor",
	Short: "Resume Editor HTTP API",
	Long:  "Resume Editor stores resume documents and offers template-based enhancement of resume sections over a JSON API.",
	RunE:  runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
