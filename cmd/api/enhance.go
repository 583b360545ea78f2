package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resume-editor/internal/bootstrap"
	"resume-editor/internal/shared/config"
)

var enhanceSection string

var enhanceCmd = &cobra.Command{
	Use:   "enhance [content]",
	Short: "Enhance one resume section and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVar(&enhanceSection, "section", "summary", "Section to enhance (experience, education, summary or any other name)")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	cfg.EnhanceDelay = 0

	svc := bootstrap.BuildEnhanceService(cfg)
	out, err := svc.Enhance(cmd.Context(), enhanceSection, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
