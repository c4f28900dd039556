// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point for ask, chat, sources, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advisor",
		Short: "Grounded YouTube advice from video transcripts",
		Long: `YouTube Advisor answers content-creation questions using a small corpus
of video transcripts. Every recommendation is grounded in transcript
segments and cited with the source title and timestamp.

Questions outside the corpus (monetization, ad spend, analytics) get a
clear "not covered" answer instead of a made-up one.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, text, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewAskCmd(),
		NewChatCmd(),
		NewSourcesCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
