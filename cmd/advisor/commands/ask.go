// ABOUTME: CLI command to ask a single question and print the grounded answer
// ABOUTME: Supports text and JSON output formats
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question",
		Long: `Ask the advisor one question and print the answer.

The answer is grounded in the loaded transcripts and cites sources as
[source: "Video Title" t=HH:MM:SS].

Examples:
  advisor ask "How can I improve my video introductions?"
  advisor ask --format json "How should I structure my storytelling?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	adv, _, err := buildAdvisor()
	if err != nil {
		return err
	}

	answer := adv.Answer(question)

	if outputFormat == "json" {
		payload := struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		}{Question: question, Answer: answer}

		jsonData, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Question: %s\n\n", question)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", answer)

	return nil
}
