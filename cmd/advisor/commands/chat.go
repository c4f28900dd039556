// ABOUTME: Interactive chat loop for asking multiple questions in one session
// ABOUTME: The corpus is ingested once and reused for every question
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exitWords end the interactive session
var exitWords = []string{"quit", "exit", "stop"}

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive question session",
		Long: `Start an interactive session where you can ask multiple questions.

The transcript corpus is loaded and embedded once at startup; each
question then runs a single ranking pass over it.

Type 'quit', 'exit', or 'stop' to leave.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	adv, _, err := buildAdvisor()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "YouTube Advisor - Interactive Mode")
	fmt.Fprintf(out, "Loaded %d transcript segments\n", adv.CorpusSize())
	fmt.Fprintln(out, "I can help with: video introductions, thumbnails, storytelling, and retention")
	fmt.Fprintln(out, "Type 'quit', 'exit', or 'stop' to exit")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "Your question: ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			fmt.Fprintln(out, "Please enter a question.")
			continue
		}

		if isExitWord(question) {
			fmt.Fprintln(out, "Thanks for using YouTube Advisor!")
			break
		}

		answer := adv.Answer(question)
		fmt.Fprintf(out, "\n%s\n\n", answer)
		fmt.Fprintln(out, strings.Repeat("-", 80))
	}

	return scanner.Err()
}

func isExitWord(input string) bool {
	lower := strings.ToLower(input)
	for _, word := range exitWords {
		if lower == word {
			return true
		}
	}
	return false
}
