// ABOUTME: CLI command to list configured transcript sources
// ABOUTME: Parses each source without embedding, so no API key is needed
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harper/youtube-advisor/internal/config"
	"github.com/harper/youtube-advisor/internal/transcript"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewSourcesCmd creates the sources command
func NewSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List transcript sources",
		Long: `List the configured transcript sources with their citation titles
and how many segments each one parses into.

Sources come from the file named by ADVISOR_SOURCES (default
sources.yaml), falling back to the built-in corpus.`,
		Args: cobra.NoArgs,
		RunE: runSources,
	}

	return cmd
}

type sourceStatus struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Path     string `json:"path"`
	Segments int    `json:"segments"`
	Missing  bool   `json:"missing"`
}

func runSources(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	statuses := make([]sourceStatus, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		status := sourceStatus{
			ID:    src.ID,
			Title: src.DisplayTitle(),
			Path:  src.Path,
		}

		data, err := os.ReadFile(src.Path)
		if err != nil {
			status.Missing = true
		} else {
			status.Segments = len(transcript.ParseLines(src.ID, status.Title, string(data)))
		}

		statuses = append(statuses, status)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTITLE\tSEGMENTS\tPATH\n")
	fmt.Fprintf(w, "--\t-----\t--------\t----\n")

	for _, status := range statuses {
		segments := fmt.Sprintf("%d", status.Segments)
		if status.Missing {
			segments = "(missing)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", status.ID, truncate(status.Title, 40), segments, status.Path)
	}
	w.Flush()

	return nil
}
