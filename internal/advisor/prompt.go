// ABOUTME: Grounding-constrained prompt construction from ranked transcript segments
// ABOUTME: Pure string transform; the citation literal format is part of the output contract
package advisor

import (
	"fmt"
	"strings"

	"github.com/harper/youtube-advisor/internal/models"
)

// SystemInstruction is the system role content for the answer generator
const SystemInstruction = "You are a helpful YouTube growth advisor that provides grounded advice with citations."

// CitationFormat is the exact literal form every citation must take
const CitationFormat = `[source: "Video Title" t=HH:MM:SS]`

// BuildPrompt renders ranked segments and the question into a prompt that
// constrains the generator to answer only from the supplied context, with one
// citation per recommendation. It performs no I/O and no external calls.
func BuildPrompt(question string, segments []models.Segment) string {
	var context strings.Builder
	context.WriteString("TRANSCRIPT CONTEXT:\n\n")

	for _, seg := range segments {
		context.WriteString(fmt.Sprintf("Video: %s\n", seg.SourceTitle))
		context.WriteString(fmt.Sprintf("Timestamp: %s\n", seg.Timestamp))
		context.WriteString(fmt.Sprintf("Content: %s\n\n", seg.Content))
	}

	return fmt.Sprintf(`You are a YouTube growth advisor. Answer the user's question based ONLY on the provided transcript context.

%s
USER QUESTION: %s

INSTRUCTIONS:
1. Provide actionable recommendations based only on the transcript content
2. Include citations for each recommendation using this format: %s
3. If the transcripts don't contain enough information, say so clearly
4. Be specific and practical - avoid generic advice
5. Group related recommendations together
6. Reference the video sources by name when providing advice

ANSWER:
`, context.String(), question, CitationFormat)
}
