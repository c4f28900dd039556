// ABOUTME: Transcript line parsing into timestamped segments
// ABOUTME: Lines without a leading HH:MM:SS timestamp are dropped, never kept as partial segments
package transcript

import (
	"regexp"
	"strings"

	"github.com/harper/youtube-advisor/internal/models"
)

// FallbackTimestamp is used when a timestamp string is unparseable
const FallbackTimestamp = "00:00:00"

var (
	lineRe      = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2})\s+(.+)$`)
	timestampRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

// ParseTimestamp validates a timestamp string, normalizing anything that is
// not zero-padded HH:MM:SS to the fallback value.
func ParseTimestamp(s string) string {
	s = strings.TrimSpace(s)
	if timestampRe.MatchString(s) {
		return s
	}
	return FallbackTimestamp
}

// ParseLines splits raw transcript text into segments. Each line starting
// with an HH:MM:SS timestamp followed by whitespace becomes one segment;
// blank and malformed lines are silently discarded.
func ParseLines(sourceID, sourceTitle, text string) []models.Segment {
	var segments []models.Segment

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		segments = append(segments, models.Segment{
			SourceID:    sourceID,
			SourceTitle: sourceTitle,
			Timestamp:   m[1],
			Content:     strings.TrimSpace(m[2]),
		})
	}

	return segments
}
