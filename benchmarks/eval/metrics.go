// ABOUTME: Deterministic scoring of advisor responses against expected outcomes
// ABOUTME: Checks citation format, topic coverage, and fallback behavior
package eval

import (
	"regexp"
	"strings"
)

// citationRe matches the exact citation contract: [source: "Title" t=HH:MM:SS]
var citationRe = regexp.MustCompile(`\[source: "[^"]+" t=\d{2}:\d{2}:\d{2}\]`)

// fallbackIndicators are phrases that signal a graceful out-of-scope answer
var fallbackIndicators = []string{
	"don't have enough information",
	"not covered",
	"outside the scope",
	"can't answer",
	"not in the transcripts",
}

// ExtractCitations returns every properly formatted citation in the response
func ExtractCitations(response string) []string {
	return citationRe.FindAllString(response, -1)
}

// IsFallback reports whether the response declines gracefully
func IsFallback(response string) bool {
	lower := strings.ToLower(response)
	for _, indicator := range fallbackIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// TopicCoverage returns the topics found in the response and the covered ratio
func TopicCoverage(response string, expectedTopics []string) ([]string, float64) {
	if len(expectedTopics) == 0 {
		return nil, 0
	}

	lower := strings.ToLower(response)
	var covered []string
	for _, topic := range expectedTopics {
		if strings.Contains(lower, strings.ToLower(topic)) {
			covered = append(covered, topic)
		}
	}

	return covered, float64(len(covered)) / float64(len(expectedTopics))
}

// Evaluate scores one response against its question's expectations.
// Out-of-scope questions pass when the fallback fires and no citations
// appear; in-scope questions need at least one citation, half the
// expected topics, and a citation naming the expected source when one
// is set.
func Evaluate(q TestQuestion, response string) QuestionResult {
	citations := ExtractCitations(response)
	covered, coverage := TopicCoverage(response, q.ExpectedTopics)
	fallback := IsFallback(response)

	sourceMatched := q.ExpectedSource == ""
	for _, citation := range citations {
		if strings.Contains(citation, q.ExpectedSource) {
			sourceMatched = true
			break
		}
	}

	result := QuestionResult{
		Question:      q.Question,
		Category:      q.Category,
		Response:      response,
		CitationCount: len(citations),
		Citations:     citations,
		TopicsCovered: covered,
		TopicCoverage: coverage,
		SourceMatched: sourceMatched,
		FallbackUsed:  fallback,
	}

	if q.ExpectFallback {
		if fallback && len(citations) == 0 {
			result.Score = 1.0
			result.Status = "PASS"
		} else {
			result.Status = "FAIL"
		}
		return result
	}

	score := 0.0
	if len(citations) > 0 {
		score += 0.5
	}
	score += 0.5 * coverage
	result.Score = score

	if len(citations) > 0 && coverage >= 0.5 && sourceMatched {
		result.Status = "PASS"
	} else {
		result.Status = "FAIL"
	}

	return result
}
