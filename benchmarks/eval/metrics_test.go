// ABOUTME: Tests for response scoring: citation extraction, fallback detection, topic coverage
// ABOUTME: Covers the pass/fail rules for both in-scope and out-of-scope questions

package eval

import (
	"testing"
)

func TestExtractCitations(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     int
	}{
		{
			"single citation",
			`Keep intros short [source: "Improving Video Introductions" t=00:01:15].`,
			1,
		},
		{
			"multiple citations",
			`Hook first [source: "Improving Video Introductions" t=00:01:15] then payoff [source: "YouTube Storytelling Techniques" t=00:04:30].`,
			2,
		},
		{
			"no citations",
			"Keep your intros short and punchy.",
			0,
		},
		{
			"malformed timestamp rejected",
			`Bad [source: "Title" t=1:15].`,
			0,
		},
		{
			"missing quotes rejected",
			`Bad [source: Title t=00:01:15].`,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCitations(tt.response)
			if len(got) != tt.want {
				t.Errorf("ExtractCitations() found %d, want %d: %v", len(got), tt.want, got)
			}
		})
	}
}

func TestIsFallback(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"fallback phrase", "I don't have enough information in the provided transcripts to answer that question.", true},
		{"mixed case", "I DON'T HAVE ENOUGH INFORMATION about that.", true},
		{"outside scope phrase", "That topic is outside the scope of these videos.", true},
		{"grounded answer", `Use a hook [source: "Intros" t=00:01:15].`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFallback(tt.response); got != tt.want {
				t.Errorf("IsFallback(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}

func TestTopicCoverage(t *testing.T) {
	response := "Start with a strong hook to boost retention in the first seconds."

	covered, ratio := TopicCoverage(response, []string{"hook", "retention", "thumbnail"})
	if len(covered) != 2 {
		t.Errorf("covered = %v, want hook and retention", covered)
	}
	if ratio < 0.66 || ratio > 0.67 {
		t.Errorf("ratio = %v, want 2/3", ratio)
	}

	covered, ratio = TopicCoverage(response, nil)
	if covered != nil || ratio != 0 {
		t.Errorf("TopicCoverage(nil topics) = %v, %v, want nil, 0", covered, ratio)
	}
}

func TestEvaluate_InScopePass(t *testing.T) {
	q := TestQuestion{
		Question:       "How do I improve my intro?",
		Category:       "video_introductions",
		ExpectedTopics: []string{"intro", "hook"},
	}
	response := `Open with a hook in your intro [source: "Improving Video Introductions" t=00:01:15].`

	result := Evaluate(q, response)

	if result.Status != "PASS" {
		t.Errorf("Status = %q, want PASS", result.Status)
	}
	if result.CitationCount != 1 {
		t.Errorf("CitationCount = %d, want 1", result.CitationCount)
	}
	if result.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0 (citation + full coverage)", result.Score)
	}
}

func TestEvaluate_InScopeFailsWithoutCitation(t *testing.T) {
	q := TestQuestion{
		Question:       "How do I improve my intro?",
		Category:       "video_introductions",
		ExpectedTopics: []string{"intro", "hook"},
	}
	response := "Open with a hook in your intro."

	result := Evaluate(q, response)

	if result.Status != "FAIL" {
		t.Errorf("Status = %q, want FAIL without a citation", result.Status)
	}
	if result.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5 (coverage only)", result.Score)
	}
}

func TestEvaluate_InScopeFailsWithLowCoverage(t *testing.T) {
	q := TestQuestion{
		Question:       "How do I improve my intro?",
		Category:       "video_introductions",
		ExpectedTopics: []string{"intro", "hook", "retention", "pacing"},
	}
	response := `Keep your intro short [source: "Improving Video Introductions" t=00:01:15].`

	result := Evaluate(q, response)

	if result.Status != "FAIL" {
		t.Errorf("Status = %q, want FAIL with 1/4 coverage", result.Status)
	}
}

func TestEvaluate_ExpectedSource(t *testing.T) {
	q := TestQuestion{
		Question:       "How do I improve my intro?",
		Category:       "video_introductions",
		ExpectedTopics: []string{"intro", "hook"},
		ExpectedSource: "Improving Video Introductions",
	}

	result := Evaluate(q, `Open with a hook in your intro [source: "Improving Video Introductions" t=00:01:15].`)
	if !result.SourceMatched {
		t.Error("SourceMatched = false, want true for a citation naming the expected source")
	}
	if result.Status != "PASS" {
		t.Errorf("Status = %q, want PASS", result.Status)
	}

	// Good coverage and a citation, but from the wrong video
	result = Evaluate(q, `Open with a hook in your intro [source: "YouTube Storytelling Techniques" t=00:04:30].`)
	if result.SourceMatched {
		t.Error("SourceMatched = true, want false when only another source is cited")
	}
	if result.Status != "FAIL" {
		t.Errorf("Status = %q, want FAIL when the expected source is never cited", result.Status)
	}
}

func TestEvaluate_OutOfScope(t *testing.T) {
	q := TestQuestion{
		Question:       "How do I optimize my ad spend?",
		Category:       "out_of_scope",
		ExpectFallback: true,
	}

	result := Evaluate(q, "I don't have enough information in the provided transcripts to answer that question.")
	if result.Status != "PASS" {
		t.Errorf("Status = %q, want PASS for a clean fallback", result.Status)
	}
	if result.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", result.Score)
	}

	// A fallback phrase that still cites something is not a clean decline
	result = Evaluate(q, `I don't have enough information, but see [source: "Intros" t=00:01:15].`)
	if result.Status != "FAIL" {
		t.Errorf("Status = %q, want FAIL when citations accompany the fallback", result.Status)
	}

	// Answering the question at all is a failure
	result = Evaluate(q, "Spend more on ads targeting your niche.")
	if result.Status != "FAIL" {
		t.Errorf("Status = %q, want FAIL when the gate did not fire", result.Status)
	}
}

func TestGetAllQuestions(t *testing.T) {
	questions := GetAllQuestions()

	if len(questions) != 6 {
		t.Fatalf("len(questions) = %d, want 6", len(questions))
	}

	var fallbacks int
	for _, q := range questions {
		if q.Question == "" || q.Category == "" {
			t.Errorf("question %+v missing fields", q)
		}
		if q.ExpectFallback {
			fallbacks++
			if len(q.ExpectedTopics) != 0 {
				t.Errorf("out-of-scope question %q should not expect topics", q.Question)
			}
		} else {
			if len(q.ExpectedTopics) == 0 {
				t.Errorf("in-scope question %q has no expected topics", q.Question)
			}
			if q.ExpectedSource == "" {
				t.Errorf("in-scope question %q has no expected source", q.Question)
			}
		}
	}
	if fallbacks != 1 {
		t.Errorf("fallback questions = %d, want 1", fallbacks)
	}
}
