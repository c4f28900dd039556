// ABOUTME: Predefined evaluation questions with expected outcomes
// ABOUTME: Covers in-corpus categories plus an out-of-scope question that must trigger the fallback
package eval

// TestQuestion is one evaluation case with its expected grounding
type TestQuestion struct {
	Question       string
	Category       string
	ExpectedTopics []string // Topic words that should appear in a grounded answer
	ExpectedSource string   // Source title a citation should name ("" skips the check)
	ExpectFallback bool     // True when the fallback message is the correct outcome
}

// QuestionResult is the scored outcome for one question
type QuestionResult struct {
	Question      string   `json:"question"`
	Category      string   `json:"category"`
	Response      string   `json:"response"`
	CitationCount int      `json:"citation_count"`
	Citations     []string `json:"citations"`
	TopicsCovered []string `json:"topics_covered"`
	TopicCoverage float64  `json:"topic_coverage"`
	SourceMatched bool     `json:"source_matched"`
	FallbackUsed  bool     `json:"fallback_used"`
	Score         float64  `json:"score"`
	Status        string   `json:"status"` // "PASS" or "FAIL"
}

// GetAllQuestions returns the full evaluation suite
func GetAllQuestions() []TestQuestion {
	return []TestQuestion{
		{
			Question:       "How can I improve my video introductions to get better retention?",
			Category:       "video_introductions",
			ExpectedTopics: []string{"intro", "retention", "hook"},
			ExpectedSource: "Improving Video Introductions",
		},
		{
			Question:       "What are the best practices for creating effective thumbnails?",
			Category:       "thumbnails",
			ExpectedTopics: []string{"thumbnail", "contrast", "focal point"},
			ExpectedSource: "Improving Video Introductions",
		},
		{
			Question:       "How should I structure my YouTube videos for better storytelling?",
			Category:       "storytelling",
			ExpectedTopics: []string{"structure", "act", "story"},
			ExpectedSource: "YouTube Storytelling Techniques",
		},
		{
			Question:       "How do I keep viewers engaged throughout my videos?",
			Category:       "retention",
			ExpectedTopics: []string{"engagement", "retention", "cliffhanger"},
			ExpectedSource: "YouTube Storytelling Techniques",
		},
		{
			Question:       "What pacing should I use for my target audience?",
			Category:       "pacing",
			ExpectedTopics: []string{"pacing", "audience"},
			ExpectedSource: "YouTube Storytelling Techniques",
		},
		{
			Question:       "How do I optimize my YouTube ad spend for better ROI?",
			Category:       "out_of_scope",
			ExpectFallback: true,
		},
	}
}
