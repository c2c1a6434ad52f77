package domain

// The seven scoring categories. The set is closed: every ScoreCard carries
// all of them, parsed or not.
const (
	CategoryATSParseRate      = "ATS Parse Rate"
	CategoryRepetition        = "Repetition"
	CategorySpellingGrammar   = "Spelling & Grammar"
	CategoryResumeLength      = "Resume Length"
	CategoryHardSkills        = "Hard Skills"
	CategorySoftSkills        = "Soft Skills"
	CategoryDesignReadability = "Design & Readability"
)

// ScoreCard holds one 0-10 score per category. Unparsed categories stay 0.
type ScoreCard struct {
	ATSParseRate      int `json:"ATS Parse Rate"`
	Repetition        int `json:"Repetition"`
	SpellingGrammar   int `json:"Spelling & Grammar"`
	ResumeLength      int `json:"Resume Length"`
	HardSkills        int `json:"Hard Skills"`
	SoftSkills        int `json:"Soft Skills"`
	DesignReadability int `json:"Design & Readability"`
}

// ResumeDetails carries contact details scraped from the resume text.
// Each field is nil when not found.
type ResumeDetails struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// AnalysisResult is the response assembled per analyze request. Not persisted.
type AnalysisResult struct {
	ResumeDetails ResumeDetails `json:"resume_details"`
	Suggestions   string        `json:"suggestions"`
	Scores        ScoreCard     `json:"scores"`
}
