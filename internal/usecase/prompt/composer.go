// Package prompt assembles the generation prompts from resume text, job
// description, and retrieved context.
package prompt

import (
	"fmt"
	"strings"
)

const (
	similarResumeSeparator = "\n\n---\n\n"

	// Fallbacks keep the prompts well-formed when retrieval comes back empty.
	noSimilarResumesFallback     = "No similar resumes found."
	genericBestPracticesFallback = "General best practices include clear formatting, quantified achievements, and relevant keywords."
)

const suggestionsTemplate = `Analyze the following resume based on the job description and provide actionable suggestions for improvement.
Identify areas that need better formatting, relevant keyword inclusion, improved clarity, and overall readability.
Avoid including any scores in your response.
Please format all suggestions like this:
**Heading 1**

Description text.

* Bullet point 1
* Bullet point 2

**Heading 2**

More description text.

Resume:
%s

Job Description:
%s

Similar Past Resumes:
%s

Best Practices:
%s
`

const scoresTemplate = `Evaluate the following resume and provide a score (out of 10) for each category:
- ATS Parse Rate
- Repetition
- Spelling & Grammar
- Resume Length
- Hard Skills
- Soft Skills
- Design & Readability

Provide the scores in this format:
ATS Parse Rate: X/10
Repetition: X/10
Spelling & Grammar: X/10
Resume Length: X/10
Hard Skills: X/10
Soft Skills: X/10
Design & Readability: X/10

Resume:
%s
`

// Composer builds the two generation prompts. It is stateless; retrieval
// results are passed in so empty retrievals degrade to the documented
// fallback sentences instead of empty sections.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Suggestions builds the improvement-suggestions prompt. Similar resumes are
// joined most-similar first with a "---" separator.
func (c *Composer) Suggestions(resumeText, jobDescription string, similarResumes, bestPractices []string) string {
	similar := noSimilarResumesFallback
	if len(similarResumes) > 0 {
		similar = strings.Join(similarResumes, similarResumeSeparator)
	}

	practices := genericBestPracticesFallback
	if len(bestPractices) > 0 {
		practices = strings.Join(bestPractices, "\n")
	}

	return fmt.Sprintf(suggestionsTemplate, resumeText, jobDescription, similar, practices)
}

// Scores builds the scoring prompt. It deliberately carries only the resume:
// scores rate the document itself, not its fit for a particular job.
func (c *Composer) Scores(resumeText string) string {
	return fmt.Sprintf(scoresTemplate, resumeText)
}
