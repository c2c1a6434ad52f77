// Package score parses generated scoring text into a ScoreCard.
package score

import (
	"regexp"
	"strconv"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

type rule struct {
	re  *regexp.Regexp
	set func(*domain.ScoreCard, int)
}

// Parser extracts the seven category scores from free-form generated text.
// Lines may appear in any order and be surrounded by arbitrary prose; a
// category without a matching `<Category>: N/10` line keeps its zero value.
// Values are taken as written and not range-checked.
type Parser struct {
	rules []rule
}

// NewParser compiles the per-category patterns.
func NewParser() *Parser {
	mk := func(cat string, set func(*domain.ScoreCard, int)) rule {
		return rule{
			re:  regexp.MustCompile(regexp.QuoteMeta(cat) + `: (\d+)/10`),
			set: set,
		}
	}
	return &Parser{rules: []rule{
		mk(domain.CategoryATSParseRate, func(c *domain.ScoreCard, v int) { c.ATSParseRate = v }),
		mk(domain.CategoryRepetition, func(c *domain.ScoreCard, v int) { c.Repetition = v }),
		mk(domain.CategorySpellingGrammar, func(c *domain.ScoreCard, v int) { c.SpellingGrammar = v }),
		mk(domain.CategoryResumeLength, func(c *domain.ScoreCard, v int) { c.ResumeLength = v }),
		mk(domain.CategoryHardSkills, func(c *domain.ScoreCard, v int) { c.HardSkills = v }),
		mk(domain.CategorySoftSkills, func(c *domain.ScoreCard, v int) { c.SoftSkills = v }),
		mk(domain.CategoryDesignReadability, func(c *domain.ScoreCard, v int) { c.DesignReadability = v }),
	}}
}

// Parse never fails: unparseable input yields an all-zero card.
func (p *Parser) Parse(text string) domain.ScoreCard {
	var card domain.ScoreCard
	for _, r := range p.rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		r.set(&card, v)
	}
	return card
}
