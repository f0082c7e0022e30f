package jobid

import "strings"

// Code is the category segment of a job identifier, e.g. "DS" in DZ-DS-0001.
type Code string

const (
	CodeDataScience     Code = "DS"
	CodeDataEngineering Code = "DE"
	CodeDevOps          Code = "DO"
	CodeAI              Code = "AI"
	CodeGeneral         Code = "GN"
)

// Rule maps a set of title keywords to a category code.
type Rule struct {
	Code     Code     `json:"code"`
	Keywords []string `json:"keywords"`
}

// DefaultRules returns the built-in rule list. Order matters: the first rule
// with a matching keyword wins, so "DevOps Data Engineer" classifies as DE.
func DefaultRules() []Rule {
	return []Rule{
		{Code: CodeDataScience, Keywords: []string{"data scientist", "data science"}},
		{Code: CodeDataEngineering, Keywords: []string{"data engineer", "data engineering"}},
		{Code: CodeDevOps, Keywords: []string{"devops", "dev ops"}},
		{Code: CodeAI, Keywords: []string{"ai", "artificial intelligence", "gen ai", "machine learning"}},
	}
}

// Classifier assigns a category code to a free-text job title.
type Classifier struct {
	rules    []Rule
	fallback Code
}

// NewClassifier copies rules and lower-cases their keywords. Empty keywords
// are dropped since they would match every title.
func NewClassifier(rules []Rule, fallback Code) *Classifier {
	c := &Classifier{
		rules:    make([]Rule, 0, len(rules)),
		fallback: fallback,
	}

	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			keywords = append(keywords, k)
		}
		c.rules = append(c.rules, Rule{Code: r.Code, Keywords: keywords})
	}

	return c
}

// DefaultClassifier uses DefaultRules with the GN fallback.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules(), CodeGeneral)
}

// Classify returns the code of the first rule whose keyword appears in the
// lower-cased title, or the fallback code.
func (c *Classifier) Classify(title string) Code {
	title = strings.ToLower(title)

	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(title, k) {
				return r.Code
			}
		}
	}

	return c.fallback
}

// Fallback returns the code used when no rule matches.
func (c *Classifier) Fallback() Code {
	return c.fallback
}

// Rules returns a copy of the classifier's rules in match order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Rule{Code: r.Code, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}
