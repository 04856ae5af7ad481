package analytics

import "strings"

type categoryRule struct {
	name     string
	keywords []string
}

// Rules are evaluated in order and the first matching category wins, so an
// article lands in at most one bucket.
var categoryRules = []categoryRule{
	{"technology", []string{"tech", "software", "ai", "cyber", "digital", "computer"}},
	{"business", []string{"business", "market", "economy", "trade", "stock", "company"}},
	{"health", []string{"health", "medical", "doctor", "disease", "hospital", "wellness"}},
	{"science", []string{"science", "research", "study", "discovery", "scientist", "experiment"}},
}

func classifyTitle(title string) (string, bool) {
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.name, true
			}
		}
	}
	return "", false
}
