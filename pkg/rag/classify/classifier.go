package classify

import (
	"strings"

	"nursing-assistant-be/internal/constant"
)

// Classifier maps free-text queries to the set of applicable categories.
// Membership is decided by substring containment of any trigger term in the
// lower-cased query. No stemming, no tokenization. Categories are
// independent: zero, one, or all may be selected.
type Classifier struct {
	triggers map[constant.Category][]string
}

func NewClassifier(triggers map[constant.Category][]string) *Classifier {
	lowered := make(map[constant.Category][]string, len(triggers))
	for cat, terms := range triggers {
		ts := make([]string, len(terms))
		for i, t := range terms {
			ts[i] = strings.ToLower(t)
		}
		lowered[cat] = ts
	}
	return &Classifier{triggers: lowered}
}

// Classify returns the selected categories in canonical processing order.
func (c *Classifier) Classify(query string) []constant.Category {
	lowered := strings.ToLower(query)
	var selected []constant.Category
	for _, cat := range constant.AllCategories {
		for _, term := range c.triggers[cat] {
			if strings.Contains(lowered, term) {
				selected = append(selected, cat)
				break
			}
		}
	}
	return selected
}
