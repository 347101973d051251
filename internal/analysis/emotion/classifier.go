package emotion

import "strings"

// CatchAll is assigned when no category keyword matches.
const CatchAll = "기타"

// Category pairs an emotion label with its trigger keywords.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultCategories is the deployed category table. Order matters: when an
// utterance matches keywords from several categories, the first category in
// this slice wins. Matching is case-sensitive substring containment.
var DefaultCategories = []Category{
	{Name: "스트레스", Keywords: []string{"지치", "짜증", "불안", "과로", "긴장"}},
	{Name: "우울", Keywords: []string{"무기력", "우울", "의욕", "힘들", "외롭"}},
	{Name: "기쁨", Keywords: []string{"행복", "기쁨", "뿌듯", "좋아", "감사"}},
	{Name: "분노", Keywords: []string{"화남", "짜증", "열받", "불공정"}},
	{Name: "불안", Keywords: []string{"걱정", "두려움", "불안", "초조"}},
}

// Classifier assigns exactly one category to any utterance.
type Classifier struct {
	categories []Category
}

// NewClassifier builds a classifier over the given ordered table. With no
// categories every input classifies as the catch-all.
func NewClassifier(categories []Category) *Classifier {
	return &Classifier{categories: categories}
}

// NewDefaultClassifier builds a classifier over DefaultCategories.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultCategories)
}

// Classify returns the first category in table order whose keyword set
// contains a substring of text, or the catch-all when none matches. Total:
// every input, including the empty string, gets exactly one category.
func (c *Classifier) Classify(text string) string {
	for _, cat := range c.categories {
		for _, kw := range cat.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(text, kw) {
				return cat.Name
			}
		}
	}
	return CatchAll
}
