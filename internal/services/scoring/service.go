package scoring

import "unicode/utf8"

// Service totals the score for a round's accepted words
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Score returns the sum of the word lengths. Words are not revalidated or
// deduplicated here; the caller submits only words it has accepted.
func (s *Service) Score(words []string) int {
	total := 0
	for _, word := range words {
		total += utf8.RuneCountInString(word)
	}
	return total
}

// Interface check
type ServiceInterface interface {
	Score(words []string) int
}

var _ ServiceInterface = (*Service)(nil)
