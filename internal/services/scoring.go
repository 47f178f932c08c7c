package services

import "github.com/shreyashetty-create/WhoSaid-project/internal/models"

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score awards 5 points for unmasking the AI decoy, 2 for naming the right
// human author and 0 otherwise. Correctness is independent of the bonus.
func (s *ScoringService) Score(author, guessed string) (score int, correct bool) {
	correct = guessed == author
	switch {
	case author == models.AIAuthor && guessed == models.AIAuthor:
		score = 5
	case correct:
		score = 2
	}
	return score, correct
}
