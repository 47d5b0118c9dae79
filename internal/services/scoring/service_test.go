package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) TestScoreSumsWordLengths() {
	s.Equal(7, s.service.Score([]string{"CAT", "DOGS"}))
}

func (s *ServiceSuite) TestScoreNoWords() {
	s.Equal(0, s.service.Score(nil))
	s.Equal(0, s.service.Score([]string{}))
}

func (s *ServiceSuite) TestScoreSingleLetterWord() {
	s.Equal(1, s.service.Score([]string{"a"}))
}

func (s *ServiceSuite) TestScoreIgnoresCase() {
	s.Equal(s.service.Score([]string{"cat"}), s.service.Score([]string{"CAT"}))
}

func (s *ServiceSuite) TestScoreCountsRepeats() {
	s.Equal(6, s.service.Score([]string{"cat", "cat"}))
}

func (s *ServiceSuite) TestScoreCountsRunesNotBytes() {
	s.Equal(4, s.service.Score([]string{"café"}))
}
