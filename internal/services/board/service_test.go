package board

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgrid/internal/dependencies/mocks"
	"github.com/mcoot/wordgrid/internal/dependencies/random"
	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/dictionary"
	"github.com/mcoot/wordgrid/internal/storage/memory"
	"github.com/mcoot/wordgrid/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	dictService *dictionary.Service
	mockRandom  *mocks.MockRandom
	service     *Service
	grid        *model.Grid
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.dictService = dictionary.New(memory.New(), testutil.NopLogger())
	s.Require().NoError(s.dictService.LoadWords([]string{
		"a", "cat", "cats", "dogs", "cac", "bog", "ant", "tan",
	}))
	s.mockRandom = mocks.NewMockRandom()
	s.service = New(s.dictService, s.mockRandom, testutil.NopLogger())
	s.grid = testutil.MustGrid(testutil.ExampleGrid)
}

func (s *ServiceSuite) check(word string) model.ValidationResult {
	result, err := s.service.CheckValidWord(s.grid, word)
	s.Require().NoError(err)
	return result
}

// MakeBoard tests

func (s *ServiceSuite) TestMakeBoardHasRequestedSize() {
	grid := s.service.MakeBoard(5)

	s.Equal(5, grid.Size)
	s.Require().Len(grid.Cells, 5)
	for _, row := range grid.Cells {
		s.Len(row, 5)
	}
}

func (s *ServiceSuite) TestMakeBoardFillsEveryCellFromAlphabet() {
	svc := New(s.dictService, random.New(), testutil.NopLogger())

	grid := svc.MakeBoard(6)

	s.NoError(grid.Validate())
	for _, row := range grid.Cells {
		for _, letter := range row {
			s.Contains(model.Alphabet, string(letter))
		}
	}
}

func (s *ServiceSuite) TestMakeBoardUsesRandomSource() {
	s.mockRandom.QueueLetters("CATSPANIMLBOGTHERDOGMPUSE")

	grid := s.service.MakeBoard(5)

	s.Equal(testutil.ExampleGrid, grid.Strings())
}

func (s *ServiceSuite) TestMakeBoardAllowsRepeatedLetters() {
	// An exhausted mock always yields index 0
	grid := s.service.MakeBoard(3)

	s.Equal([][]string{{"A", "A", "A"}, {"A", "A", "A"}, {"A", "A", "A"}}, grid.Strings())
}

func (s *ServiceSuite) TestMakeBoardNonPositiveSizeUsesDefault() {
	s.Equal(model.DefaultGridSize, s.service.MakeBoard(0).Size)
	s.Equal(model.DefaultGridSize, s.service.MakeBoard(-3).Size)
}

func (s *ServiceSuite) TestMakeBoardReturnsIndependentGrids() {
	first := s.service.MakeBoard(5)
	second := s.service.MakeBoard(5)

	first.Cells[0][0] = 'Z'

	s.Equal('A', second.Get(model.Position{Row: 0, Col: 0}))
}

func (s *ServiceSuite) TestNewBoardUsesConfiguredSize() {
	s.Equal(model.DefaultGridSize, s.service.NewBoard().Size)

	svc := New(s.dictService, s.mockRandom, testutil.NopLogger(), WithGridSize(4))
	s.Equal(4, svc.NewBoard().Size)
	s.Equal(4, svc.GridSize())
}

// CheckValidWord tests on the reference grid

func (s *ServiceSuite) TestCheckValidWordOK() {
	s.Equal(model.ResultOK, s.check("CAT"))
}

func (s *ServiceSuite) TestCheckValidWordDiagonalPath() {
	// D(3,2) -> O(3,3) -> G(3,4) -> S(4,3), the last step is diagonal
	s.Equal(model.ResultOK, s.check("DOGS"))
	s.Equal([]model.Position{
		{Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 3},
	}, s.service.FindPath(s.grid, "DOGS"))
}

func (s *ServiceSuite) TestCheckValidWordNotOnBoard() {
	s.Equal(model.ResultNotOnBoard, s.check("XYZ"))
}

func (s *ServiceSuite) TestCheckValidWordNotWord() {
	// T(0,2) A(0,1) C(0,0) traces, but "tac" is not in the dictionary
	s.Equal(model.ResultNotWord, s.check("TAC"))
}

func (s *ServiceSuite) TestCheckValidWordIsCaseInsensitive() {
	s.Equal(model.ResultOK, s.check("cat"))
	s.Equal(model.ResultOK, s.check("CaT"))
	s.Equal(model.ResultOK, s.check("  cat "))
}

func (s *ServiceSuite) TestCheckValidWordDoesNotReuseCells() {
	// Only one C on the grid, so C-A-C cannot be traced
	s.Equal(model.ResultNotOnBoard, s.check("CAC"))
}

func (s *ServiceSuite) TestCheckValidWordBacktracks() {
	// From A the B to the right is tried first and dead-ends
	grid := testutil.MustGrid([][]string{
		{"A", "B", "X"},
		{"B", "X", "X"},
		{"C", "X", "X"},
	})
	_ = s.dictService.LoadWords([]string{"abc"})

	result, err := s.service.CheckValidWord(grid, "ABC")
	s.Require().NoError(err)
	s.Equal(model.ResultOK, result)
	s.Equal([]model.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
		s.service.FindPath(grid, "ABC"))
}

func (s *ServiceSuite) TestCheckValidWordSingleLetter() {
	s.Equal(model.ResultOK, s.check("A"))
	// On the grid but not in the dictionary
	s.Equal(model.ResultNotWord, s.check("N"))
	// Not on the grid at all
	s.Equal(model.ResultNotOnBoard, s.check("Q"))
}

func (s *ServiceSuite) TestCheckValidWordTooLong() {
	long := strings.Repeat("A", s.grid.CellCount()+1)
	_ = s.dictService.LoadWords([]string{long})

	s.Equal(model.ResultNotOnBoard, s.check(long))
}

func (s *ServiceSuite) TestCheckValidWordNonLetters() {
	s.Equal(model.ResultNotOnBoard, s.check("C4T"))
	s.Equal(model.ResultNotOnBoard, s.check("C-AT"))
}

func (s *ServiceSuite) TestCheckValidWordRejectsFoldingRunes() {
	// ToUpper maps dotless i to I and long s to S, both present on the grid
	for _, word := range []string{"ı", "ſ", "ıNK", "CATſ", "café"} {
		s.Equal(model.ResultNotOnBoard, s.check(word), word)
		s.Nil(s.service.FindPath(s.grid, word), word)
	}
}

func (s *ServiceSuite) TestCheckValidWordNonLettersDictionaryFirst() {
	svc := New(s.dictService, s.mockRandom, testutil.NopLogger(),
		WithRules(Rules{Adjacency: AdjacencyOrthogonal, Order: DictionaryFirst}))

	result, err := svc.CheckValidWord(s.grid, "ı")
	s.Require().NoError(err)
	s.Equal(model.ResultNotOnBoard, result)
}

func (s *ServiceSuite) TestCheckValidWordEmptyIsError() {
	_, err := s.service.CheckValidWord(s.grid, "")
	s.ErrorIs(err, model.ErrEmptyWord)

	_, err = s.service.CheckValidWord(s.grid, "   ")
	s.ErrorIs(err, model.ErrEmptyWord)
}

func (s *ServiceSuite) TestCheckValidWordMissingGridIsError() {
	_, err := s.service.CheckValidWord(nil, "CAT")
	s.ErrorIs(err, model.ErrInvalidGrid)
}

func (s *ServiceSuite) TestCheckValidWordMalformedGridIsError() {
	grid := &model.Grid{Size: 2, Cells: [][]rune{{'A', 'B'}, {'C'}}}
	_, err := s.service.CheckValidWord(grid, "AB")
	s.ErrorIs(err, model.ErrInvalidGrid)

	grid = &model.Grid{Size: 2, Cells: [][]rune{{'A', 'B'}, {'C', '1'}}}
	_, err = s.service.CheckValidWord(grid, "AB")
	s.ErrorIs(err, model.ErrInvalidGrid)
}

func (s *ServiceSuite) TestCheckValidWordDoesNotMutateGrid() {
	before := s.grid.Strings()
	_ = s.check("DOGS")
	_ = s.check("CAC")
	s.Equal(before, s.grid.Strings())
}

// Rule variants

func (s *ServiceSuite) TestOrthogonalDictionaryFirstRules() {
	svc := New(s.dictService, s.mockRandom, testutil.NopLogger(), WithRules(Rules{
		Adjacency: AdjacencyOrthogonal,
		Order:     DictionaryFirst,
	}))

	check := func(word string) model.ValidationResult {
		result, err := svc.CheckValidWord(s.grid, word)
		s.Require().NoError(err)
		return result
	}

	s.Equal(model.ResultOK, check("CAT"))
	s.Equal(model.ResultNotOnBoard, check("DOGS"))
	s.Equal(model.ResultNotWord, check("XYZ"))
}

func (s *ServiceSuite) TestDictionaryFirstReportsNotWordBeforeAdjacency() {
	svc := New(s.dictService, s.mockRandom, testutil.NopLogger(), WithRules(Rules{
		Adjacency: AdjacencyDiagonal,
		Order:     DictionaryFirst,
	}))

	result, err := svc.CheckValidWord(s.grid, "XYZ")
	s.Require().NoError(err)
	s.Equal(model.ResultNotWord, result)
}

func (s *ServiceSuite) TestParseRules() {
	rules, err := ParseRules("", "")
	s.Require().NoError(err)
	s.Equal(DefaultRules(), rules)

	rules, err = ParseRules("Orthogonal", "dictionary-first")
	s.Require().NoError(err)
	s.Equal(Rules{Adjacency: AdjacencyOrthogonal, Order: DictionaryFirst}, rules)

	_, err = ParseRules("hex", "")
	s.Error(err)

	_, err = ParseRules("", "sideways")
	s.Error(err)
}

// FindPath tests

func (s *ServiceSuite) TestFindPathReturnsAdjacentDistinctCells() {
	for _, word := range []string{"CAT", "DOGS", "BOG", "ANT", "TAN"} {
		path := s.service.FindPath(s.grid, word)
		s.Require().Len(path, len(word), word)

		seen := make(map[model.Position]bool)
		for i, pos := range path {
			s.Equal(rune(word[i]), s.grid.Get(pos), word)
			s.False(seen[pos], "cell reused in %s", word)
			seen[pos] = true
			if i > 0 {
				s.LessOrEqual(abs(pos.Row-path[i-1].Row), 1, word)
				s.LessOrEqual(abs(pos.Col-path[i-1].Col), 1, word)
			}
		}
	}
}

func (s *ServiceSuite) TestFindPathNone() {
	s.Nil(s.service.FindPath(s.grid, "XYZ"))
	s.Nil(s.service.FindPath(nil, "CAT"))
}

// Properties

func (s *ServiceSuite) TestTracedWordValidatesOnGeneratedGrids() {
	svc := New(s.dictService, random.New(), testutil.NopLogger())
	// A snake through the first two rows: right along row 0, back along row 1
	walk := []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
	}

	for i := 0; i < 20; i++ {
		grid := svc.MakeBoard(5)
		var word strings.Builder
		for _, pos := range walk {
			word.WriteRune(grid.Get(pos))
		}
		s.Require().NoError(s.dictService.LoadWords([]string{word.String()}))

		result, err := svc.CheckValidWord(grid, word.String())
		s.Require().NoError(err)
		s.Equal(model.ResultOK, result, word.String())
	}
}

func (s *ServiceSuite) TestEverySingleCellLetterTraces() {
	svc := New(s.dictService, random.New(), testutil.NopLogger())
	grid := svc.MakeBoard(5)

	for _, row := range grid.Cells {
		for _, letter := range row {
			s.NotNil(svc.FindPath(grid, string(letter)))
		}
	}
}

func (s *ServiceSuite) TestConcurrentChecks() {
	svc := New(s.dictService, random.New(), testutil.NopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.NewBoard()
			result, err := svc.CheckValidWord(s.grid, "DOGS")
			s.NoError(err)
			s.Equal(model.ResultOK, result)
		}()
	}
	wg.Wait()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
