package assessment

import (
	"interview-assessment/lib/catalog"

	"github.com/pkg/errors"
)

const (
	Unrated  = 0
	MaxScore = 5
)

var ErrUnknownQuestion = errors.New("вопрос отсутствует в каталоге")

// FormState - состояние одной формы оценки.
// Оценки и заметки хранятся двумя таблицами [раздел][вопрос], размер которых
// берётся из каталога. Функции изменения не трогают исходное значение.
type FormState struct {
	Profile CandidateProfile
	scores  [][]int
	notes   [][]string
}

func NewFormState(cat *catalog.Catalog) FormState {
	scores := make([][]int, cat.Len())
	notes := make([][]string, cat.Len())
	for idx := range scores {
		scores[idx] = make([]int, cat.QuestionCount(idx))
		notes[idx] = make([]string, cat.QuestionCount(idx))
	}
	return FormState{scores: scores, notes: notes}
}

func (s FormState) contains(sectionIndex, questionIndex int) bool {
	return sectionIndex >= 0 && sectionIndex < len(s.scores) &&
		questionIndex >= 0 && questionIndex < len(s.scores[sectionIndex])
}

func (s FormState) Score(sectionIndex, questionIndex int) int {
	if !s.contains(sectionIndex, questionIndex) {
		return Unrated
	}
	return s.scores[sectionIndex][questionIndex]
}

func (s FormState) Note(sectionIndex, questionIndex int) string {
	if !s.contains(sectionIndex, questionIndex) {
		return ""
	}
	return s.notes[sectionIndex][questionIndex]
}

// RatedCount - количество вопросов с оценкой
func (s FormState) RatedCount() int {
	count := 0
	for _, row := range s.scores {
		for _, score := range row {
			if score != Unrated {
				count++
			}
		}
	}
	return count
}

func SetCandidateField(s FormState, field Field, value interface{}) (FormState, error) {
	profile, err := s.Profile.with(field, value)
	if err != nil {
		return s, err
	}
	s.Profile = profile
	return s, nil
}

// SetScore сохраняет оценку; значение приводится к диапазону [0,5]
func SetScore(s FormState, sectionIndex, questionIndex, value int) (FormState, error) {
	if !s.contains(sectionIndex, questionIndex) {
		return s, errors.Wrapf(ErrUnknownQuestion, "раздел %d, вопрос %d", sectionIndex, questionIndex)
	}
	if value < Unrated {
		value = Unrated
	}
	if value > MaxScore {
		value = MaxScore
	}
	s.scores = withInt(s.scores, sectionIndex, questionIndex, value)
	return s, nil
}

func SetNote(s FormState, sectionIndex, questionIndex int, text string) (FormState, error) {
	if !s.contains(sectionIndex, questionIndex) {
		return s, errors.Wrapf(ErrUnknownQuestion, "раздел %d, вопрос %d", sectionIndex, questionIndex)
	}
	s.notes = withString(s.notes, sectionIndex, questionIndex, text)
	return s, nil
}

// Reset возвращает форму к начальному состоянию
func Reset(s FormState) FormState {
	scores := make([][]int, len(s.scores))
	notes := make([][]string, len(s.notes))
	for idx := range s.scores {
		scores[idx] = make([]int, len(s.scores[idx]))
		notes[idx] = make([]string, len(s.notes[idx]))
	}
	return FormState{scores: scores, notes: notes}
}

// Clone - глубокая копия, не разделяющая таблицы с исходным значением
func (s FormState) Clone() FormState {
	result := FormState{
		Profile: s.Profile,
		scores:  make([][]int, len(s.scores)),
		notes:   make([][]string, len(s.notes)),
	}
	for idx := range s.scores {
		result.scores[idx] = append([]int(nil), s.scores[idx]...)
		result.notes[idx] = append([]string(nil), s.notes[idx]...)
	}
	return result
}

func withInt(src [][]int, row, col, value int) [][]int {
	dst := make([][]int, len(src))
	copy(dst, src)
	dst[row] = append([]int(nil), src[row]...)
	dst[row][col] = value
	return dst
}

func withString(src [][]string, row, col int, value string) [][]string {
	dst := make([][]string, len(src))
	copy(dst, src)
	dst[row] = append([]string(nil), src[row]...)
	dst[row][col] = value
	return dst
}
