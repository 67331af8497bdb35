package assessmentapimodels

import (
	"encoding/json"

	"interview-assessment/lib/assessment"
	"interview-assessment/lib/rating"
	"interview-assessment/lib/report"

	"github.com/pkg/errors"
)

type CreateResponse struct {
	ID string `json:"id"`
}

type CandidateFieldRequest struct {
	Field assessment.Field `json:"field"`
	Value json.RawMessage  `json:"value"`
}

func (r CandidateFieldRequest) Validate() error {
	if r.Field == "" {
		return errors.New("не указано поле анкеты")
	}
	if !r.Field.Valid() {
		return errors.Errorf("неизвестное поле анкеты: %s", r.Field)
	}
	if len(r.Value) == 0 {
		return errors.New("не указано значение поля анкеты")
	}
	return nil
}

// GetValue - значение поля в типе, который ожидает анкета (string или bool)
func (r CandidateFieldRequest) GetValue() (interface{}, error) {
	if r.Field.IsBool() {
		var flag bool
		if err := json.Unmarshal(r.Value, &flag); err != nil {
			return nil, errors.Errorf("поле %s должно быть true/false", r.Field)
		}
		return flag, nil
	}
	var str string
	if err := json.Unmarshal(r.Value, &str); err != nil {
		return nil, errors.Errorf("поле %s должно быть строкой", r.Field)
	}
	return str, nil
}

type ScoreRequest struct {
	Section  int `json:"section"`
	Question int `json:"question"`
	Score    int `json:"score"` // 1..5
}

func (r ScoreRequest) Validate() error {
	if r.Section < 0 || r.Question < 0 {
		return errors.New("индекс раздела и вопроса не может быть отрицательным")
	}
	if _, err := rating.Select(r.Score); err != nil {
		return err
	}
	return nil
}

type NoteRequest struct {
	Section  int    `json:"section"`
	Question int    `json:"question"`
	Text     string `json:"text"`
}

func (r NoteRequest) Validate() error {
	if r.Section < 0 || r.Question < 0 {
		return errors.New("индекс раздела и вопроса не может быть отрицательным")
	}
	return nil
}

// StateView - текущее состояние формы (вопросы в порядке каталога)
type StateView struct {
	ID         string                      `json:"id"`
	Candidate  assessment.CandidateProfile `json:"candidateInfo"`
	Sections   []report.SectionResult      `json:"assessmentData"`
	RatedCount int                         `json:"ratedCount"`
}
