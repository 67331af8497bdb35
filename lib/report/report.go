package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"interview-assessment/lib/assessment"
	"interview-assessment/lib/catalog"

	"github.com/pkg/errors"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"
	defaultStem     = "candidate"
)

type QuestionResult struct {
	Question string `json:"question"`
	Score    int    `json:"score"`
	Notes    string `json:"notes"`
}

type SectionResult struct {
	Title     string           `json:"title"`
	Questions []QuestionResult `json:"questions"`
}

// Report - итоговый документ оценки, формируется только при выгрузке
type Report struct {
	CandidateInfo  assessment.CandidateProfile `json:"candidateInfo"`
	AssessmentData []SectionResult             `json:"assessmentData"`
}

// Artifact - файл для скачивания
type Artifact struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Generate собирает отчёт в порядке каталога.
// Для вопросов без оценки/заметки выводится 0 и пустая строка.
func Generate(state assessment.FormState, cat *catalog.Catalog) Report {
	result := Report{
		CandidateInfo:  state.Profile,
		AssessmentData: make([]SectionResult, 0, cat.Len()),
	}
	for sIdx, section := range cat.Sections() {
		item := SectionResult{
			Title:     section.Title,
			Questions: make([]QuestionResult, 0, len(section.Questions)),
		}
		for qIdx, question := range section.Questions {
			item.Questions = append(item.Questions, QuestionResult{
				Question: question,
				Score:    state.Score(sIdx, qIdx),
				Notes:    state.Note(sIdx, qIdx),
			})
		}
		result.AssessmentData = append(result.AssessmentData, item)
	}
	return result
}

// Marshal - JSON с отступом в два пробела, без экранирования html символов
func Marshal(r Report) ([]byte, error) {
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации отчёта")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// FileName - "<имя|candidate>-assessment-<YYYY-MM-DD>.json", дата выгрузки в UTC
func FileName(candidateName string, now time.Time) string {
	return FileNameWithExt(candidateName, now, "json")
}

func FileNameWithExt(candidateName string, now time.Time, ext string) string {
	return fmt.Sprintf("%s-assessment-%s.%s", fileStem(candidateName), now.UTC().Format("2006-01-02"), ext)
}

func fileStem(candidateName string) string {
	if candidateName == "" {
		return defaultStem
	}
	stem := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, candidateName)
	if stem == "" {
		return defaultStem
	}
	return stem
}

// Export формирует json файл отчёта и проверяет его по схеме
func Export(state assessment.FormState, cat *catalog.Catalog, now time.Time) (Artifact, error) {
	body, err := Marshal(Generate(state, cat))
	if err != nil {
		return Artifact{}, err
	}
	if err = ValidateDocument(body); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		FileName:    FileName(state.Profile.Name, now),
		ContentType: ContentTypeJSON,
		Body:        body,
	}, nil
}
