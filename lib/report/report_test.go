package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"interview-assessment/lib/assessment"
	"interview-assessment/lib/catalog"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	cat := catalog.Default()
	exportTime := time.Date(2026, time.October, 14, 23, 30, 0, 0, time.UTC)

	t.Run(`score and note are exported in place`, func(t *testing.T) {
		state := assessment.NewFormState(cat)
		state, err := assessment.SetScore(state, 0, 2, 4)
		require.NoError(t, err)
		state, err = assessment.SetNote(state, 0, 2, "Strong keyword strategy")
		require.NoError(t, err)

		r := Generate(state, cat)
		question, _ := cat.Question(0, 2)
		require.Equal(t, QuestionResult{
			Question: question,
			Score:    4,
			Notes:    "Strong keyword strategy",
		}, r.AssessmentData[0].Questions[2])
		require.Equal(t, QuestionResult{Question: r.AssessmentData[0].Questions[1].Question}, r.AssessmentData[0].Questions[1])
	})

	t.Run(`missing entries default to zero and empty`, func(t *testing.T) {
		r := Generate(assessment.NewFormState(cat), cat)
		require.Len(t, r.AssessmentData, cat.Len())
		for _, section := range r.AssessmentData {
			for _, question := range section.Questions {
				require.Equal(t, 0, question.Score)
				require.Equal(t, "", question.Notes)
			}
		}
	})

	t.Run(`order follows catalog`, func(t *testing.T) {
		state := assessment.NewFormState(cat)
		var err error
		for s := cat.Len() - 1; s >= 0; s-- {
			for q := cat.QuestionCount(s) - 1; q >= 0; q-- {
				state, err = assessment.SetScore(state, s, q, q+1)
				require.NoError(t, err)
			}
		}
		r := Generate(state, cat)
		for sIdx, section := range cat.Sections() {
			require.Equal(t, section.Title, r.AssessmentData[sIdx].Title)
			for qIdx, question := range section.Questions {
				require.Equal(t, question, r.AssessmentData[sIdx].Questions[qIdx].Question)
				require.Equal(t, qIdx+1, r.AssessmentData[sIdx].Questions[qIdx].Score)
			}
		}
	})

	t.Run(`marshal is stable and pretty printed`, func(t *testing.T) {
		state := assessment.NewFormState(cat)
		state, err := assessment.SetCandidateField(state, assessment.FieldName, "Jane <Doe> & Co")
		require.NoError(t, err)
		first, err := Marshal(Generate(state, cat))
		require.NoError(t, err)
		second, err := Marshal(Generate(state, cat))
		require.NoError(t, err)
		require.Equal(t, first, second)

		text := string(first)
		require.True(t, strings.HasPrefix(text, "{\n  \"candidateInfo\": {\n    \"name\": \"Jane <Doe> & Co\","))
		require.False(t, strings.HasSuffix(text, "\n"))
		require.Less(t, strings.Index(text, "\"candidateInfo\""), strings.Index(text, "\"assessmentData\""))
		require.Less(t, strings.Index(text, "\"question\""), strings.Index(text, "\"score\""))
		require.Less(t, strings.Index(text, "\"score\""), strings.Index(text, "\"notes\": \"\""))
	})

	t.Run(`relocation flag exported`, func(t *testing.T) {
		state, err := assessment.SetCandidateField(assessment.NewFormState(cat), assessment.FieldRelocationOpen, true)
		require.NoError(t, err)
		artifact, err := Export(state, cat, exportTime)
		require.NoError(t, err)

		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(artifact.Body, &doc))
		info := doc["candidateInfo"].(map[string]interface{})
		require.Equal(t, true, info["relocationOpen"])
	})

	t.Run(`reset then export`, func(t *testing.T) {
		state := assessment.NewFormState(cat)
		state, err := assessment.SetScore(state, 1, 1, 5)
		require.NoError(t, err)
		state, err = assessment.SetCandidateField(state, assessment.FieldName, "Jane")
		require.NoError(t, err)
		state = assessment.Reset(state)

		artifact, err := Export(state, cat, exportTime)
		require.NoError(t, err)
		var r Report
		require.NoError(t, json.Unmarshal(artifact.Body, &r))
		require.Equal(t, "", r.CandidateInfo.Name)
		for _, section := range r.AssessmentData {
			for _, question := range section.Questions {
				require.Equal(t, 0, question.Score)
				require.Equal(t, "", question.Notes)
			}
		}
		require.Equal(t, "candidate-assessment-2026-10-14.json", artifact.FileName)
		require.Equal(t, ContentTypeJSON, artifact.ContentType)
	})

	t.Run(`file name`, func(t *testing.T) {
		require.Equal(t, "candidate-assessment-2026-10-14.json", FileName("", exportTime))
		require.Equal(t, "Jane Doe-assessment-2026-10-14.json", FileName("Jane Doe", exportTime))
		require.Equal(t, "a_b-assessment-2026-10-14.json", FileName("a/b", exportTime))
		require.Equal(t, "candidate-assessment-2026-10-14.json", FileName("\n", exportTime))
		require.Equal(t, "Jane-assessment-2026-10-14.xlsx", FileNameWithExt("Jane", exportTime, "xlsx"))

		local := time.Date(2026, time.October, 15, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
		require.Equal(t, "candidate-assessment-2026-10-14.json", FileName("", local))
	})

	t.Run(`file name ignores candidate date`, func(t *testing.T) {
		state, err := assessment.SetCandidateField(assessment.NewFormState(cat), assessment.FieldDate, "2020-01-01")
		require.NoError(t, err)
		artifact, err := Export(state, cat, exportTime)
		require.NoError(t, err)
		require.Equal(t, "candidate-assessment-2026-10-14.json", artifact.FileName)
	})
}

func TestValidateDocument(t *testing.T) {
	t.Run(`generated document is valid`, func(t *testing.T) {
		cat := catalog.Default()
		body, err := Marshal(Generate(assessment.NewFormState(cat), cat))
		require.NoError(t, err)
		require.NoError(t, ValidateDocument(body))
	})

	t.Run(`score outside range rejected`, func(t *testing.T) {
		doc := `{"candidateInfo":{"name":"","date":"","currentRole":"","currentCompany":"",` +
			`"currentSalary":"","minimumSalary":"","noticePeriod":"","relocationOpen":false,"notes":""},` +
			`"assessmentData":[{"title":"t","questions":[{"question":"q","score":7,"notes":""}]}]}`
		require.Error(t, ValidateDocument([]byte(doc)))
	})

	t.Run(`missing candidate info rejected`, func(t *testing.T) {
		require.Error(t, ValidateDocument([]byte(`{"assessmentData":[]}`)))
	})
}
