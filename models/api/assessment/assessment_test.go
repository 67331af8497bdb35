package assessmentapimodels

import (
	"encoding/json"
	"testing"

	"interview-assessment/lib/assessment"

	"github.com/stretchr/testify/require"
)

func TestRequests(t *testing.T) {
	t.Run(`candidate field values`, func(t *testing.T) {
		req := CandidateFieldRequest{Field: assessment.FieldRelocationOpen, Value: json.RawMessage(`true`)}
		require.NoError(t, req.Validate())
		value, err := req.GetValue()
		require.NoError(t, err)
		require.Equal(t, true, value)

		req = CandidateFieldRequest{Field: assessment.FieldName, Value: json.RawMessage(`"Jane"`)}
		value, err = req.GetValue()
		require.NoError(t, err)
		require.Equal(t, "Jane", value)

		req = CandidateFieldRequest{Field: assessment.FieldName, Value: json.RawMessage(`true`)}
		_, err = req.GetValue()
		require.Error(t, err)
	})

	t.Run(`candidate field validation`, func(t *testing.T) {
		require.Error(t, CandidateFieldRequest{}.Validate())
		require.Error(t, CandidateFieldRequest{Field: "salary", Value: json.RawMessage(`"1"`)}.Validate())
		require.Error(t, CandidateFieldRequest{Field: assessment.FieldName}.Validate())
	})

	t.Run(`score validation`, func(t *testing.T) {
		require.NoError(t, ScoreRequest{Section: 0, Question: 2, Score: 4}.Validate())
		require.Error(t, ScoreRequest{Section: 0, Question: 2, Score: 0}.Validate())
		require.Error(t, ScoreRequest{Section: 0, Question: 2, Score: 6}.Validate())
		require.Error(t, ScoreRequest{Section: -1, Question: 2, Score: 3}.Validate())
	})

	t.Run(`note validation`, func(t *testing.T) {
		require.NoError(t, NoteRequest{Section: 1, Question: 1, Text: ""}.Validate())
		require.Error(t, NoteRequest{Section: 1, Question: -1}.Validate())
	})
}
