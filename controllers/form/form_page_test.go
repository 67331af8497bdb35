package formpage

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	assessmentstore "interview-assessment/lib/assessment-store"
	"interview-assessment/lib/catalog"
	"interview-assessment/lib/report"
	"interview-assessment/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	catalog.Instance = catalog.Default()
	assessmentstore.Instance = assessmentstore.NewInstance(catalog.Instance, time.Hour, time.Now)
	app := fiber.New()
	InitFormPageRouters(app, "Digital Marketing Interview Assessment", middleware.AssessmentSession(false, time.Hour))
	return app
}

func postForm(t *testing.T, app *fiber.App, target, cookie string, form url.Values) *http.Response {
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set("Cookie", middleware.SessionCookieName+"="+cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func fullForm() url.Values {
	form := url.Values{}
	form.Set(formMarker, "1")
	form.Set("name", "Jane Doe")
	form.Set("date", "2026-10-01")
	form.Set("currentRole", "PPC Manager")
	form.Set("relocationOpen", "on")
	form.Set(noteField(0, 2), "Strong keyword strategy")
	return form
}

func TestFormPage(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, resp.Cookies(), 1)
	sessionID := resp.Cookies()[0].Value
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	t.Run(`page renders catalog`, func(t *testing.T) {
		html := string(body)
		require.Contains(t, html, "Digital Marketing Interview Assessment")
		require.Contains(t, html, "Paid Search Experience")
		require.Contains(t, html, "How do you approach keyword research and account structure?")
		require.Contains(t, html, `value="0:2:4"`)
		require.Contains(t, html, "Rated 0 of 25 questions")
		require.NotContains(t, html, `class="filled"`)
	})

	t.Run(`star click saves fields and score`, func(t *testing.T) {
		form := fullForm()
		form.Set(rateField, "0:2:4")
		resp := postForm(t, app, "/form", sessionID, form)
		require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/#q-0-2", resp.Header.Get(fiber.HeaderLocation))

		state, err := assessmentstore.Instance.Get(sessionID)
		require.NoError(t, err)
		require.Equal(t, 4, state.Score(0, 2))
		require.Equal(t, "Strong keyword strategy", state.Note(0, 2))
		require.Equal(t, "Jane Doe", state.Profile.Name)
		require.True(t, state.Profile.RelocationOpen)
	})

	t.Run(`page shows saved values`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set("Cookie", middleware.SessionCookieName+"="+sessionID)
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		html := string(body)
		require.Contains(t, html, `value="Jane Doe"`)
		require.Contains(t, html, "Strong keyword strategy")
		require.Contains(t, html, " checked")
		require.Equal(t, 4, strings.Count(html, `class="filled"`))
		require.Contains(t, html, "Rated 1 of 25 questions")
	})

	t.Run(`invalid star value`, func(t *testing.T) {
		form := url.Values{}
		form.Set(rateField, "0:2:9")
		resp := postForm(t, app, "/form", sessionID, form)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		form.Set(rateField, "garbage")
		resp = postForm(t, app, "/form", sessionID, form)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		form.Set(rateField, "9:0:3")
		resp = postForm(t, app, "/form", sessionID, form)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		state, err := assessmentstore.Instance.Get(sessionID)
		require.NoError(t, err)
		require.Equal(t, 4, state.Score(0, 2))
	})

	t.Run(`star click without form fields keeps notes`, func(t *testing.T) {
		form := url.Values{}
		form.Set(rateField, "1:0:2")
		resp := postForm(t, app, "/form", sessionID, form)
		require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		state, err := assessmentstore.Instance.Get(sessionID)
		require.NoError(t, err)
		require.Equal(t, 2, state.Score(1, 0))
		require.Equal(t, "Strong keyword strategy", state.Note(0, 2))
	})

	t.Run(`export json`, func(t *testing.T) {
		resp := postForm(t, app, "/form/export?format=json", sessionID, fullForm())
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `filename="Jane Doe-assessment-`)
		require.Equal(t, report.ContentTypeJSON, resp.Header.Get(fiber.HeaderContentType))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var r report.Report
		require.NoError(t, json.Unmarshal(body, &r))
		require.Equal(t, "Jane Doe", r.CandidateInfo.Name)
		require.Equal(t, 4, r.AssessmentData[0].Questions[2].Score)
		require.Equal(t, 2, r.AssessmentData[1].Questions[0].Score)
	})

	t.Run(`export unknown format`, func(t *testing.T) {
		resp := postForm(t, app, "/form/export?format=csv", sessionID, fullForm())
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`reset clears form`, func(t *testing.T) {
		resp := postForm(t, app, "/form/reset", sessionID, fullForm())
		require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		state, err := assessmentstore.Instance.Get(sessionID)
		require.NoError(t, err)
		require.Equal(t, 0, state.RatedCount())
		require.Equal(t, "", state.Profile.Name)
		require.Equal(t, "", state.Note(0, 2))
	})
}

func TestFormPageSessionsIsolated(t *testing.T) {
	app := newTestApp()

	newSession := func() string {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Len(t, resp.Cookies(), 1)
		return resp.Cookies()[0].Value
	}
	first, second := newSession(), newSession()
	require.NotEqual(t, first, second)

	form := url.Values{}
	form.Set(formMarker, "1")
	form.Set("name", "Alice")
	form.Set(noteField(0, 0), "Strong keyword strategy")
	resp := postForm(t, app, "/form", first, form)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	t.Run(`other session traffic keeps stored values`, func(t *testing.T) {
		other := url.Values{}
		other.Set(formMarker, "1")
		other.Set("name", "Zorro")
		other.Set(noteField(0, 0), "Weak keyword strategies")
		for i := 0; i < 20; i++ {
			resp := postForm(t, app, "/form", second, other)
			require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		}

		state, err := assessmentstore.Instance.Get(first)
		require.NoError(t, err)
		require.Equal(t, "Alice", state.Profile.Name)
		require.Equal(t, "Strong keyword strategy", state.Note(0, 0))

		state, err = assessmentstore.Instance.Get(second)
		require.NoError(t, err)
		require.Equal(t, "Zorro", state.Profile.Name)
	})
}
