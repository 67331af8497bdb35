package formpage

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"interview-assessment/controllers"
	"interview-assessment/lib/assessment"
	assessmentstore "interview-assessment/lib/assessment-store"
	"interview-assessment/lib/catalog"
	"interview-assessment/lib/export"
	"interview-assessment/lib/rating"
	"interview-assessment/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	formMarker = "form"
	rateField  = "rate"
)

//go:embed templates/form.html
var formTemplate string

var pageTemplate = template.Must(template.New("form").Parse(formTemplate))

type formPageController struct {
	controllers.BaseAPIController
	title string
}

// InitFormPageRouters - html форма оценки. middlewares выполняются перед каждым обработчиком
// страницы, среди них должен быть middleware.AssessmentSession.
func InitFormPageRouters(app *fiber.App, title string, middlewares ...fiber.Handler) {
	controller := formPageController{title: title}
	route := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, middlewares...), handler)
	}
	app.Get("/", route(controller.show)...)
	app.Post("/form", route(controller.save)...)
	app.Post("/form/reset", route(controller.reset)...)
	app.Post("/form/export", route(controller.export)...)
}

type starView struct {
	Position int
	Filled   bool
	Value    string
}

type questionView struct {
	Anchor    string
	Text      string
	Note      string
	NoteField string
	Stars     []starView
}

type sectionView struct {
	Title     string
	Questions []questionView
}

type pageView struct {
	Title      string
	FormMarker string
	Profile    assessment.CandidateProfile
	Sections   []sectionView
	Rated      int
	Total      int
}

func noteField(sectionIndex, questionIndex int) string {
	return fmt.Sprintf("note.%d.%d", sectionIndex, questionIndex)
}

func anchor(sectionIndex, questionIndex int) string {
	return fmt.Sprintf("q-%d-%d", sectionIndex, questionIndex)
}

func buildPage(title string, state assessment.FormState, cat *catalog.Catalog) pageView {
	page := pageView{
		Title:      title,
		FormMarker: formMarker,
		Profile:    state.Profile,
		Sections:   make([]sectionView, 0, cat.Len()),
		Rated:      state.RatedCount(),
	}
	for sIdx, section := range cat.Sections() {
		item := sectionView{Title: section.Title}
		for qIdx, question := range section.Questions {
			page.Total++
			stars := make([]starView, 0, rating.Positions)
			for _, star := range rating.Stars(state.Score(sIdx, qIdx)) {
				stars = append(stars, starView{
					Position: star.Position,
					Filled:   star.Filled,
					Value:    fmt.Sprintf("%d:%d:%d", sIdx, qIdx, star.Position),
				})
			}
			item.Questions = append(item.Questions, questionView{
				Anchor:    anchor(sIdx, qIdx),
				Text:      question,
				Note:      state.Note(sIdx, qIdx),
				NoteField: noteField(sIdx, qIdx),
				Stars:     stars,
			})
		}
		page.Sections = append(page.Sections, item)
	}
	return page
}

func (c *formPageController) show(ctx *fiber.Ctx) error {
	state, err := assessmentstore.Instance.Get(middleware.GetSessionID(ctx))
	if err != nil {
		return c.sendPageError(ctx, err)
	}
	buf := new(bytes.Buffer)
	if err = pageTemplate.Execute(buf, buildPage(c.title, state, catalog.Instance)); err != nil {
		log.WithError(err).Error("ошибка формирования страницы")
		return ctx.Status(fiber.StatusInternalServerError).SendString("Ошибка формирования страницы")
	}
	ctx.Type("html", "utf-8")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (c *formPageController) save(ctx *fiber.Ctx) error {
	var pressed string
	_, err := assessmentstore.Instance.Update(middleware.GetSessionID(ctx), func(s assessment.FormState) (assessment.FormState, error) {
		var err error
		s, err = applyForm(ctx, s, catalog.Instance)
		if err != nil {
			return s, err
		}
		s, pressed, err = applyRating(ctx, s)
		return s, err
	})
	if err != nil {
		return c.sendPageError(ctx, err)
	}
	target := "/"
	if pressed != "" {
		target += "#" + pressed
	}
	return ctx.Redirect(target, fiber.StatusSeeOther)
}

func (c *formPageController) reset(ctx *fiber.Ctx) error {
	_, err := assessmentstore.Instance.Update(middleware.GetSessionID(ctx), func(s assessment.FormState) (assessment.FormState, error) {
		return assessment.Reset(s), nil
	})
	if err != nil {
		return c.sendPageError(ctx, err)
	}
	return ctx.Redirect("/", fiber.StatusSeeOther)
}

func (c *formPageController) export(ctx *fiber.Ctx) error {
	format, err := export.ParseFormat(ctx.Query("format"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	state, err := assessmentstore.Instance.Update(middleware.GetSessionID(ctx), func(s assessment.FormState) (assessment.FormState, error) {
		return applyForm(ctx, s, catalog.Instance)
	})
	if err != nil {
		return c.sendPageError(ctx, err)
	}
	artifact, err := export.Build(format, c.title, state, catalog.Instance, time.Now())
	if err != nil {
		log.WithError(err).Error("ошибка формирования отчёта")
		return ctx.Status(fiber.StatusInternalServerError).SendString("Ошибка формирования отчёта")
	}
	return c.SendArtifact(ctx, artifact)
}

// formValue - копия значения поля. Строки fiber ссылаются на буфер запроса,
// который переиспользуется, а значения живут в хранилище дольше запроса.
func formValue(ctx *fiber.Ctx, key string) string {
	return utils.CopyString(ctx.FormValue(key))
}

// applyForm переносит в состояние все поля страницы.
// Запросы без маркера формы (например, только нажатие звезды) поля не трогают.
func applyForm(ctx *fiber.Ctx, s assessment.FormState, cat *catalog.Catalog) (assessment.FormState, error) {
	if ctx.FormValue(formMarker) == "" {
		return s, nil
	}
	var err error
	for _, field := range assessment.Fields {
		var value interface{} = formValue(ctx, string(field))
		if field.IsBool() {
			value = ctx.FormValue(string(field)) == "on"
		}
		if s, err = assessment.SetCandidateField(s, field, value); err != nil {
			return s, err
		}
	}
	for sIdx := 0; sIdx < cat.Len(); sIdx++ {
		for qIdx := 0; qIdx < cat.QuestionCount(sIdx); qIdx++ {
			if s, err = assessment.SetNote(s, sIdx, qIdx, formValue(ctx, noteField(sIdx, qIdx))); err != nil {
				return s, err
			}
		}
	}
	return s, nil
}

// applyRating обрабатывает нажатие звезды: значение "раздел:вопрос:оценка"
func applyRating(ctx *fiber.Ctx, s assessment.FormState) (assessment.FormState, string, error) {
	value := ctx.FormValue(rateField)
	if value == "" {
		return s, "", nil
	}
	var sIdx, qIdx, position int
	if _, err := fmt.Sscanf(value, "%d:%d:%d", &sIdx, &qIdx, &position); err != nil {
		return s, "", errors.Wrapf(errInvalidRate, "%s", value)
	}
	score, err := rating.Select(position)
	if err != nil {
		return s, "", err
	}
	s, err = assessment.SetScore(s, sIdx, qIdx, score)
	if err != nil {
		return s, "", err
	}
	return s, anchor(sIdx, qIdx), nil
}

var errInvalidRate = errors.New("некорректное значение оценки")

func (c *formPageController) sendPageError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessmentstore.ErrSessionNotFound):
		return ctx.Redirect("/", fiber.StatusSeeOther)
	case errors.Is(err, errInvalidRate),
		errors.Is(err, rating.ErrOutOfRange),
		errors.Is(err, assessment.ErrUnknownQuestion),
		errors.Is(err, assessment.ErrUnknownField),
		errors.Is(err, assessment.ErrFieldType):
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	log.WithError(err).Error("ошибка обработки формы")
	return ctx.Status(fiber.StatusInternalServerError).SendString("Ошибка обработки формы")
}
