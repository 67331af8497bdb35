package apiv1

import (
	"time"

	"interview-assessment/controllers"
	"interview-assessment/lib/assessment"
	assessmentstore "interview-assessment/lib/assessment-store"
	"interview-assessment/lib/catalog"
	"interview-assessment/lib/export"
	"interview-assessment/lib/report"
	apimodels "interview-assessment/models/api"
	assessmentapimodels "interview-assessment/models/api/assessment"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type assessmentApiController struct {
	controllers.BaseAPIController
	title string
}

func InitAssessmentApiRouters(app *fiber.App, title string) {
	controller := assessmentApiController{title: title}
	app.Route("assessment", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Delete("", controller.delete)
			idRouter.Put("candidate", controller.setCandidateField) // изменить поле анкеты
			idRouter.Put("score", controller.setScore)              // поставить оценку вопросу
			idRouter.Put("note", controller.setNote)                // заметка к вопросу
			idRouter.Post("reset", controller.reset)                // очистить форму
			idRouter.Get("report", controller.report)               // скачать отчёт
		})
	})
}

// @Summary Создание формы оценки
// @Tags Оценка
// @Description Создание пустой формы оценки
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.CreateResponse}
// @router /api/v1/assessment [post]
func (c *assessmentApiController) create(ctx *fiber.Ctx) error {
	id, _ := assessmentstore.Instance.Create()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(assessmentapimodels.CreateResponse{ID: id}))
}

// @Summary Получение формы оценки
// @Tags Оценка
// @Description Текущее состояние формы в порядке каталога
// @Param   id          		path    string  				    	true         "ID формы"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/assessment/{id} [get]
func (c *assessmentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := assessmentstore.Instance.Get(id)
	if err != nil {
		return c.sendStoreError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stateView(id, state)))
}

// @Summary Удаление формы оценки
// @Tags Оценка
// @Param   id          		path    string  				    	true         "ID формы"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/assessment/{id} [delete]
func (c *assessmentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = assessmentstore.Instance.Delete(id); err != nil {
		return c.sendStoreError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Изменение поля анкеты кандидата
// @Tags Оценка
// @Param   id          		path    string  				    	true         "ID формы"
// @Param	body body	 assessmentapimodels.CandidateFieldRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/assessment/{id}/candidate [put]
func (c *assessmentApiController) setCandidateField(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.CandidateFieldRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	value, err := payload.GetValue()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := assessmentstore.Instance.Update(id, func(s assessment.FormState) (assessment.FormState, error) {
		return assessment.SetCandidateField(s, payload.Field, value)
	})
	if err != nil {
		return c.sendStoreError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stateView(id, state)))
}

// @Summary Оценка ответа на вопрос
// @Tags Оценка
// @Param   id          		path    string  				    	true         "ID формы"
// @Param	body body	 assessmentapimodels.ScoreRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/assessment/{id}/score [put]
func (c *assessmentApiController) setScore(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.ScoreRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := assessmentstore.Instance.Update(id, func(s assessment.FormState) (assessment.FormState, error) {
		return assessment.SetScore(s, payload.Section, payload.Question, payload.Score)
	})
	if err != nil {
		return c.sendStoreError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stateView(id, state)))
}

// @Summary Заметка к ответу на вопрос
// @Tags Оценка
// @Param   id          		path    string  				    	true         "ID формы"
// @Param	body body	 assessmentapimodels.NoteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/assessment/{id}/note [put]
func (c *assessmentApiController) setNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.NoteRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := assessmentstore.Instance.Update(id, func(s assessment.FormState) (assessment.FormState, error) {
		return assessment.SetNote(s, payload.Section, payload.Question, payload.Text)
	})
	if err != nil {
		return c.sendStoreError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stateView(id, state)))
}

// @Summary Очистка формы оценки
// @Tags Оценка
// @Param   id          		path    string  				    	true         "ID формы"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StateView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/assessment/{id}/reset [post]
func (c *assessmentApiController) reset(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := assessmentstore.Instance.Update(id, func(s assessment.FormState) (assessment.FormState, error) {
		return assessment.Reset(s), nil
	})
	if err != nil {
		return c.sendStoreError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stateView(id, state)))
}

// @Summary Скачать отчёт оценки
// @Tags Оценка
// @Param   id          		path    string  				    	true         "ID формы"
// @Param   format          	query    string  				    	false         "json (по умолчанию), xlsx, pdf"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/report [get]
func (c *assessmentApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	format, err := export.ParseFormat(ctx.Query("format"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := assessmentstore.Instance.Get(id)
	if err != nil {
		return c.sendStoreError(ctx, err)
	}
	artifact, err := export.Build(format, c.title, state, catalog.Instance, time.Now())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчёта")
	}
	return c.SendArtifact(ctx, artifact)
}

func (c *assessmentApiController) sendStoreError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessmentstore.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, assessment.ErrUnknownQuestion),
		errors.Is(err, assessment.ErrUnknownField),
		errors.Is(err, assessment.ErrFieldType):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения формы оценки")
}

func stateView(id string, state assessment.FormState) assessmentapimodels.StateView {
	r := report.Generate(state, catalog.Instance)
	return assessmentapimodels.StateView{
		ID:         id,
		Candidate:  r.CandidateInfo,
		Sections:   r.AssessmentData,
		RatedCount: state.RatedCount(),
	}
}
