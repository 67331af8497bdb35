package apiv1

import (
	"interview-assessment/controllers"
	"interview-assessment/lib/catalog"
	apimodels "interview-assessment/models/api"

	"github.com/gofiber/fiber/v2"
)

type catalogApiController struct {
	controllers.BaseAPIController
}

func InitCatalogApiRouters(app *fiber.App) {
	controller := catalogApiController{}
	app.Get("catalog", controller.get)
}

// @Summary Каталог вопросов
// @Tags Каталог
// @Description Разделы и вопросы оценки в порядке вывода
// @Success 200 {object} apimodels.Response{data=[]catalog.Section}
// @router /api/v1/catalog [get]
func (c *catalogApiController) get(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(catalog.Instance.Sections()))
}
