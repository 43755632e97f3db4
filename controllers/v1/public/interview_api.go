package publicapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-bot-backend/controllers"
	summaryexport "hr-bot-backend/lib/export/summary"
	"hr-bot-backend/lib/interview"
	apimodels "hr-bot-backend/models/api"
	interviewapimodels "hr-bot-backend/models/api/interview"
)

type publicInterviewApiController struct {
	controllers.BaseAPIController
}

func InitPublicInterviewApiRouters(app *fiber.App) {
	controller := publicInterviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Post("", controller.start)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Post("message", controller.message)
			idRoute.Get("progress", controller.progress)
			idRoute.Get("summary", controller.summary)
			idRoute.Get("history", controller.history)
			idRoute.Get("export", controller.export)
			idRoute.Get("export/xlsx", controller.exportXlsx)
			idRoute.Delete("", controller.drop)
		})
	})
}

// @Summary Начало сессии скрининга
// @Tags Скрининг кандидата
// @Description Создание новой сессии, возвращает идентификатор и приветствие бота
// @Success 200 {object} apimodels.Response{data=interviewapimodels.StartView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview [post]
func (c *publicInterviewApiController) start(ctx *fiber.Ctx) error {
	resp, err := interview.Instance.Start()
	if err != nil {
		return c.SendError(ctx, log.WithField("api", "interview_start"), err, "Ошибка создания сессии скрининга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Реплика кандидата
// @Tags Скрининг кандидата
// @Description Обработка одной реплики кандидата, возвращает ответ бота и текущий этап
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Param	body body	 interviewapimodels.MessageRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ReplyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/message [post]
func (c *publicInterviewApiController) message(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.MessageRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := interview.Instance.Respond(id, payload.Message)
	if err != nil {
		return c.sendHandlerError(ctx, id, err, "Ошибка обработки реплики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Прогресс скрининга
// @Tags Скрининг кандидата
// @Description Текущий этап и процент прохождения, без изменения состояния
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ProgressView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/progress [get]
func (c *publicInterviewApiController) progress(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interview.Instance.Progress(id)
	if err != nil {
		return c.sendHandlerError(ctx, id, err, "Ошибка получения прогресса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сводка по кандидату
// @Tags Скрининг кандидата
// @Description Собранные данные кандидата на текущий момент, без изменения состояния
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.CandidateSummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/summary [get]
func (c *publicInterviewApiController) summary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interview.Instance.Summary(id)
	if err != nil {
		return c.sendHandlerError(ctx, id, err, "Ошибка получения сводки по кандидату")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Лог диалога
// @Tags Скрининг кандидата
// @Description История сообщений сессии в порядке добавления
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.HistoryItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/history [get]
func (c *publicInterviewApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interview.Instance.History(id)
	if err != nil {
		return c.sendHandlerError(ctx, id, err, "Ошибка получения лога диалога")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Итоговый документ
// @Tags Скрининг кандидата
// @Description Итоговый документ скрининга (json) для выгрузки
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} interviewapimodels.ExportDoc
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/export [get]
func (c *publicInterviewApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interview.Instance.Export(id)
	if err != nil {
		return c.sendHandlerError(ctx, id, err, "Ошибка формирования итогового документа")
	}
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+summaryexport.Instance.FileName(id, "json"))
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Итоговый документ (xlsx)
// @Tags Скрининг кандидата
// @Description Итоговый документ скрининга в формате xlsx
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/export/xlsx [get]
func (c *publicInterviewApiController) exportXlsx(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := interview.Instance.ExportXlsx(id)
	if err != nil {
		return c.sendHandlerError(ctx, id, err, "Ошибка формирования xlsx")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+summaryexport.Instance.FileName(id, "xlsx"))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Сброс сессии
// @Tags Скрининг кандидата
// @Description Отбрасывание сессии целиком, для начала нового скрининга
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/public/interview/{id} [delete]
func (c *publicInterviewApiController) drop(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	interview.Instance.Drop(id)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *publicInterviewApiController) sendHandlerError(ctx *fiber.Ctx, sessionID string, err error, hMsg string) error {
	if errors.Is(err, interview.ErrSessionNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	logger := log.WithField("session_id", sessionID)
	return c.SendError(ctx, logger, err, hMsg)
}
