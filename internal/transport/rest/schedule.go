package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

// @Summary Создание окна расписания
// @Description Добавляет интервал доступного времени для дня недели
// @Tags Расписание
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateTimeSlotWindowDTO true "Данные окна"
// @Success 201 {object} successResponseBody "ID созданного окна"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/schedule [post]
func (h *Handler) createTimeSlotWindow(c *gin.Context) {
	var input domain.CreateTimeSlotWindowDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Schedule.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Расписание
// @Description Возвращает все окна доступности по дням недели
// @Tags Расписание
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} domain.TimeSlotWindow "Окна расписания"
// @Router /admin/schedule [get]
func (h *Handler) getTimeSlotWindows(c *gin.Context) {
	windows, err := h.services.Schedule.List(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, windows)
}

// @Summary Окно расписания по ID
// @Tags Расписание
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID окна"
// @Success 200 {object} domain.TimeSlotWindow "Окно расписания"
// @Failure 404 {object} errorResponseBody "Не найдено"
// @Router /admin/schedule/{id} [get]
func (h *Handler) getTimeSlotWindowByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	window, err := h.services.Schedule.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, window)
}

// @Summary Обновление окна расписания
// @Tags Расписание
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID окна"
// @Param input body domain.UpdateTimeSlotWindowDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Окно обновлено"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/schedule/{id} [put]
func (h *Handler) updateTimeSlotWindow(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateTimeSlotWindowDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Schedule.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "окно расписания обновлено")
}

// @Summary Удаление окна расписания
// @Tags Расписание
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID окна"
// @Success 204 {object} nil "Окно удалено"
// @Router /admin/schedule/{id} [delete]
func (h *Handler) deleteTimeSlotWindow(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Schedule.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}
