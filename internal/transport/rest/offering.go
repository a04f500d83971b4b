package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

// @Summary Список услуг
// @Description Возвращает опубликованные услуги для страницы записи
// @Tags Услуги
// @Produce json
// @Success 200 {array} domain.Offering "Услуги"
// @Router /offerings [get]
func (h *Handler) getOfferings(c *gin.Context) {
	offerings, err := h.services.Offering.List(c.Request.Context(), true)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, offerings)
}

// @Summary Создание услуги
// @Tags Услуги
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateOfferingDTO true "Данные услуги"
// @Success 201 {object} successResponseBody "ID созданной услуги"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/offerings [post]
func (h *Handler) createOffering(c *gin.Context) {
	var input domain.CreateOfferingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Offering.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Все услуги
// @Tags Услуги
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} domain.Offering "Услуги"
// @Router /admin/offerings [get]
func (h *Handler) getAllOfferings(c *gin.Context) {
	offerings, err := h.services.Offering.List(c.Request.Context(), false)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, offerings)
}

// @Summary Услуга по ID
// @Tags Услуги
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID услуги"
// @Success 200 {object} domain.Offering "Услуга"
// @Failure 404 {object} errorResponseBody "Не найдена"
// @Router /admin/offerings/{id} [get]
func (h *Handler) getOfferingByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	offering, err := h.services.Offering.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, offering)
}

// @Summary Обновление услуги
// @Tags Услуги
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID услуги"
// @Param input body domain.UpdateOfferingDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Услуга обновлена"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/offerings/{id} [put]
func (h *Handler) updateOffering(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateOfferingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Offering.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "услуга обновлена")
}

// @Summary Удаление услуги
// @Tags Услуги
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID услуги"
// @Success 204 {object} nil "Услуга удалена"
// @Router /admin/offerings/{id} [delete]
func (h *Handler) deleteOffering(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Offering.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}
