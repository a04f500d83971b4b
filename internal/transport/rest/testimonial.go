package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

// @Summary Отзывы клиентов
// @Description Возвращает опубликованные отзывы
// @Tags Отзывы
// @Produce json
// @Success 200 {array} domain.Testimonial "Отзывы"
// @Router /testimonials [get]
func (h *Handler) getTestimonials(c *gin.Context) {
	testimonials, err := h.services.Testimonial.List(c.Request.Context(), true)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, testimonials)
}

// @Summary Создание отзыва
// @Tags Отзывы
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateTestimonialDTO true "Данные отзыва"
// @Success 201 {object} successResponseBody "ID созданного отзыва"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/testimonials [post]
func (h *Handler) createTestimonial(c *gin.Context) {
	var input domain.CreateTestimonialDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Testimonial.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Все отзывы
// @Tags Отзывы
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} domain.Testimonial "Отзывы"
// @Router /admin/testimonials [get]
func (h *Handler) getAllTestimonials(c *gin.Context) {
	testimonials, err := h.services.Testimonial.List(c.Request.Context(), false)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, testimonials)
}

// @Summary Отзыв по ID
// @Tags Отзывы
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID отзыва"
// @Success 200 {object} domain.Testimonial "Отзыв"
// @Failure 404 {object} errorResponseBody "Не найден"
// @Router /admin/testimonials/{id} [get]
func (h *Handler) getTestimonialByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	testimonial, err := h.services.Testimonial.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, testimonial)
}

// @Summary Обновление отзыва
// @Tags Отзывы
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID отзыва"
// @Param input body domain.UpdateTestimonialDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Отзыв обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/testimonials/{id} [put]
func (h *Handler) updateTestimonial(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateTestimonialDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Testimonial.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "отзыв обновлен")
}

// @Summary Удаление отзыва
// @Tags Отзывы
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID отзыва"
// @Success 204 {object} nil "Отзыв удалён"
// @Router /admin/testimonials/{id} [delete]
func (h *Handler) deleteTestimonial(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Testimonial.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}
