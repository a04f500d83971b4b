package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

// @Summary Видеогалерея
// @Description Возвращает опубликованные видео с превью
// @Tags Видео
// @Produce json
// @Success 200 {array} domain.Video "Видео"
// @Router /videos [get]
func (h *Handler) getVideos(c *gin.Context) {
	videos, err := h.services.Video.List(c.Request.Context(), true)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, videos)
}

// @Summary Добавление видео
// @Description Добавляет видео по ссылке YouTube или Vimeo
// @Tags Видео
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateVideoDTO true "Данные видео"
// @Success 201 {object} successResponseBody "ID созданного видео"
// @Failure 400 {object} errorResponseBody "Ссылка не распознана"
// @Router /admin/videos [post]
func (h *Handler) createVideo(c *gin.Context) {
	var input domain.CreateVideoDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Video.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Все видео
// @Tags Видео
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} domain.Video "Видео"
// @Router /admin/videos [get]
func (h *Handler) getAllVideos(c *gin.Context) {
	videos, err := h.services.Video.List(c.Request.Context(), false)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, videos)
}

// @Summary Видео по ID
// @Tags Видео
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID видео"
// @Success 200 {object} domain.Video "Видео"
// @Failure 404 {object} errorResponseBody "Не найдено"
// @Router /admin/videos/{id} [get]
func (h *Handler) getVideoByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	video, err := h.services.Video.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, video)
}

// @Summary Обновление видео
// @Tags Видео
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID видео"
// @Param input body domain.UpdateVideoDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Видео обновлено"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/videos/{id} [put]
func (h *Handler) updateVideo(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateVideoDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Video.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "видео обновлено")
}

// @Summary Удаление видео
// @Tags Видео
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID видео"
// @Success 204 {object} nil "Видео удалено"
// @Router /admin/videos/{id} [delete]
func (h *Handler) deleteVideo(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Video.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}
