package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

// @Summary Скачиваемые материалы
// @Description Возвращает опубликованные материалы
// @Tags Материалы
// @Produce json
// @Success 200 {array} domain.Resource "Материалы"
// @Router /resources [get]
func (h *Handler) getResources(c *gin.Context) {
	resources, err := h.services.Resource.List(c.Request.Context(), true)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, resources)
}

// @Summary Скачивание материала
// @Description Учитывает скачивание и перенаправляет на файл
// @Tags Материалы
// @Produce json
// @Param id path int true "ID материала"
// @Success 302 {object} nil "Перенаправление на файл"
// @Failure 404 {object} errorResponseBody "Материал не найден"
// @Router /resources/{id}/download [get]
func (h *Handler) downloadResource(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	url, err := h.services.Resource.RegisterDownload(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	c.Redirect(http.StatusFound, url)
}

// @Summary Создание материала
// @Tags Материалы
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateResourceDTO true "Данные материала"
// @Success 201 {object} successResponseBody "ID созданного материала"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/resources [post]
func (h *Handler) createResource(c *gin.Context) {
	var input domain.CreateResourceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Resource.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Все материалы
// @Tags Материалы
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} domain.Resource "Материалы"
// @Router /admin/resources [get]
func (h *Handler) getAllResources(c *gin.Context) {
	resources, err := h.services.Resource.List(c.Request.Context(), false)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, resources)
}

// @Summary Материал по ID
// @Tags Материалы
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID материала"
// @Success 200 {object} domain.Resource "Материал"
// @Failure 404 {object} errorResponseBody "Не найден"
// @Router /admin/resources/{id} [get]
func (h *Handler) getResourceByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	resource, err := h.services.Resource.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, resource)
}

// @Summary Обновление материала
// @Tags Материалы
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID материала"
// @Param input body domain.UpdateResourceDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Материал обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/resources/{id} [put]
func (h *Handler) updateResource(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateResourceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Resource.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "материал обновлен")
}

// @Summary Удаление материала
// @Tags Материалы
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID материала"
// @Success 204 {object} nil "Материал удалён"
// @Router /admin/resources/{id} [delete]
func (h *Handler) deleteResource(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Resource.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}
