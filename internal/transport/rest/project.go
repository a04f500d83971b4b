package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

// @Summary Список проектов
// @Description Возвращает опубликованные проекты и кейсы
// @Tags Портфолио
// @Produce json
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Проекты"
// @Router /projects [get]
func (h *Handler) getProjects(c *gin.Context) {
	limit, offset := parsePagination(c)

	projects, total, err := h.services.Project.List(c.Request.Context(), true, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, projects, total, page, limit)
}

// @Summary Проект по slug
// @Tags Портфолио
// @Produce json
// @Param slug path string true "Slug проекта"
// @Success 200 {object} domain.Project "Проект"
// @Failure 404 {object} errorResponseBody "Не найден"
// @Router /projects/{slug} [get]
func (h *Handler) getProjectBySlug(c *gin.Context) {
	slug := c.Param("slug")

	project, err := h.services.Project.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	if !project.IsPublished {
		notFoundResponse(c, "проект не найден")
		return
	}

	successResponse(c, http.StatusOK, project)
}

// @Summary Создание проекта
// @Tags Портфолио
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateProjectDTO true "Данные проекта"
// @Success 201 {object} successResponseBody "ID созданного проекта"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/projects [post]
func (h *Handler) createProject(c *gin.Context) {
	var input domain.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Project.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Все проекты
// @Tags Портфолио
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Проекты"
// @Router /admin/projects [get]
func (h *Handler) getAllProjects(c *gin.Context) {
	limit, offset := parsePagination(c)

	projects, total, err := h.services.Project.List(c.Request.Context(), false, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, projects, total, page, limit)
}

// @Summary Проект по ID
// @Tags Портфолио
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} domain.Project "Проект"
// @Failure 404 {object} errorResponseBody "Не найден"
// @Router /admin/projects/{id} [get]
func (h *Handler) getProjectByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	project, err := h.services.Project.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, project)
}

// @Summary Обновление проекта
// @Tags Портфолио
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID проекта"
// @Param input body domain.UpdateProjectDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Проект обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/projects/{id} [put]
func (h *Handler) updateProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Project.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "проект обновлен")
}

// @Summary Удаление проекта
// @Tags Портфолио
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID проекта"
// @Success 204 {object} nil "Проект удалён"
// @Router /admin/projects/{id} [delete]
func (h *Handler) deleteProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Project.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}
