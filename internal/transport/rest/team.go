package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

const maxPhotoSize = 10 << 20 // 10 МБ

// @Summary Команда
// @Description Возвращает видимых сотрудников для страницы "О нас"
// @Tags Команда
// @Produce json
// @Success 200 {array} domain.TeamMember "Сотрудники"
// @Router /team [get]
func (h *Handler) getTeam(c *gin.Context) {
	members, err := h.services.Team.List(c.Request.Context(), true)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, members)
}

// @Summary Создание сотрудника
// @Tags Команда
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreateTeamMemberDTO true "Данные сотрудника"
// @Success 201 {object} successResponseBody "ID созданного сотрудника"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/team [post]
func (h *Handler) createTeamMember(c *gin.Context) {
	var input domain.CreateTeamMemberDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Team.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Все сотрудники
// @Tags Команда
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} domain.TeamMember "Сотрудники"
// @Router /admin/team [get]
func (h *Handler) getAllTeamMembers(c *gin.Context) {
	members, err := h.services.Team.List(c.Request.Context(), false)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, members)
}

// @Summary Сотрудник по ID
// @Tags Команда
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID сотрудника"
// @Success 200 {object} domain.TeamMember "Сотрудник"
// @Failure 404 {object} errorResponseBody "Не найден"
// @Router /admin/team/{id} [get]
func (h *Handler) getTeamMemberByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	member, err := h.services.Team.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, member)
}

// @Summary Обновление сотрудника
// @Tags Команда
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID сотрудника"
// @Param input body domain.UpdateTeamMemberDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Сотрудник обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/team/{id} [put]
func (h *Handler) updateTeamMember(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateTeamMemberDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Team.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "сотрудник обновлен")
}

// @Summary Удаление сотрудника
// @Tags Команда
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID сотрудника"
// @Success 204 {object} nil "Сотрудник удалён"
// @Router /admin/team/{id} [delete]
func (h *Handler) deleteTeamMember(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Team.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary Загрузка фотографии
// @Description Загружает фотографию сотрудника в хранилище
// @Tags Команда
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID сотрудника"
// @Param photo formData file true "Файл изображения"
// @Success 200 {object} messageResponseType "Фотография загружена"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/team/{id}/photo [post]
func (h *Handler) uploadTeamMemberPhoto(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		badRequestResponse(c, "файл не найден в запросе")
		return
	}

	if fileHeader.Size > maxPhotoSize {
		badRequestResponse(c, "файл слишком большой, максимум 10 МБ")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("ошибка открытия файла", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("ошибка чтения файла", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}

	if err := h.services.Team.UploadPhoto(c.Request.Context(), id, data, fileHeader.Filename); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "фотография загружена")
}
