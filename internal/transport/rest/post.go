package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
)

// @Summary Список публикаций
// @Description Возвращает опубликованные записи блога
// @Tags Блог
// @Produce json
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Публикации"
// @Router /posts [get]
func (h *Handler) getPosts(c *gin.Context) {
	limit, offset := parsePagination(c)

	filter := domain.PostFilter{
		PublishedOnly: true,
		Limit:         limit,
		Offset:        offset,
	}

	posts, total, err := h.services.Post.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, posts, total, page, limit)
}

// @Summary Публикация по slug
// @Tags Блог
// @Produce json
// @Param slug path string true "Slug публикации"
// @Success 200 {object} domain.Post "Публикация"
// @Failure 404 {object} errorResponseBody "Не найдена"
// @Router /posts/{slug} [get]
func (h *Handler) getPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.services.Post.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	if !post.IsPublished {
		notFoundResponse(c, "публикация не найдена")
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary Засчитать просмотр
// @Description Учитывает просмотр публикации не чаще одного раза на сессию
// @Tags Блог
// @Produce json
// @Param slug path string true "Slug публикации"
// @Param X-Session-ID header string false "Идентификатор сессии посетителя"
// @Success 200 {object} successResponseBody "Актуальный счётчик просмотров"
// @Failure 404 {object} errorResponseBody "Публикация не найдена"
// @Failure 429 {object} errorResponseBody "Слишком много запросов"
// @Router /posts/{slug}/views [post]
func (h *Handler) registerPostView(c *gin.Context) {
	slug := c.Param("slug")

	count, err := h.services.View.RegisterView(c.Request.Context(), slug, sessionKey(c))
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"view_count": count,
	})
}

// @Summary Создание публикации
// @Tags Блог
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body domain.CreatePostDTO true "Данные публикации"
// @Success 201 {object} successResponseBody "ID созданной публикации"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/posts [post]
func (h *Handler) createPost(c *gin.Context) {
	var input domain.CreatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Все публикации
// @Description Возвращает публикации включая черновики
// @Tags Блог
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Публикации"
// @Router /admin/posts [get]
func (h *Handler) getAllPosts(c *gin.Context) {
	limit, offset := parsePagination(c)

	filter := domain.PostFilter{
		PublishedOnly: false,
		Limit:         limit,
		Offset:        offset,
	}

	posts, total, err := h.services.Post.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, posts, total, page, limit)
}

// @Summary Публикация по ID
// @Tags Блог
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID публикации"
// @Success 200 {object} domain.Post "Публикация"
// @Failure 404 {object} errorResponseBody "Не найдена"
// @Router /admin/posts/{id} [get]
func (h *Handler) getPostByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	post, err := h.services.Post.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary Обновление публикации
// @Tags Блог
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID публикации"
// @Param input body domain.UpdatePostDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Публикация обновлена"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/posts/{id} [put]
func (h *Handler) updatePost(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Post.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "публикация обновлена")
}

// @Summary Удаление публикации
// @Tags Блог
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID публикации"
// @Success 204 {object} nil "Публикация удалена"
// @Router /admin/posts/{id} [delete]
func (h *Handler) deletePost(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}
