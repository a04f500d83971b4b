package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Загрузка файла
// @Description Загружает изображение или файл материала в хранилище и возвращает публичный URL
// @Tags Загрузки
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Файл"
// @Success 200 {object} successResponseBody "URL загруженного файла"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/uploads [post]
func (h *Handler) uploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
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

	url, err := h.services.Upload.Upload(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"url": url,
	})
}
