package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/internal/domain"
	"vitrina/internal/service"
)

// @Summary Свободные слоты
// @Description Возвращает список свободного времени для записи на указанную дату
// @Tags Бронирование
// @Produce json
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Success 200 {array} string "Слоты в формате HH:MM"
// @Failure 400 {object} errorResponseBody "Неверный формат даты"
// @Router /booking/available-slots [get]
func (h *Handler) getAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "не указана дата")
		return
	}

	slots, err := h.services.Booking.GetAvailableSlots(c.Request.Context(), date)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Создание заявки
// @Description Создаёт заявку на консультацию и отправляет письмо для подтверждения
// @Tags Бронирование
// @Accept json
// @Produce json
// @Param input body domain.CreateBookingDTO true "Данные заявки"
// @Success 201 {object} successResponseBody "ID созданной заявки"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 409 {object} errorResponseBody "Слот уже занят"
// @Failure 429 {object} errorResponseBody "Слишком много запросов"
// @Router /booking [post]
func (h *Handler) createBooking(c *gin.Context) {
	var input domain.CreateBookingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Booking.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrSlotUnavailable) {
			errorResponse(c, http.StatusConflict, err.Error())
			return
		}
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Подтверждение заявки
// @Description Подтверждает заявку по токену из письма
// @Tags Бронирование
// @Produce json
// @Param token path string true "Токен подтверждения"
// @Success 200 {object} domain.Booking "Подтверждённая заявка"
// @Failure 404 {object} errorResponseBody "Заявка не найдена"
// @Router /booking/confirm/{token} [get]
func (h *Handler) confirmBooking(c *gin.Context) {
	token := c.Param("token")

	booking, err := h.services.Booking.Confirm(c.Request.Context(), token)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Список заявок
// @Tags Бронирование
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Статус заявки"
// @Param date_from query string false "Начало периода (YYYY-MM-DD)"
// @Param date_to query string false "Конец периода (YYYY-MM-DD)"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Заявки"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /admin/bookings [get]
func (h *Handler) getBookings(c *gin.Context) {
	var status *domain.BookingStatus
	if statusStr := c.Query("status"); statusStr != "" {
		bookingStatus := domain.BookingStatus(statusStr)
		status = &bookingStatus
	}

	var startDate *time.Time
	if dateFrom := c.Query("date_from"); dateFrom != "" {
		parsed, err := time.Parse("2006-01-02", dateFrom)
		if err == nil {
			startDate = &parsed
		}
	}

	var endDate *time.Time
	if dateTo := c.Query("date_to"); dateTo != "" {
		parsed, err := time.Parse("2006-01-02", dateTo)
		if err == nil {
			endDate = &parsed
		}
	}

	limit, offset := parsePagination(c)

	filter := domain.BookingFilter{
		Status:    status,
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     limit,
		Offset:    offset,
	}

	bookings, total, err := h.services.Booking.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, bookings, total, page, limit)
}

// @Summary Заявка по ID
// @Tags Бронирование
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} domain.Booking "Заявка"
// @Failure 404 {object} errorResponseBody "Не найдена"
// @Router /admin/bookings/{id} [get]
func (h *Handler) getBookingByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	booking, err := h.services.Booking.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Обновление заявки
// @Description Меняет статус заявки (подтверждение, отмена, завершение)
// @Tags Бронирование
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID заявки"
// @Param input body domain.UpdateBookingDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Заявка обновлена"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /admin/bookings/{id} [put]
func (h *Handler) updateBooking(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateBookingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Booking.Update(c.Request.Context(), id, input); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "заявка обновлена")
}
