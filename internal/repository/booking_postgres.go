package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vitrina/internal/domain"
)

// ErrSlotTaken возвращается, когда запрошенный интервал пересекается
// с активной (pending/confirmed) заявкой.
var ErrSlotTaken = errors.New("выбранный слот времени уже занят")

type BookingRepo struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{
		db: db,
	}
}

// Create выполняет проверку пересечения и вставку в одной транзакции.
// Консультативная блокировка по дате сериализует конкурентные заявки
// на один день, закрывая гонку "проверил-вставил".
func (r *BookingRepo) Create(ctx context.Context, booking domain.Booking) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	dateStr := booking.BookingDate.Format("2006-01-02")

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('bookings:' || $1))`, dateStr)
	if err != nil {
		return 0, fmt.Errorf("ошибка блокировки даты: %w", err)
	}

	checkQuery := `
		SELECT booking_time, duration_minutes
		FROM bookings
		WHERE booking_date = $1
		AND status IN ('pending', 'confirmed')
	`

	rows, err := tx.Query(ctx, checkQuery, booking.BookingDate)
	if err != nil {
		return 0, fmt.Errorf("ошибка проверки доступности слота: %w", err)
	}

	newStart, err := minutesOfDay(booking.BookingTime)
	if err != nil {
		rows.Close()
		return 0, fmt.Errorf("неверное время заявки: %w", err)
	}
	newEnd := newStart + booking.DurationMinutes

	conflict := false
	for rows.Next() {
		var busyTime string
		var busyDuration int
		if err := rows.Scan(&busyTime, &busyDuration); err != nil {
			rows.Close()
			return 0, fmt.Errorf("ошибка сканирования занятых слотов: %w", err)
		}

		busyStart, err := minutesOfDay(busyTime)
		if err != nil {
			continue
		}

		// Полуоткрытые интервалы: [a, b) и [c, d) пересекаются, если a < d и c < b.
		if newStart < busyStart+busyDuration && busyStart < newEnd {
			conflict = true
		}
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	if conflict {
		return 0, ErrSlotTaken
	}

	query := `
		INSERT INTO bookings (name, email, phone, offering_id, booking_date, booking_time, duration_minutes, status, message, confirmation_token, reminder_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRow(ctx, query,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.OfferingID,
		booking.BookingDate,
		booking.BookingTime,
		booking.DurationMinutes,
		booking.Status,
		booking.Message,
		booking.ConfirmationToken,
		booking.ReminderSent,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания заявки: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return id, nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := bookingSelect + ` WHERE b.id = $1`

	booking, err := r.scanBookingRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("заявка не найдена")
		}
		return nil, fmt.Errorf("ошибка получения заявки: %w", err)
	}

	return booking, nil
}

func (r *BookingRepo) GetByConfirmationToken(ctx context.Context, token string) (*domain.Booking, error) {
	query := bookingSelect + ` WHERE b.confirmation_token = $1`

	booking, err := r.scanBookingRow(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("заявка не найдена")
		}
		return nil, fmt.Errorf("ошибка получения заявки: %w", err)
	}

	return booking, nil
}

func (r *BookingRepo) Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error {
	query := `UPDATE bookings SET updated_at = $1`
	args := []interface{}{time.Now()}
	argPos := 2

	if dto.Status != nil {
		query += fmt.Sprintf(", status = $%d", argPos)
		args = append(args, *dto.Status)
		argPos++
	}

	if dto.ReminderSent != nil {
		query += fmt.Sprintf(", reminder_sent = $%d", argPos)
		args = append(args, *dto.ReminderSent)
		argPos++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления заявки: %w", err)
	}

	return nil
}

func (r *BookingRepo) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	countQuery := `SELECT COUNT(*) FROM bookings b WHERE 1=1`
	selectQuery := bookingSelect + ` WHERE 1=1`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.Status != nil {
		conditions += fmt.Sprintf(" AND b.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.StartDate != nil {
		conditions += fmt.Sprintf(" AND b.booking_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions += fmt.Sprintf(" AND b.booking_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	selectQuery += fmt.Sprintf(" ORDER BY b.booking_date DESC, b.booking_time DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args[:argPos-1]...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества заявок: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := r.scanBookingRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки заявки: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	return bookings, total, nil
}

func (r *BookingRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	query := bookingSelect + `
		WHERE b.booking_date = $1
		AND b.status IN ('pending', 'confirmed')
		ORDER BY b.booking_time
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения заявок на дату: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := r.scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки заявки: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return bookings, nil
}

const bookingSelect = `
	SELECT b.id, b.name, b.email, b.phone, b.offering_id, b.booking_date, b.booking_time, b.duration_minutes, b.status, b.message, b.confirmation_token, b.reminder_sent, b.created_at, b.updated_at,
	       COALESCE(o.name, '') AS offering_name
	FROM bookings b
	LEFT JOIN offerings o ON b.offering_id = o.id
`

func (r *BookingRepo) scanBookingRow(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.OfferingID,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.Message,
		&booking.ConfirmationToken,
		&booking.ReminderSent,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.OfferingName,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func minutesOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
