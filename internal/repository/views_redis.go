package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewMarkers хранит в Redis отметки "сессия уже видела публикацию".
// Ключ живёт ограниченное время, после чего повторный просмотр
// засчитывается заново.
type ViewMarkers struct {
	rdb *redis.Client
}

func NewViewMarkerStore(rdb *redis.Client) *ViewMarkers {
	return &ViewMarkers{
		rdb: rdb,
	}
}

// MarkViewed возвращает true, если отметка поставлена впервые.
func (s *ViewMarkers) MarkViewed(ctx context.Context, slug, sessionKey string, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, viewKey(slug, sessionKey), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ошибка записи отметки просмотра: %w", err)
	}

	return ok, nil
}

func (s *ViewMarkers) Unmark(ctx context.Context, slug, sessionKey string) error {
	if err := s.rdb.Del(ctx, viewKey(slug, sessionKey)).Err(); err != nil {
		return fmt.Errorf("ошибка удаления отметки просмотра: %w", err)
	}

	return nil
}

func viewKey(slug, sessionKey string) string {
	return fmt.Sprintf("views:%s:%s", slug, sessionKey)
}
