package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"vitrina/internal/repository"
)

type ViewServiceImpl struct {
	postRepo repository.PostRepository
	markers  repository.ViewMarkerStore
	ttl      time.Duration
	logger   *zap.Logger
}

func NewViewService(postRepo repository.PostRepository, markers repository.ViewMarkerStore, ttl time.Duration, logger *zap.Logger) *ViewServiceImpl {
	return &ViewServiceImpl{
		postRepo: postRepo,
		markers:  markers,
		ttl:      ttl,
		logger:   logger,
	}
}

// RegisterView засчитывает просмотр публикации не чаще одного раза
// на сессию в пределах TTL и возвращает актуальный счётчик.
func (s *ViewServiceImpl) RegisterView(ctx context.Context, slug, sessionKey string) (int64, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return 0, errors.New("публикация не найдена")
	}

	if !post.IsPublished {
		return 0, errors.New("публикация не найдена")
	}

	firstView, err := s.markers.MarkViewed(ctx, slug, sessionKey, s.ttl)
	if err != nil {
		// Недоступный Redis не должен ломать страницу: отдаём текущее
		// значение без инкремента.
		s.logger.Error("ошибка проверки отметки просмотра",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return post.ViewCount, nil
	}

	if !firstView {
		return post.ViewCount, nil
	}

	count, err := s.postRepo.IncrementViewCount(ctx, slug)
	if err != nil {
		s.logger.Error("ошибка инкремента счётчика просмотров",
			zap.String("slug", slug),
			zap.Error(err),
		)

		// Отметку снимаем, чтобы следующий запрос этой сессии мог
		// засчитать просмотр.
		if err := s.markers.Unmark(ctx, slug, sessionKey); err != nil {
			s.logger.Warn("не удалось снять отметку просмотра",
				zap.String("slug", slug),
				zap.Error(err),
			)
		}

		return post.ViewCount, nil
	}

	return count, nil
}
