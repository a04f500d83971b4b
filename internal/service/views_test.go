package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"vitrina/internal/domain"
)

type postRepoStub struct {
	post       *domain.Post
	getErr     error
	incErr     error
	increments int
}

func (s *postRepoStub) Create(ctx context.Context, dto domain.CreatePostDTO) (int64, error) {
	return 0, nil
}

func (s *postRepoStub) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return nil, errors.New("not found")
}

func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.post, nil
}

func (s *postRepoStub) Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error {
	return nil
}

func (s *postRepoStub) Delete(ctx context.Context, id int64) error { return nil }

func (s *postRepoStub) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	return nil, 0, nil
}

func (s *postRepoStub) IncrementViewCount(ctx context.Context, slug string) (int64, error) {
	if s.incErr != nil {
		return 0, s.incErr
	}
	s.increments++
	return s.post.ViewCount + int64(s.increments), nil
}

type markerStub struct {
	seen      map[string]bool
	markErr   error
	unmarked  int
	unmarkErr error
}

func newMarkerStub() *markerStub {
	return &markerStub{seen: map[string]bool{}}
}

func (s *markerStub) MarkViewed(ctx context.Context, slug, sessionKey string, ttl time.Duration) (bool, error) {
	if s.markErr != nil {
		return false, s.markErr
	}
	key := slug + ":" + sessionKey
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	return true, nil
}

func (s *markerStub) Unmark(ctx context.Context, slug, sessionKey string) error {
	if s.unmarkErr != nil {
		return s.unmarkErr
	}
	delete(s.seen, slug+":"+sessionKey)
	s.unmarked++
	return nil
}

func publishedPost(views int64) *domain.Post {
	return &domain.Post{ID: 1, Slug: "novosti", IsPublished: true, ViewCount: views}
}

func TestRegisterView_FirstView(t *testing.T) {
	posts := &postRepoStub{post: publishedPost(10)}
	svc := NewViewService(posts, newMarkerStub(), time.Hour, zap.NewNop())

	count, err := svc.RegisterView(context.Background(), "novosti", "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 11 {
		t.Errorf("expected count 11, got %d", count)
	}
	if posts.increments != 1 {
		t.Errorf("expected one increment, got %d", posts.increments)
	}
}

func TestRegisterView_RepeatViewNotCounted(t *testing.T) {
	posts := &postRepoStub{post: publishedPost(10)}
	svc := NewViewService(posts, newMarkerStub(), time.Hour, zap.NewNop())

	if _, err := svc.RegisterView(context.Background(), "novosti", "session-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, err := svc.RegisterView(context.Background(), "novosti", "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts.increments != 1 {
		t.Errorf("expected one increment for repeat view, got %d", posts.increments)
	}
	if count != 10 {
		t.Errorf("expected stored count 10 for repeat view, got %d", count)
	}
}

func TestRegisterView_DifferentSessionsCounted(t *testing.T) {
	posts := &postRepoStub{post: publishedPost(0)}
	svc := NewViewService(posts, newMarkerStub(), time.Hour, zap.NewNop())

	svc.RegisterView(context.Background(), "novosti", "session-1")
	svc.RegisterView(context.Background(), "novosti", "session-2")

	if posts.increments != 2 {
		t.Errorf("expected two increments, got %d", posts.increments)
	}
}

func TestRegisterView_UnpublishedPost(t *testing.T) {
	posts := &postRepoStub{post: &domain.Post{Slug: "chernovik", IsPublished: false}}
	svc := NewViewService(posts, newMarkerStub(), time.Hour, zap.NewNop())

	if _, err := svc.RegisterView(context.Background(), "chernovik", "session-1"); err == nil {
		t.Fatal("expected error for unpublished post")
	}
}

func TestRegisterView_MarkerErrorFailsOpen(t *testing.T) {
	posts := &postRepoStub{post: publishedPost(10)}
	markers := newMarkerStub()
	markers.markErr = errors.New("redis down")
	svc := NewViewService(posts, markers, time.Hour, zap.NewNop())

	count, err := svc.RegisterView(context.Background(), "novosti", "session-1")
	if err != nil {
		t.Fatalf("expected nil error on marker failure, got %v", err)
	}
	if count != 10 {
		t.Errorf("expected current count 10 without increment, got %d", count)
	}
	if posts.increments != 0 {
		t.Errorf("expected no increments, got %d", posts.increments)
	}
}

func TestRegisterView_IncrementErrorRollsBackMarker(t *testing.T) {
	posts := &postRepoStub{post: publishedPost(10), incErr: errors.New("db down")}
	markers := newMarkerStub()
	svc := NewViewService(posts, markers, time.Hour, zap.NewNop())

	count, err := svc.RegisterView(context.Background(), "novosti", "session-1")
	if err != nil {
		t.Fatalf("expected nil error on increment failure, got %v", err)
	}
	if count != 10 {
		t.Errorf("expected current count 10, got %d", count)
	}
	if markers.unmarked != 1 {
		t.Errorf("expected marker rollback, got %d unmarks", markers.unmarked)
	}
}
