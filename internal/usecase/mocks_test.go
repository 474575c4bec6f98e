package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/repo/cache"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/internal/repo/storage"
	"portfolio-api/pkg/logger"

	"github.com/stretchr/testify/mock"
)

var (
	_ persistent.PostRepository         = (*mockPostRepository)(nil)
	_ persistent.PostRepository         = (*memPostRepository)(nil)
	_ persistent.MediaRepository        = (*mockMediaRepository)(nil)
	_ persistent.MediaRepository        = (*memMediaRepository)(nil)
	_ persistent.ContactRepository      = (*mockContactRepository)(nil)
	_ persistent.SubscriptionRepository = (*mockSubscriptionRepository)(nil)
	_ persistent.SubscriptionRepository = (*memSubscriptionRepository)(nil)
	_ persistent.AdminRepository        = (*mockAdminRepository)(nil)
	_ storage.FileStorage               = (*mockFileStorage)(nil)
	_ EventPublisher                    = (*mockPublisher)(nil)
	_ ActivityFeed                      = (*mockActivityFeed)(nil)
	_ ActivityFeed                      = (*cache.NotificationStore)(nil)
)

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, slog.LevelDebug)
}

// Posts

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *mockPostRepository) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockPostRepository) Tags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// memPostRepository mirrors the SQL filter semantics in memory.
type memPostRepository struct {
	mu    sync.Mutex
	posts map[string]entity.Post
}

func newMemPostRepository() *memPostRepository {
	return &memPostRepository{posts: map[string]entity.Post{}}
}

func (r *memPostRepository) Create(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = clonePost(*post)
	return nil
}

func (r *memPostRepository) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := clonePost(p)
	return &cp, nil
}

func (r *memPostRepository) List(_ context.Context, f entity.PostFilter) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Post
	for _, p := range r.posts {
		if f.PublishedOnly && !p.Published {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Tag != "" && !containsString(p.Tags, f.Tag) {
			continue
		}
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Title), s) &&
				!strings.Contains(strings.ToLower(p.Content), s) &&
				!strings.Contains(strings.ToLower(p.Excerpt), s) {
				continue
			}
		}
		cp := clonePost(p)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Skip >= len(out) {
		return []*entity.Post{}, nil
	}
	out = out[f.Skip:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *memPostRepository) Update(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return entity.ErrNotFound
	}
	r.posts[post.ID] = clonePost(*post)
	return nil
}

func (r *memPostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range r.posts {
		if p.Published && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *memPostRepository) Tags(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range r.posts {
		if !p.Published {
			continue
		}
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func clonePost(p entity.Post) entity.Post {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Media

type mockMediaRepository struct {
	mock.Mock
}

func (m *mockMediaRepository) Create(ctx context.Context, rec *entity.MediaRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockMediaRepository) GetByID(ctx context.Context, id string) (*entity.MediaRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MediaRecord), args.Error(1)
}

func (m *mockMediaRepository) List(ctx context.Context, filter entity.MediaFilter) ([]*entity.MediaRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MediaRecord), args.Error(1)
}

func (m *mockMediaRepository) UpdateMetadata(ctx context.Context, rec *entity.MediaRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockMediaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type memMediaRepository struct {
	mu      sync.Mutex
	records map[string]entity.MediaRecord
}

func newMemMediaRepository() *memMediaRepository {
	return &memMediaRepository{records: map[string]entity.MediaRecord{}}
}

func (r *memMediaRepository) Create(_ context.Context, rec *entity.MediaRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = *rec
	return nil
}

func (r *memMediaRepository) GetByID(_ context.Context, id string) (*entity.MediaRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &rec, nil
}

func (r *memMediaRepository) List(_ context.Context, f entity.MediaFilter) ([]*entity.MediaRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MediaRecord
	for _, rec := range r.records {
		if f.FileType != "" && rec.FileType != f.FileType {
			continue
		}
		if f.Category != "" && rec.Category != f.Category {
			continue
		}
		cp := rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMediaRepository) UpdateMetadata(_ context.Context, rec *entity.MediaRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[rec.ID]
	if !ok {
		return entity.ErrNotFound
	}
	stored.Category = rec.Category
	stored.Description = rec.Description
	r.records[rec.ID] = stored
	return nil
}

func (r *memMediaRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, name, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// Contact, newsletter, admin

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockContactRepository) List(ctx context.Context, limit int) ([]*entity.ContactMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactMessage), args.Error(1)
}

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepository) List(ctx context.Context, limit int) ([]*entity.NewsletterSubscription, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterSubscription), args.Error(1)
}

// memSubscriptionRepository enforces email uniqueness like the store index.
type memSubscriptionRepository struct {
	mu      sync.Mutex
	byEmail map[string]entity.NewsletterSubscription
}

func newMemSubscriptionRepository() *memSubscriptionRepository {
	return &memSubscriptionRepository{byEmail: map[string]entity.NewsletterSubscription{}}
}

func (r *memSubscriptionRepository) Create(_ context.Context, sub *entity.NewsletterSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[sub.Email]; ok {
		return entity.ErrConflict
	}
	r.byEmail[sub.Email] = *sub
	return nil
}

func (r *memSubscriptionRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *memSubscriptionRepository) List(_ context.Context, _ int) ([]*entity.NewsletterSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.NewsletterSubscription, 0, len(r.byEmail))
	for _, s := range r.byEmail {
		cp := s
		out = append(out, &cp)
	}
	return out, nil
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminCredential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminCredential), args.Error(1)
}

func (m *mockAdminRepository) Upsert(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}

func (m *mockAdminRepository) DeleteExcept(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	args := m.Called(ctx, event, payload)
	return args.Error(0)
}

// Activity feed

type mockActivityFeed struct {
	mock.Mock
}

func (m *mockActivityFeed) Push(ctx context.Context, n *entity.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockActivityFeed) Recent(ctx context.Context, limit, offset int) ([]entity.Notification, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}
