package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"kucukaslan/timeapp/domain"
)

type fakeStore struct {
	mu         sync.Mutex
	connected  bool
	readyErr   error
	users      map[string]*domain.User
	nextID     int64
	counter    int64
	counterErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{connected: true, users: map[string]*domain.User{}}
}

func (f *fakeStore) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeStore) Ready(context.Context) error {
	if f.readyErr != nil {
		return f.readyErr
	}
	if !f.Connected() {
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (f *fakeStore) CreateUser(_ context.Context, email, passwordHash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(email)
	if _, ok := f.users[email]; ok {
		return 0, domain.ErrEmailTaken
	}
	f.nextID++
	f.users[email] = &domain.User{ID: f.nextID, Email: email, PasswordHash: passwordHash}
	return f.nextID, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeStore) IncrementSiteCounter(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counterErr != nil {
		return f.counterErr
	}
	f.counter++
	return nil
}

func (f *fakeStore) GetSiteCounter(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counterErr != nil {
		return 0, f.counterErr
	}
	return f.counter, nil
}

type fakeCache struct {
	connected bool
	value     int64
	stored    bool
	err       error
}

func (f *fakeCache) Connected() bool { return f.connected }

func (f *fakeCache) IncrVisits(context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.value++
	f.stored = true
	return f.value, nil
}

func (f *fakeCache) GetVisits(context.Context) (int64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	return f.value, f.stored, nil
}

type fakeRecorder struct {
	events []domain.VisitEvent
	err    error
}

func (f *fakeRecorder) Enqueue(event domain.VisitEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fakeAnalytics struct {
	metrics []domain.VisitMetric
	last    domain.VisitMetricRequest
}

func (f *fakeAnalytics) GetVisitMetrics(_ context.Context, request domain.VisitMetricRequest) ([]domain.VisitMetric, error) {
	f.last = request
	return f.metrics, nil
}

var errBackend = errors.New("backend down")
