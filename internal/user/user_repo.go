package user

import (
	"context"
	"sort"
	"sync"
	"time"

	usererrors "go-userreg/internal/user/errors"
)

// Repository is the sole owner of the user store. Every operation is
// safe for unbounded concurrent invocation; mutations are atomic with
// the uniqueness check they depend on, and reads never observe a
// half-applied record.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	users   map[int64]User
	nextID  int64
	latency time.Duration
	clock   func() time.Time
}

type RepositoryOption func(*memoryRepository)

// WithLatency makes every operation sleep before touching the store,
// simulating a remote backend. Zero disables the sleep.
func WithLatency(d time.Duration) RepositoryOption {
	return func(r *memoryRepository) { r.latency = d }
}

// WithClock overrides the timestamp source, used by tests.
func WithClock(clock func() time.Time) RepositoryOption {
	return func(r *memoryRepository) { r.clock = clock }
}

func NewMemoryRepository(opts ...RepositoryOption) Repository {
	r := &memoryRepository{
		users: make(map[int64]User),
		clock: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// simulate waits out the configured latency. The sleep happens before
// the lock is taken so slow backends do not serialize each other.
func (r *memoryRepository) simulate(ctx context.Context) error {
	if r.latency <= 0 {
		return nil
	}
	t := time.NewTimer(r.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *memoryRepository) List(ctx context.Context) ([]User, error) {
	if err := r.simulate(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	r.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// GetByID treats non-positive ids the same as absent ones.
func (r *memoryRepository) GetByID(ctx context.Context, id int64) (User, error) {
	if err := r.simulate(ctx); err != nil {
		return User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if id <= 0 || !ok {
		return User{}, usererrors.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryRepository) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	if err := r.simulate(ctx); err != nil {
		return User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	email := NormalizeEmail(req.Email)
	if r.emailExistsLocked(email, 0) {
		return User{}, usererrors.ErrDuplicateEmail
	}

	r.nextID++
	u := User{
		ID:          r.nextID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       email,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		Position:    req.Position,
		CreatedAt:   r.clock(),
		IsActive:    true,
	}

	r.users[u.ID] = u
	return u, nil
}

func (r *memoryRepository) Update(ctx context.Context, id int64, req UpdateUserRequest) (User, error) {
	if err := r.simulate(ctx); err != nil {
		return User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, usererrors.ErrUserNotFound
	}

	// Names and email only overwrite when non-blank.
	if req.FirstName != nil && *req.FirstName != "" {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		u.LastName = *req.LastName
	}
	if req.Email != nil && *req.Email != "" {
		email := NormalizeEmail(*req.Email)
		if email != u.Email {
			if r.emailExistsLocked(email, id) {
				return User{}, usererrors.ErrDuplicateEmail
			}
			u.Email = email
		}
	}

	// Optional profile fields overwrite on presence, blank included.
	if req.PhoneNumber != nil {
		u.PhoneNumber = *req.PhoneNumber
	}
	if req.Department != nil {
		u.Department = *req.Department
	}
	if req.Position != nil {
		u.Position = *req.Position
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	now := r.clock()
	u.UpdatedAt = &now

	r.users[id] = u
	return u, nil
}

// Delete reports whether the record existed; absence is a normal
// outcome, not an error.
func (r *memoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.simulate(ctx); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *memoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := r.simulate(ctx); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok, nil
}

// EmailExists reports whether another user already holds the email.
// excludeID skips a record, so an update to a user's own unchanged
// email does not collide with itself.
func (r *memoryRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	if err := r.simulate(ctx); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.emailExistsLocked(NormalizeEmail(email), excludeID), nil
}

// emailExistsLocked is the uniqueness check. Callers must hold the
// lock so check and insert stay atomic.
func (r *memoryRepository) emailExistsLocked(normalized string, excludeID int64) bool {
	for id, u := range r.users {
		if id == excludeID {
			continue
		}
		if u.Email == normalized {
			return true
		}
	}
	return false
}
