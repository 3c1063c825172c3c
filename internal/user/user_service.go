package user

import (
	"context"

	"go.uber.org/zap"

	"go-userreg/internal/shared/contextutil"
)

type Service interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	l := contextutil.GetLogger(ctx, nil)

	l.Info("creating user",
		zap.String("email", NormalizeEmail(req.Email)),
	)

	u, err := s.repo.Create(ctx, req)
	if err != nil {
		l.Warn("create user rejected", zap.Error(err))
		return User{}, err
	}

	l.Info("user created", zap.Int64("user_id", u.ID))
	return u, nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateUserRequest) (User, error) {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		l.Warn("update user rejected", zap.Int64("user_id", id), zap.Error(err))
		return User{}, err
	}

	l.Info("user updated", zap.Int64("user_id", id))
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	l := contextutil.GetLogger(ctx, nil)

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	l.Info("user delete processed",
		zap.Int64("user_id", id),
		zap.Bool("found", found),
	)
	return found, nil
}

func (s *service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
