package service

import (
	"context"
	"errors"
	"fmt"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

type UserService interface {
	GetAll(ctx context.Context) ([]model.UserResponse, error)
	Create(ctx context.Context, req *UserRequest) (*model.UserResponse, error)
	Update(ctx context.Context, req *UserRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, number, userCode string) (int64, error)
	SeedAdmin(ctx context.Context, number, password string) (bool, error)
}

// UserRequest is the body of /addUser and /updateUser. On update the row is
// matched by user_code and number.
type UserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Number   string `json:"number" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	UserCode string `json:"user_code" validate:"required,max=50"`
	Role     string `json:"role" validate:"required"`
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetAll(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]model.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, users[i].ToResponse())
	}
	return res, nil
}

func (s *userService) build(req *UserRequest) (*model.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if !model.IsKnownRole(req.Role) {
		return nil, fmt.Errorf("%w: %w %q", ErrValidation, ErrUnknownRole, req.Role)
	}

	user := &model.User{
		Name:     req.Name,
		Number:   req.Number,
		UserCode: req.UserCode,
		Role:     req.Role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *UserRequest) (*model.UserResponse, error) {
	user, err := s.build(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByNumber(ctx, user.Number)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrConflict
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	res := created.ToResponse()
	return &res, nil
}

func (s *userService) Update(ctx context.Context, req *UserRequest) (*model.UserResponse, error) {
	user, err := s.build(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	res := updated.ToResponse()
	return &res, nil
}

func (s *userService) Delete(ctx context.Context, number, userCode string) (int64, error) {
	return s.users.Delete(ctx, number, userCode)
}

// SeedAdmin creates an admin account when no user exists yet. It reports
// whether a user was created.
func (s *userService) SeedAdmin(ctx context.Context, number, password string) (bool, error) {
	if number == "" || password == "" {
		return false, nil
	}

	n, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	admin := &model.User{
		Name:     "Administrator",
		Number:   number,
		UserCode: "ADMIN",
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.users.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
