package service

import (
	"context"
	"errors"
	"fmt"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

const (
	LoginSuccess  = "Success"
	LoginNoRecord = "No Record"
)

type AuthService interface {
	Login(ctx context.Context, number, password string) (*LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*model.UserResponse, error)
	ResetPassword(ctx context.Context, number, oldPassword, newPassword string) error
}

type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token,omitempty"`
}

type authService struct {
	users  repository.UserRepository
	tokens *jwt.Manager
	// compared against when the number is unknown so both paths cost one bcrypt check
	dummyHash []byte
}

func NewAuthService(users repository.UserRepository, tokens *jwt.Manager) AuthService {
	hash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return &authService{users: users, tokens: tokens, dummyHash: hash}
}

// Login never reports bad credentials as an error; the caller gets a
// "No Record" status instead. Errors are storage or signing failures.
func (s *authService) Login(ctx context.Context, number, password string) (*LoginResponse, error) {
	user, err := s.users.FindByNumber(ctx, number)
	if errors.Is(err, repository.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return &LoginResponse{Status: LoginNoRecord}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.CheckPassword(password) {
		return &LoginResponse{Status: LoginNoRecord}, nil
	}

	token, err := s.tokens.GenerateToken(jwt.Subject{
		ObjectID: user.ObjectID,
		Name:     user.Name,
		Number:   user.Number,
		UserCode: user.UserCode,
		Role:     user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Status: LoginSuccess, Token: token}, nil
}

// ValidateToken checks the signature and that the user still exists.
func (s *authService) ValidateToken(ctx context.Context, token string) (*model.UserResponse, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.ObjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	res := user.ToResponse()
	return &res, nil
}

func (s *authService) ResetPassword(ctx context.Context, number, oldPassword, newPassword string) error {
	user, err := s.users.FindByNumber(ctx, number)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(newPassword); err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	return s.users.UpdatePassword(ctx, user.ObjectID, user.Password)
}
