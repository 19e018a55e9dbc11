package handler

import (
	"context"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"

	"github.com/stretchr/testify/mock"
)

type mockProductService struct{ mock.Mock }

func (m *mockProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductService) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) GetByCategory(ctx context.Context, categoryCode string) ([]model.Product, error) {
	args := m.Called(ctx, categoryCode)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductService) Create(ctx context.Context, req *service.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) Update(ctx context.Context, req *service.UpdateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) Delete(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

type mockSaleService struct{ mock.Mock }

func (m *mockSaleService) GetAll(ctx context.Context) ([]model.SoldProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.SoldProduct), args.Error(1)
}

func (m *mockSaleService) Sell(ctx context.Context, req *service.SellRequest) (*service.SaleResult, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*service.SaleResult)
	return r, args.Error(1)
}

func (m *mockSaleService) UpdatePaymentDetails(ctx context.Context, req *service.PaymentUpdateRequest) (*service.PaymentUpdateResult, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*service.PaymentUpdateResult)
	return r, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetAll(ctx context.Context) ([]model.UserResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.UserResponse), args.Error(1)
}

func (m *mockUserService) Create(ctx context.Context, req *service.UserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*model.UserResponse)
	return u, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, req *service.UserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*model.UserResponse)
	return u, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, number, userCode string) (int64, error) {
	args := m.Called(ctx, number, userCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserService) SeedAdmin(ctx context.Context, number, password string) (bool, error) {
	args := m.Called(ctx, number, password)
	return args.Bool(0), args.Error(1)
}

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryService) GetByCode(ctx context.Context, code string) (*model.Category, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) Delete(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, number, password string) (*service.LoginResponse, error) {
	args := m.Called(ctx, number, password)
	r, _ := args.Get(0).(*service.LoginResponse)
	return r, args.Error(1)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*model.UserResponse, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(*model.UserResponse)
	return u, args.Error(1)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, number, oldPassword, newPassword string) error {
	return m.Called(ctx, number, oldPassword, newPassword).Error(0)
}
