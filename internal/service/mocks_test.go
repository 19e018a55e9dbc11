package service

import (
	"context"

	"go-warehouse-ws/internal/event"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) FindByCategory(ctx context.Context, categoryCode string) ([]model.Product, error) {
	args := m.Called(ctx, categoryCode)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) LockByCode(ctx context.Context, code string) (*model.Product, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) DecreaseCountIfEnough(ctx context.Context, code string, qty int) (bool, error) {
	args := m.Called(ctx, code, qty)
	return args.Bool(0), args.Error(1)
}

type mockSoldProductRepo struct{ mock.Mock }

func (m *mockSoldProductRepo) FindAll(ctx context.Context) ([]model.SoldProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.SoldProduct), args.Error(1)
}

func (m *mockSoldProductRepo) FindByID(ctx context.Context, id uint) (*model.SoldProduct, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*model.SoldProduct)
	return s, args.Error(1)
}

func (m *mockSoldProductRepo) Create(ctx context.Context, sale *model.SoldProduct) (int64, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSoldProductRepo) UpdatePaymentDetails(ctx context.Context, id uint, desc string, settlement decimal.Decimal) (bool, error) {
	args := m.Called(ctx, id, desc, settlement)
	return args.Bool(0), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByNumber(ctx context.Context, number string) (*model.User, error) {
	args := m.Called(ctx, number)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByIdentity(ctx context.Context, userCode, number string) (*model.User, error) {
	args := m.Called(ctx, userCode, number)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	return m.Called(ctx, id, hashedPassword).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, number, userCode string) (int64, error) {
	args := m.Called(ctx, number, userCode)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindByCode(ctx context.Context, code string) (*model.Category, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

type mockBuyerRepo struct{ mock.Mock }

func (m *mockBuyerRepo) FindAll(ctx context.Context) ([]model.Buyer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Buyer), args.Error(1)
}

func (m *mockBuyerRepo) Create(ctx context.Context, buyer *model.Buyer) (*model.Buyer, error) {
	args := m.Called(ctx, buyer)
	b, _ := args.Get(0).(*model.Buyer)
	return b, args.Error(1)
}

type mockEquipmentRepo struct{ mock.Mock }

func (m *mockEquipmentRepo) FindAll(ctx context.Context) ([]model.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) FindByID(ctx context.Context, id uint) (*model.Equipment, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*model.Equipment)
	return e, args.Error(1)
}

func (m *mockEquipmentRepo) FindBySerial(ctx context.Context, serial string) (*model.Equipment, error) {
	args := m.Called(ctx, serial)
	e, _ := args.Get(0).(*model.Equipment)
	return e, args.Error(1)
}

func (m *mockEquipmentRepo) Create(ctx context.Context, equipment *model.Equipment) (*model.Equipment, error) {
	args := m.Called(ctx, equipment)
	e, _ := args.Get(0).(*model.Equipment)
	return e, args.Error(1)
}

func (m *mockEquipmentRepo) Update(ctx context.Context, equipment *model.Equipment) (*model.Equipment, error) {
	args := m.Called(ctx, equipment)
	e, _ := args.Get(0).(*model.Equipment)
	return e, args.Error(1)
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// fakeTx runs fn against mock repositories and records whether the
// transaction would have committed.
type fakeTx struct {
	products  *mockProductRepo
	sold      *mockSoldProductRepo
	committed bool
}

func (f *fakeTx) Products() repository.ProductRepository         { return f.products }
func (f *fakeTx) SoldProducts() repository.SoldProductRepository { return f.sold }

func (f *fakeTx) WithinTx(ctx context.Context, fn func(r repository.TxRepos) error) error {
	if err := fn(f); err != nil {
		return err
	}
	f.committed = true
	return nil
}

type recorder struct{ events []event.Event }

func (r *recorder) Notify(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type mockTowerRepo struct{ mock.Mock }

func (m *mockTowerRepo) FindAll(ctx context.Context) ([]model.Tower, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Tower), args.Error(1)
}

func (m *mockTowerRepo) FindByID(ctx context.Context, id uint) (*model.Tower, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Tower)
	return t, args.Error(1)
}

func (m *mockTowerRepo) Create(ctx context.Context, tower *model.Tower) (*model.Tower, error) {
	args := m.Called(ctx, tower)
	t, _ := args.Get(0).(*model.Tower)
	return t, args.Error(1)
}

func (m *mockTowerRepo) Update(ctx context.Context, tower *model.Tower) (*model.Tower, error) {
	args := m.Called(ctx, tower)
	t, _ := args.Get(0).(*model.Tower)
	return t, args.Error(1)
}

func (m *mockTowerRepo) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
