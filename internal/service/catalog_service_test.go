package service

import (
	"context"
	"testing"
	"time"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate_Conflict(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	repo.On("FindByCode", ctx, "CAB").Return(&model.Category{Code: "CAB", Name: "Cables"}, nil)

	_, err := svc.Create(ctx, &model.Category{Code: "CAB", Name: "Other"})
	assert.ErrorIs(t, err, repository.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryCreateAndUpdate(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	repo.On("FindByCode", ctx, "CAB").Return(nil, repository.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(&model.Category{Code: "CAB", Name: "Cables"}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil, repository.ErrNotFound)

	created, err := svc.Create(ctx, &model.Category{Code: "CAB", Name: "Cables"})
	require.NoError(t, err)
	assert.Equal(t, "Cables", created.Name)

	_, err = svc.Update(ctx, &model.Category{Code: "NONE", Name: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Create(ctx, &model.Category{Name: "no code"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCategoryCreate_ResetsRowMetadata(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	repo.On("FindByCode", ctx, "CAB").Return(nil, repository.ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(c *model.Category) bool {
		return c.ObjectID == 0 && c.CreatedAt.IsZero() && c.UpdatedAt.IsZero()
	})).Return(&model.Category{BaseModel: model.BaseModel{ObjectID: 1}, Code: "CAB", Name: "Cables"}, nil)

	in := &model.Category{
		BaseModel: model.BaseModel{ObjectID: 7, CreatedAt: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)},
		Code:      "CAB",
		Name:      "Cables",
	}
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ObjectID)
	repo.AssertExpectations(t)
}

func TestEquipmentCreate_SerialConflict(t *testing.T) {
	repo := &mockEquipmentRepo{}
	svc := NewEquipmentService(repo)
	ctx := context.Background()

	repo.On("FindBySerial", ctx, "SN-1").Return(&model.Equipment{SerialNumber: "SN-1"}, nil)

	_, err := svc.Create(ctx, &EquipmentRequest{Name: "Drill", SerialNumber: "SN-1", Qty: 1})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestEquipmentUpdate(t *testing.T) {
	repo := &mockEquipmentRepo{}
	svc := NewEquipmentService(repo)
	ctx := context.Background()

	repo.On("Update", ctx, mock.MatchedBy(func(e *model.Equipment) bool {
		return e.ObjectID == 3 && e.StorageLocation == "Shelf B"
	})).Return(&model.Equipment{Name: "Drill", StorageLocation: "Shelf B"}, nil)

	updated, err := svc.Update(ctx, &EquipmentRequest{ID: 3, Name: "Drill", SerialNumber: "SN-1", StorageLocation: "Shelf B"})
	require.NoError(t, err)
	assert.Equal(t, "Shelf B", updated.StorageLocation)

	_, err = svc.Update(ctx, &EquipmentRequest{Name: "Drill", SerialNumber: "SN-1"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Update(ctx, &EquipmentRequest{ID: 3, Name: "Drill", SerialNumber: "SN-1", Qty: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTowerCreate_IgnoresID(t *testing.T) {
	repo := &mockTowerRepo{}
	svc := NewTowerService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(tw *model.Tower) bool {
		return tw.ObjectID == 0 && tw.Name == "T1"
	})).Return(&model.Tower{Name: "T1", Size: "L"}, nil)
	repo.On("Delete", ctx, uint(9)).Return(int64(0), nil)

	_, err := svc.Create(ctx, &TowerRequest{ID: 5, Name: "T1", Size: "L"})
	require.NoError(t, err)

	n, err := svc.Delete(ctx, 9)
	require.NoError(t, err)
	assert.Zero(t, n)
	repo.AssertExpectations(t)
}

func TestTowerCreate_NameConflict(t *testing.T) {
	repo := &mockTowerRepo{}
	svc := NewTowerService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrConflict)

	_, err := svc.Create(ctx, &TowerRequest{Name: "T1"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}
