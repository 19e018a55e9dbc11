package service

import (
	"context"
	"errors"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByCode(ctx context.Context, code string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, code string) (int64, error)
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *categoryService) GetByCode(ctx context.Context, code string) (*model.Category, error) {
	return s.categories.FindByCode(ctx, code)
}

// Create ignores any object_id or timestamps in the input; the store assigns them.
func (s *categoryService) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	category.BaseModel = model.BaseModel{}
	if err := validate(category); err != nil {
		return nil, err
	}

	existing, err := s.categories.FindByCode(ctx, category.Code)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrConflict
	}
	return s.categories.Create(ctx, category)
}

// Update renames the category identified by code.
func (s *categoryService) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := validate(category); err != nil {
		return nil, err
	}
	return s.categories.Update(ctx, category)
}

func (s *categoryService) Delete(ctx context.Context, code string) (int64, error) {
	return s.categories.Delete(ctx, code)
}
