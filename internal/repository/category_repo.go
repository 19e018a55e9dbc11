package repository

import (
	"context"
	"time"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByCode(ctx context.Context, code string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, code string) (int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByCode(ctx context.Context, code string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, translate(err)
	}
	var created model.Category
	if err := r.db.WithContext(ctx).First(&created, "object_id = ?", category.ObjectID).Error; err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("code = ?", category.Code).
		Updates(map[string]interface{}{"name": category.Name, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByCode(ctx, category.Code)
}

func (r *categoryRepo) Delete(ctx context.Context, code string) (int64, error) {
	res := r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Category{})
	return res.RowsAffected, res.Error
}
