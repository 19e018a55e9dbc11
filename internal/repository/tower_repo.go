package repository

import (
	"context"
	"time"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type TowerRepository interface {
	FindAll(ctx context.Context) ([]model.Tower, error)
	FindByID(ctx context.Context, id uint) (*model.Tower, error)
	Create(ctx context.Context, tower *model.Tower) (*model.Tower, error)
	Update(ctx context.Context, tower *model.Tower) (*model.Tower, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type towerRepo struct {
	db *gorm.DB
}

func NewTowerRepo(db *gorm.DB) TowerRepository {
	return &towerRepo{db}
}

func (r *towerRepo) FindAll(ctx context.Context) ([]model.Tower, error) {
	var towers []model.Tower
	err := r.db.WithContext(ctx).Find(&towers).Error
	return towers, err
}

func (r *towerRepo) FindByID(ctx context.Context, id uint) (*model.Tower, error) {
	var tower model.Tower
	if err := r.db.WithContext(ctx).First(&tower, "object_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tower, nil
}

func (r *towerRepo) Create(ctx context.Context, tower *model.Tower) (*model.Tower, error) {
	if err := r.db.WithContext(ctx).Create(tower).Error; err != nil {
		return nil, translate(err)
	}
	return r.FindByID(ctx, tower.ObjectID)
}

// Update matches on object_id. Renaming onto an existing name is a conflict.
func (r *towerRepo) Update(ctx context.Context, tower *model.Tower) (*model.Tower, error) {
	res := r.db.WithContext(ctx).Model(&model.Tower{}).
		Where("object_id = ?", tower.ObjectID).
		Updates(map[string]interface{}{
			"name":       tower.Name,
			"size":       tower.Size,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, tower.ObjectID)
}

func (r *towerRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("object_id = ?", id).Delete(&model.Tower{})
	return res.RowsAffected, res.Error
}
