package repository

import (
	"context"
	"time"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type EquipmentRepository interface {
	FindAll(ctx context.Context) ([]model.Equipment, error)
	FindByID(ctx context.Context, id uint) (*model.Equipment, error)
	FindBySerial(ctx context.Context, serial string) (*model.Equipment, error)
	Create(ctx context.Context, equipment *model.Equipment) (*model.Equipment, error)
	Update(ctx context.Context, equipment *model.Equipment) (*model.Equipment, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type equipmentRepo struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) EquipmentRepository {
	return &equipmentRepo{db}
}

func (r *equipmentRepo) FindAll(ctx context.Context) ([]model.Equipment, error) {
	var items []model.Equipment
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *equipmentRepo) FindByID(ctx context.Context, id uint) (*model.Equipment, error) {
	var item model.Equipment
	if err := r.db.WithContext(ctx).First(&item, "object_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *equipmentRepo) FindBySerial(ctx context.Context, serial string) (*model.Equipment, error) {
	var item model.Equipment
	if err := r.db.WithContext(ctx).First(&item, "serial_number = ?", serial).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *equipmentRepo) Create(ctx context.Context, equipment *model.Equipment) (*model.Equipment, error) {
	if err := r.db.WithContext(ctx).Create(equipment).Error; err != nil {
		return nil, translate(err)
	}
	return r.FindByID(ctx, equipment.ObjectID)
}

func (r *equipmentRepo) Update(ctx context.Context, equipment *model.Equipment) (*model.Equipment, error) {
	res := r.db.WithContext(ctx).Model(&model.Equipment{}).
		Where("object_id = ?", equipment.ObjectID).
		Updates(map[string]interface{}{
			"name":             equipment.Name,
			"model":            equipment.Model,
			"serial_number":    equipment.SerialNumber,
			"storage_location": equipment.StorageLocation,
			"qty":              equipment.Qty,
			"updated_at":       time.Now(),
		})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, equipment.ObjectID)
}

func (r *equipmentRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("object_id = ?", id).Delete(&model.Equipment{})
	return res.RowsAffected, res.Error
}
