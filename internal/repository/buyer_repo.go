package repository

import (
	"context"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type BuyerRepository interface {
	FindAll(ctx context.Context) ([]model.Buyer, error)
	Create(ctx context.Context, buyer *model.Buyer) (*model.Buyer, error)
}

type buyerRepo struct {
	db *gorm.DB
}

func NewBuyerRepo(db *gorm.DB) BuyerRepository {
	return &buyerRepo{db}
}

func (r *buyerRepo) FindAll(ctx context.Context) ([]model.Buyer, error) {
	var buyers []model.Buyer
	err := r.db.WithContext(ctx).Find(&buyers).Error
	return buyers, err
}

func (r *buyerRepo) Create(ctx context.Context, buyer *model.Buyer) (*model.Buyer, error) {
	if err := r.db.WithContext(ctx).Create(buyer).Error; err != nil {
		return nil, translate(err)
	}
	var created model.Buyer
	if err := r.db.WithContext(ctx).First(&created, "object_id = ?", buyer.ObjectID).Error; err != nil {
		return nil, translate(err)
	}
	return &created, nil
}
