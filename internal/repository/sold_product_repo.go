package repository

import (
	"context"
	"time"

	"go-warehouse-ws/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SoldProductRepository interface {
	FindAll(ctx context.Context) ([]model.SoldProduct, error)
	FindByID(ctx context.Context, id uint) (*model.SoldProduct, error)
	Create(ctx context.Context, sale *model.SoldProduct) (int64, error)
	UpdatePaymentDetails(ctx context.Context, id uint, desc string, settlement decimal.Decimal) (bool, error)
}

type soldProductRepo struct {
	db *gorm.DB
}

func NewSoldProductRepo(db *gorm.DB) SoldProductRepository {
	return &soldProductRepo{db}
}

func (r *soldProductRepo) FindAll(ctx context.Context) ([]model.SoldProduct, error) {
	var sales []model.SoldProduct
	err := r.db.WithContext(ctx).Find(&sales).Error
	return sales, err
}

func (r *soldProductRepo) FindByID(ctx context.Context, id uint) (*model.SoldProduct, error) {
	var sale model.SoldProduct
	if err := r.db.WithContext(ctx).First(&sale, "object_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sale, nil
}

// Create appends a sale record and reports the affected row count.
func (r *soldProductRepo) Create(ctx context.Context, sale *model.SoldProduct) (int64, error) {
	res := r.db.WithContext(ctx).Create(sale)
	return res.RowsAffected, translate(res.Error)
}

// UpdatePaymentDetails amends payment_details.desc and .settlement in place;
// every other field of the record is immutable.
func (r *soldProductRepo) UpdatePaymentDetails(ctx context.Context, id uint, desc string, settlement decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.SoldProduct{}).
		Where("object_id = ?", id).
		Updates(map[string]interface{}{
			"payment_details": gorm.Expr(
				`jsonb_set(jsonb_set(COALESCE(payment_details, '{}'::jsonb), '{desc}', to_jsonb(?::text)), '{settlement}', to_jsonb(?::numeric))`,
				desc, settlement.String(),
			),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
