package repository

import (
	"context"
	"time"

	"go-warehouse-ws/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	FindByCategory(ctx context.Context, categoryCode string) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, code string) (int64, error)

	// Used inside a transaction by the sale workflow
	LockByCode(ctx context.Context, code string) (*model.Product, error)
	DecreaseCountIfEnough(ctx context.Context, code string, qty int) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "object_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "product_code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepo) FindByCategory(ctx context.Context, categoryCode string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where(datatypes.JSONQuery("product_category").Equals(categoryCode, "code")).
		Find(&products).Error
	return products, err
}

// Create inserts the product and returns the row re-read by its generated id.
func (r *productRepo) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, translate(err)
	}
	return r.FindByID(ctx, product.ObjectID)
}

// Update overwrites every mutable field, warehouse_code included, of the row
// matching product_code.
func (r *productRepo) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	updatedAt := product.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_code = ?", product.ProductCode).
		Updates(map[string]interface{}{
			"warehouse_code":   product.WarehouseCode,
			"product_name":     product.ProductName,
			"product_category": product.ProductCategory,
			"product_unit":     product.ProductUnit,
			"price_unit":       product.PriceUnit,
			"min_count":        product.MinCount,
			"count":            product.Count,
			"rental_costs":     product.RentalCosts,
			"buy_price":        product.BuyPrice,
			"sell_price":       product.SellPrice,
			"seller":           product.Seller,
			"updated_at":       updatedAt,
		})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByCode(ctx, product.ProductCode)
}

// Delete is idempotent: a missing code yields zero affected rows, not an error.
func (r *productRepo) Delete(ctx context.Context, code string) (int64, error) {
	res := r.db.WithContext(ctx).Where("product_code = ?", code).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

// LockByCode reads the product with SELECT ... FOR UPDATE. Only meaningful
// on a repository bound to a transaction.
func (r *productRepo) LockByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "product_code = ?", code).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// DecreaseCountIfEnough subtracts qty server-side and only when enough stock
// remains, so concurrent sales cannot drive the count negative.
func (r *productRepo) DecreaseCountIfEnough(ctx context.Context, code string, qty int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where(`product_code = ? AND "count" >= ?`, code, qty).
		Updates(map[string]interface{}{
			"count":      gorm.Expr(`"count" - ?`, qty),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
