package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-warehouse-ws/internal/event"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProductService interface {
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByCode(ctx context.Context, code string) (*model.Product, error)
	GetByCategory(ctx context.Context, categoryCode string) ([]model.Product, error)
	Create(ctx context.Context, req *CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, req *UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, code string) (int64, error)
}

// CreateProductRequest is the body of /createProduct.
type CreateProductRequest struct {
	WarehouseCode   string            `json:"warehouseCode"`
	ProductCode     string            `json:"productCode"`
	ProductName     string            `json:"productName"`
	ProductCategory model.CategoryRef `json:"productCategory"`
	ProductUnit     string            `json:"productUnit"`
	PriceUnit       string            `json:"priceUnit"`
	MinQty          int               `json:"minQty"`
	Qty             int               `json:"qty"`
	RentalCosts     decimal.Decimal   `json:"rentalCosts"`
	BuyPrice        decimal.Decimal   `json:"buyPrice"`
	SellPrice       decimal.Decimal   `json:"sellPrice"`
	Seller          model.Seller      `json:"seller"`
}

func (r *CreateProductRequest) toModel() *model.Product {
	return &model.Product{
		WarehouseCode:   r.WarehouseCode,
		ProductCode:     r.ProductCode,
		ProductName:     r.ProductName,
		ProductCategory: datatypes.NewJSONType(r.ProductCategory),
		ProductUnit:     r.ProductUnit,
		PriceUnit:       r.PriceUnit,
		MinCount:        r.MinQty,
		Count:           r.Qty,
		RentalCosts:     r.RentalCosts,
		BuyPrice:        r.BuyPrice,
		SellPrice:       r.SellPrice,
		Seller:          datatypes.NewJSONType(r.Seller),
	}
}

// UpdateProductRequest is the body of /updateProduct. Fields not listed keep
// their stored values.
type UpdateProductRequest struct {
	WarehouseCode string          `json:"warehouse_code" validate:"required,max=50"`
	ProductCode   string          `json:"product_code" validate:"required,max=50"`
	ProductName   string          `json:"product_name" validate:"required,max=255"`
	Count         int             `json:"count" validate:"gte=0"`
	BuyPrice      decimal.Decimal `json:"buy_price" validate:"decimal_gte0"`
	SellPrice     decimal.Decimal `json:"sell_price" validate:"decimal_gte0"`
	Seller        model.Seller    `json:"seller"`
	UpdateAt      *time.Time      `json:"updateAt"`
}

type productService struct {
	products repository.ProductRepository
	notifier event.Notifier
}

func NewProductService(products repository.ProductRepository, notifier event.Notifier) ProductService {
	return &productService{products: products, notifier: notifier}
}

func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	return s.products.FindAll(ctx)
}

// GetByCode returns repository.ErrNotFound when the code is unknown.
func (s *productService) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	return s.products.FindByCode(ctx, code)
}

func (s *productService) GetByCategory(ctx context.Context, categoryCode string) ([]model.Product, error) {
	return s.products.FindByCategory(ctx, categoryCode)
}

func (s *productService) Create(ctx context.Context, req *CreateProductRequest) (*model.Product, error) {
	product := req.toModel()
	if err := validate(product); err != nil {
		return nil, err
	}

	// The unique index still catches a race between this check and the insert.
	existing, err := s.products.FindByCode(ctx, product.ProductCode)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrConflict
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(event.New(event.ProductCreated, created.ProductCode, created,
		fmt.Sprintf("product '%s' created", created.ProductName)))
	return created, nil
}

func (s *productService) Update(ctx context.Context, req *UpdateProductRequest) (*model.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	current, err := s.products.FindByCode(ctx, req.ProductCode)
	if err != nil {
		return nil, err
	}
	oldCount := current.Count

	current.WarehouseCode = req.WarehouseCode
	current.ProductName = req.ProductName
	current.Count = req.Count
	current.BuyPrice = req.BuyPrice
	current.SellPrice = req.SellPrice
	current.Seller = datatypes.NewJSONType(req.Seller)
	current.UpdatedAt = time.Time{}
	if req.UpdateAt != nil {
		current.UpdatedAt = *req.UpdateAt
	}

	updated, err := s.products.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(event.New(event.ProductUpdated, updated.ProductCode, updated,
		fmt.Sprintf("product '%s' updated", updated.ProductName)))
	if updated.Count != oldCount {
		s.notifier.Notify(event.New(event.StockUpdated, updated.ProductCode, map[string]interface{}{
			"product_code": updated.ProductCode,
			"old_count":    oldCount,
			"count":        updated.Count,
			"low_stock":    updated.IsLowStock(),
		}, ""))
	}
	return updated, nil
}

// Delete reports how many rows were removed; an unknown code removes none.
func (s *productService) Delete(ctx context.Context, code string) (int64, error) {
	n, err := s.products.Delete(ctx, code)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.notifier.Notify(event.New(event.ProductDeleted, code, map[string]interface{}{
			"product_code": code,
		}, ""))
	}
	return n, nil
}
