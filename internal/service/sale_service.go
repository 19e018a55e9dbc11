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

const (
	MsgSaleAdded        = "sale record added"
	MsgPaymentUpdated   = "بروزرسانی اطلاعات با موفقیت انجام شد"
	MsgPaymentNotUpdate = "بروزرسانی اطلاعات انجام نشد"
)

type SaleService interface {
	GetAll(ctx context.Context) ([]model.SoldProduct, error)
	Sell(ctx context.Context, req *SellRequest) (*SaleResult, error)
	UpdatePaymentDetails(ctx context.Context, req *PaymentUpdateRequest) (*PaymentUpdateResult, error)
}

// SellRequest carries the sale. Product attributes are snapshotted from the
// stored product; only the prices and seller may be overridden.
type SellRequest struct {
	ProductCode    string               `json:"product_code" validate:"required,max=50"`
	Count          int                  `json:"count" validate:"gt=0"`
	SellPrice      *decimal.Decimal     `json:"sell_price" validate:"omitempty,decimal_gte0"`
	SoldPrice      *decimal.Decimal     `json:"soldPrice" validate:"omitempty,decimal_gte0"`
	Seller         *model.Seller        `json:"seller"`
	Buyer          model.BuyerInfo      `json:"buyer"`
	PaymentDetails model.PaymentDetails `json:"paymentDetails"`
}

type SaleResult struct {
	Message        string             `json:"message"`
	SoldProduct    *model.SoldProduct `json:"sold_product"`
	RemainingCount int                `json:"remaining_count"`
	LowStock       bool               `json:"low_stock"`
}

type PaymentUpdateRequest struct {
	ID         uint            `json:"id" validate:"required"`
	Desc       string          `json:"desc"`
	Settlement decimal.Decimal `json:"settlement" validate:"decimal_gte0"`
}

type PaymentUpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type saleService struct {
	sales    repository.SoldProductRepository
	tm       repository.TransactionManager
	notifier event.Notifier
	now      func() time.Time
}

func NewSaleService(sales repository.SoldProductRepository, tm repository.TransactionManager, notifier event.Notifier) SaleService {
	return &saleService{
		sales:    sales,
		tm:       tm,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *saleService) GetAll(ctx context.Context) ([]model.SoldProduct, error) {
	return s.sales.FindAll(ctx)
}

// Sell records the sale and takes the quantity out of stock in one
// transaction. The product row stays locked until commit, so concurrent
// sales of the same product are applied one after another.
func (s *saleService) Sell(ctx context.Context, req *SellRequest) (*SaleResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var (
		sale    model.SoldProduct
		product *model.Product
	)
	err := s.tm.WithinTx(ctx, func(r repository.TxRepos) error {
		var err error
		product, err = r.Products().LockByCode(ctx, req.ProductCode)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("lock product %s: %w", req.ProductCode, err)
		}

		if req.Count > product.Count {
			return fmt.Errorf("%w: %s has %d, requested %d", ErrInsufficientStock, product.ProductCode, product.Count, req.Count)
		}

		sale = s.snapshot(product, req)
		n, err := r.SoldProducts().Create(ctx, &sale)
		if err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}
		if n == 0 {
			return ErrSaleNotRecorded
		}

		ok, err := r.Products().DecreaseCountIfEnough(ctx, product.ProductCode, req.Count)
		if err != nil {
			return fmt.Errorf("decrease stock: %w", err)
		}
		if !ok {
			return ErrInsufficientStock
		}
		product.Count -= req.Count
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(event.New(event.SaleRecorded, sale.ProductCode, sale, MsgSaleAdded))
	s.notifier.Notify(event.New(event.StockUpdated, product.ProductCode, map[string]interface{}{
		"product_code": product.ProductCode,
		"count":        product.Count,
		"low_stock":    product.IsLowStock(),
	}, ""))

	return &SaleResult{
		Message:        MsgSaleAdded,
		SoldProduct:    &sale,
		RemainingCount: product.Count,
		LowStock:       product.IsLowStock(),
	}, nil
}

func (s *saleService) snapshot(p *model.Product, req *SellRequest) model.SoldProduct {
	now := s.now()

	sellPrice := p.SellPrice
	if req.SellPrice != nil {
		sellPrice = *req.SellPrice
	}
	soldPrice := sellPrice.Mul(decimal.NewFromInt(int64(req.Count)))
	if req.SoldPrice != nil {
		soldPrice = *req.SoldPrice
	}
	seller := p.Seller
	if req.Seller != nil {
		seller = datatypes.NewJSONType(*req.Seller)
	}

	sale := model.SoldProduct{
		WarehouseCode:   p.WarehouseCode,
		ProductCode:     p.ProductCode,
		ProductName:     p.ProductName,
		ProductCategory: p.ProductCategory,
		ProductUnit:     p.ProductUnit,
		PriceUnit:       p.PriceUnit,
		BuyPrice:        p.BuyPrice,
		SellPrice:       sellPrice,
		SoldPrice:       soldPrice,
		Seller:          seller,
		Buyer:           datatypes.NewJSONType(req.Buyer),
		PaymentDetails:  datatypes.NewJSONType(req.PaymentDetails),
		Count:           req.Count,
		MinCount:        p.MinCount,
		SoldAt:          now,
	}
	sale.CreatedAt = now
	sale.UpdatedAt = now
	return sale
}

// UpdatePaymentDetails amends desc and settlement of a recorded sale. A
// missing sale is reported in the result, not as an error.
func (s *saleService) UpdatePaymentDetails(ctx context.Context, req *PaymentUpdateRequest) (*PaymentUpdateResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	ok, err := s.sales.UpdatePaymentDetails(ctx, req.ID, req.Desc, req.Settlement)
	if err != nil {
		return nil, fmt.Errorf("update payment details: %w", err)
	}
	if !ok {
		return &PaymentUpdateResult{Success: false, Message: MsgPaymentNotUpdate}, nil
	}
	return &PaymentUpdateResult{Success: true, Message: MsgPaymentUpdated}, nil
}
