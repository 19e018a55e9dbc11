package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRepos exposes the repositories bound to one open transaction.
type TxRepos interface {
	Products() ProductRepository
	SoldProducts() SoldProductRepository
}

// TransactionManager hides begin/commit/rollback from services.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}

type txRepos struct {
	products     ProductRepository
	soldProducts SoldProductRepository
}

func (r *txRepos) Products() ProductRepository         { return r.products }
func (r *txRepos) SoldProducts() SoldProductRepository { return r.soldProducts }

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
func (tm *txManager) WithinTx(ctx context.Context, fn func(r TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepos{
			products:     NewProductRepo(tx),
			soldProducts: NewSoldProductRepo(tx),
		})
	})
}
