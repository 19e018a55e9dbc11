package service

import (
	"context"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

type BuyerService interface {
	GetAll(ctx context.Context) ([]model.Buyer, error)
	Create(ctx context.Context, buyer *model.Buyer) (*model.Buyer, error)
}

type buyerService struct {
	buyers repository.BuyerRepository
}

func NewBuyerService(buyers repository.BuyerRepository) BuyerService {
	return &buyerService{buyers: buyers}
}

func (s *buyerService) GetAll(ctx context.Context) ([]model.Buyer, error) {
	return s.buyers.FindAll(ctx)
}

// Create ignores any object_id or timestamps in the input.
func (s *buyerService) Create(ctx context.Context, buyer *model.Buyer) (*model.Buyer, error) {
	buyer.BaseModel = model.BaseModel{}
	if err := validate(buyer); err != nil {
		return nil, err
	}
	return s.buyers.Create(ctx, buyer)
}
