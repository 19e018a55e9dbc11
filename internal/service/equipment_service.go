package service

import (
	"context"
	"errors"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

type EquipmentService interface {
	GetAll(ctx context.Context) ([]model.Equipment, error)
	GetByID(ctx context.Context, id uint) (*model.Equipment, error)
	Create(ctx context.Context, req *EquipmentRequest) (*model.Equipment, error)
	Update(ctx context.Context, req *EquipmentRequest) (*model.Equipment, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type EquipmentRequest struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serialNumber"`
	StorageLocation string `json:"storageLocation"`
	Qty             int    `json:"qty"`
}

func (r *EquipmentRequest) toModel() *model.Equipment {
	e := &model.Equipment{
		Name:            r.Name,
		Model:           r.Model,
		SerialNumber:    r.SerialNumber,
		StorageLocation: r.StorageLocation,
		Qty:             r.Qty,
	}
	e.ObjectID = r.ID
	return e
}

type equipmentService struct {
	equipment repository.EquipmentRepository
}

func NewEquipmentService(equipment repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipment: equipment}
}

func (s *equipmentService) GetAll(ctx context.Context) ([]model.Equipment, error) {
	return s.equipment.FindAll(ctx)
}

func (s *equipmentService) GetByID(ctx context.Context, id uint) (*model.Equipment, error) {
	return s.equipment.FindByID(ctx, id)
}

func (s *equipmentService) Create(ctx context.Context, req *EquipmentRequest) (*model.Equipment, error) {
	item := req.toModel()
	item.ObjectID = 0
	if err := validate(item); err != nil {
		return nil, err
	}

	existing, err := s.equipment.FindBySerial(ctx, item.SerialNumber)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrConflict
	}
	return s.equipment.Create(ctx, item)
}

func (s *equipmentService) Update(ctx context.Context, req *EquipmentRequest) (*model.Equipment, error) {
	item := req.toModel()
	if item.ObjectID == 0 {
		return nil, repository.ErrNotFound
	}
	if err := validate(item); err != nil {
		return nil, err
	}
	return s.equipment.Update(ctx, item)
}

func (s *equipmentService) Delete(ctx context.Context, id uint) (int64, error) {
	return s.equipment.Delete(ctx, id)
}
