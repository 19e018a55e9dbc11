package service

import (
	"context"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

type TowerService interface {
	GetAll(ctx context.Context) ([]model.Tower, error)
	GetByID(ctx context.Context, id uint) (*model.Tower, error)
	Create(ctx context.Context, req *TowerRequest) (*model.Tower, error)
	Update(ctx context.Context, req *TowerRequest) (*model.Tower, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// TowerRequest is the body of /createTower and /updateTower; ID is only
// read on update.
type TowerRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Size string `json:"size"`
}

func (r *TowerRequest) toModel() *model.Tower {
	t := &model.Tower{Name: r.Name, Size: r.Size}
	t.ObjectID = r.ID
	return t
}

type towerService struct {
	towers repository.TowerRepository
}

func NewTowerService(towers repository.TowerRepository) TowerService {
	return &towerService{towers: towers}
}

func (s *towerService) GetAll(ctx context.Context) ([]model.Tower, error) {
	return s.towers.FindAll(ctx)
}

func (s *towerService) GetByID(ctx context.Context, id uint) (*model.Tower, error) {
	return s.towers.FindByID(ctx, id)
}

// Create relies on the unique index on name for conflicts.
func (s *towerService) Create(ctx context.Context, req *TowerRequest) (*model.Tower, error) {
	tower := req.toModel()
	tower.ObjectID = 0
	if err := validate(tower); err != nil {
		return nil, err
	}
	return s.towers.Create(ctx, tower)
}

func (s *towerService) Update(ctx context.Context, req *TowerRequest) (*model.Tower, error) {
	tower := req.toModel()
	if tower.ObjectID == 0 {
		return nil, repository.ErrNotFound
	}
	if err := validate(tower); err != nil {
		return nil, err
	}
	return s.towers.Update(ctx, tower)
}

func (s *towerService) Delete(ctx context.Context, id uint) (int64, error) {
	return s.towers.Delete(ctx, id)
}
