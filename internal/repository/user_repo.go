package repository

import (
	"context"
	"time"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByNumber(ctx context.Context, number string) (*model.User, error)
	FindByIdentity(ctx context.Context, userCode, number string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	Delete(ctx context.Context, number, userCode string) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "object_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) FindByNumber(ctx context.Context, number string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) FindByIdentity(ctx context.Context, userCode, number string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("user_code = ? AND number = ?", userCode, number).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translate(err)
	}
	return r.FindByID(ctx, user.ObjectID)
}

// Update matches on user_code and number; name, password and role are overwritten.
func (r *userRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_code = ? AND number = ?", user.UserCode, user.Number).
		Updates(map[string]interface{}{
			"name":       user.Name,
			"password":   user.Password,
			"role":       user.Role,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByIdentity(ctx, user.UserCode, user.Number)
}

func (r *userRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("object_id = ?", id).
		Updates(map[string]interface{}{"password": hashedPassword, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, number, userCode string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("number = ? AND user_code = ?", number, userCode).
		Delete(&model.User{})
	return res.RowsAffected, res.Error
}
