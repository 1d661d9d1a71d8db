package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BeanJournal/pkg/model"
)

var (
	ErrNotFound = errors.New("coffee bean not found")
	ErrStore    = errors.New("store failure")
)

type BeanRepository interface {
	AddBean(ctx context.Context, bean model.CoffeeBean) (*model.CoffeeBean, error)
	DeleteBean(ctx context.Context, id string) error
	GetBean(ctx context.Context, id string) (*model.CoffeeBean, error)
	IncrementPurchaseCount(ctx context.Context, id string) (*model.CoffeeBean, error)
	ListBeans(ctx context.Context) ([]*model.CoffeeBean, error)
	UpdateBean(ctx context.Context, id string, patch model.BeanPatch) (*model.CoffeeBean, error)
}

func (r *Repository) ListBeans(ctx context.Context) ([]*model.CoffeeBean, error) {
	var beans []*model.CoffeeBean

	if result := r.DB.WithContext(ctx).Find(&beans); result.Error != nil {
		return nil, r.storeError("error listing coffee beans", result.Error)
	}

	return beans, nil
}

func (r *Repository) GetBean(ctx context.Context, id string) (*model.CoffeeBean, error) {
	var bean model.CoffeeBean

	if result := r.DB.WithContext(ctx).Where("id = ?", id).First(&bean); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
		}

		return nil, r.storeError("error getting coffee bean", result.Error, zap.String("id", id))
	}

	return &bean, nil
}

// AddBean validates and inserts a new bean, assigning its id and creation time.
func (r *Repository) AddBean(ctx context.Context, bean model.CoffeeBean) (*model.CoffeeBean, error) {
	bean.Normalize()

	if err := bean.Validate(); err != nil {
		return nil, err
	}

	bean.ID = uuid.NewString()
	bean.CreatedAt = time.Now().UTC()

	if result := r.DB.WithContext(ctx).Create(&bean); result.Error != nil {
		return nil, r.storeError("error adding coffee bean", result.Error, zap.String("name", bean.Name))
	}

	return &bean, nil
}

// UpdateBean writes only the fields present in patch. An empty patch returns the
// current record without writing.
func (r *Repository) UpdateBean(ctx context.Context, id string, patch model.BeanPatch) (*model.CoffeeBean, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var bean model.CoffeeBean

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&bean).Error; err != nil {
			return err
		}

		columns := patch.Columns()
		if len(columns) == 0 {
			return nil
		}

		if err := tx.Model(&bean).Updates(columns).Error; err != nil {
			return err
		}

		patch.ApplyTo(&bean)

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
		}

		return nil, r.storeError("error updating coffee bean", err, zap.String("id", id))
	}

	return &bean, nil
}

func (r *Repository) IncrementPurchaseCount(ctx context.Context, id string) (*model.CoffeeBean, error) {
	var bean model.CoffeeBean

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CoffeeBean{}).
			Where("id = ?", id).
			UpdateColumn("purchase_count", gorm.Expr("purchase_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("id = ?", id).First(&bean).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
		}

		return nil, r.storeError("error recording purchase", err, zap.String("id", id))
	}

	return &bean, nil
}

// DeleteBean removes the bean. Deleting an unknown id is a silent no-op.
func (r *Repository) DeleteBean(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.CoffeeBean{})
	if result.Error != nil {
		return r.storeError("error deleting coffee bean", result.Error, zap.String("id", id))
	}

	return nil
}

func (r *Repository) storeError(msg string, err error, fields ...zap.Field) error {
	r.Logger.Error(msg, append(fields, zap.Error(err))...)

	return fmt.Errorf("%w: %w", ErrStore, err)
}
