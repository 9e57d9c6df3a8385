package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	domainRepo "github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists the sale with its items and item additionals in one
// transaction; gorm cascades the associations from the struct.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sale).Error
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("PaymentMethod").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Additionals").
		Preload("Items.Additionals.Additional").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

// ReplaceContents swaps the sale's payment method, total and item list in one
// transaction. The previous items and their additionals are hard-deleted;
// the sale row itself keeps its identity and creation time.
func (r *saleRepository) ReplaceContents(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var oldItems []entity.SaleItem
		if err := tx.Where("sale_id = ?", sale.ID).Find(&oldItems).Error; err != nil {
			return err
		}
		if len(oldItems) > 0 {
			itemIDs := make([]uuid.UUID, 0, len(oldItems))
			for _, item := range oldItems {
				itemIDs = append(itemIDs, item.ID)
			}
			if err := tx.Unscoped().Where("sale_item_id IN ?", itemIDs).
				Delete(&entity.SaleItemAdditional{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("sale_id = ?", sale.ID).
				Delete(&entity.SaleItem{}).Error; err != nil {
				return err
			}
		}

		for i := range sale.Items {
			sale.Items[i].SaleID = sale.ID
		}

		updates := map[string]interface{}{
			"payment_method_id": sale.PaymentMethodID,
			"total_cents":       sale.TotalCents,
		}
		if err := tx.Model(&entity.Sale{}).Where("id = ?", sale.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		if len(sale.Items) > 0 {
			if err := tx.Create(&sale.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []entity.SaleItem
		if err := tx.Where("sale_id = ?", id).Find(&items).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			itemIDs := make([]uuid.UUID, 0, len(items))
			for _, item := range items {
				itemIDs = append(itemIDs, item.ID)
			}
			if err := tx.Where("sale_item_id IN ?", itemIDs).
				Delete(&entity.SaleItemAdditional{}).Error; err != nil {
				return err
			}
			if err := tx.Where("sale_id = ?", id).
				Delete(&entity.SaleItem{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entity.Sale{}, "id = ?", id).Error
	})
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, error) {
	var sales []entity.Sale

	query := r.applyFilters(r.db.WithContext(ctx).Model(&entity.Sale{}), params)

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.
		Preload("User").
		Preload("PaymentMethod").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Additionals").
		Preload("Items.Additionals.Additional").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) Count(ctx context.Context, params *domainRepo.SaleFilterParams) (int64, error) {
	var count int64
	err := r.applyFilters(r.db.WithContext(ctx).Model(&entity.Sale{}), params).
		Count(&count).Error
	return count, err
}

func (r *saleRepository) applyFilters(query *gorm.DB, params *domainRepo.SaleFilterParams) *gorm.DB {
	if params.Start != nil {
		query = query.Where("created_at >= ?", *params.Start)
	}
	if params.End != nil {
		query = query.Where("created_at < ?", *params.End)
	}
	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.PaymentMethodID != nil {
		query = query.Where("payment_method_id = ?", *params.PaymentMethodID)
	}
	return query
}
