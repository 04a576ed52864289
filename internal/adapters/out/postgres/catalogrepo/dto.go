// Package catalogrepo persists the menu item aggregate with GORM.
package catalogrepo

import (
	"time"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// MenuItemDTO is the menu_items row. Category and availability are indexed for the
// menu filters.
type MenuItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Description     string          `gorm:"type:varchar(500);not null;default:''"`
	Category        string          `gorm:"type:varchar(20);not null;index"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Ingredients     pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
	IsAvailable     bool            `gorm:"not null;default:true;index"`
	PreparationTime int             `gorm:"not null;default:15"`
	ImageURL        string          `gorm:"type:text;not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *catalog.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:              item.ID().Bytes(),
		Name:            item.Name(),
		Description:     item.Description(),
		Category:        item.Category().String(),
		Price:           item.Price().Amount(),
		Ingredients:     pq.StringArray(item.Ingredients()),
		IsAvailable:     item.IsAvailable(),
		PreparationTime: item.PreparationTime(),
		ImageURL:        item.ImageURL(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}

func toDomain(dto MenuItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := catalog.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreItem(id, catalog.Details{
		Name:            dto.Name,
		Description:     dto.Description,
		Category:        category,
		Price:           dto.Price,
		Ingredients:     dto.Ingredients,
		Available:       dto.IsAvailable,
		PreparationTime: dto.PreparationTime,
		ImageURL:        dto.ImageURL,
	}, dto.CreatedAt, dto.UpdatedAt)
}
