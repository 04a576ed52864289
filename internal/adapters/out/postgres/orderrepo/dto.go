// Package orderrepo persists the order aggregate, its lines and the per-day order
// number counters with GORM.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. The order number is unique so a duplicate assignment
// fails the insert instead of producing two orders with the same number.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber  string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerName string          `gorm:"type:varchar(100);not null;index"`
	TableNumber  int             `gorm:"not null;index"`
	Status       string          `gorm:"type:varchar(16);not null;index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
	Lines        []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one order_lines row. MenuItemID carries no foreign key: catalog
// items may be deleted while orders keep referencing them.
type OrderLineDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// OrderSequenceDTO holds the last order number sequence issued for a UTC day.
type OrderSequenceDTO struct {
	Day   time.Time `gorm:"type:date;primaryKey"`
	Value int       `gorm:"not null"`
}

func (OrderSequenceDTO) TableName() string {
	return "order_sequences"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    id,
			Position:   i,
			MenuItemID: l.ItemID().Bytes(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:           id,
		OrderNumber:  o.Number().String(),
		CustomerName: o.CustomerName(),
		TableNumber:  o.TableNumber(),
		Status:       o.Status().String(),
		TotalAmount:  o.Total().Amount(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		Lines:        lines,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder; dto.Lines must be in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		itemID, idErr := kernel.UUIDFromBytes(l.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLine(itemID, l.Quantity, price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		number,
		dto.CustomerName,
		dto.TableNumber,
		lines,
		total,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
