// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The carrier order id column doubles as the submitted marker, so it is
// indexed for the pending-shipment and shipped scans.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	AddressID       uuid.UUID `gorm:"type:uuid"`
	Status          int       `gorm:"index"`
	PaymentMethod   string
	TotalMinorUnits int64
	PlacedAt        time.Time

	CarrierOrderID    *int64 `gorm:"index"`
	CarrierShipmentID *int64

	ShippingStatus        string
	AWBCode               *string
	CourierName           *string
	EstimatedDeliveryDate *time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines are written once when checkout
// hands the order over and are never updated by this subsystem.
type ItemDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	Quantity        int
	PriceMinorUnits int64
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       item.ProductID().Bytes(),
			Quantity:        item.Quantity(),
			PriceMinorUnits: item.Price().MinorUnits(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		UserID:                aggregate.UserID().Bytes(),
		AddressID:             aggregate.AddressID().Bytes(),
		Status:                int(aggregate.Status()),
		PaymentMethod:         string(aggregate.PaymentMethod()),
		TotalMinorUnits:       aggregate.Total().MinorUnits(),
		PlacedAt:              aggregate.PlacedAt(),
		CarrierOrderID:        aggregate.CarrierOrderID(),
		CarrierShipmentID:     aggregate.CarrierShipmentID(),
		ShippingStatus:        aggregate.ShippingStatus(),
		AWBCode:               aggregate.AWBCode(),
		CourierName:           aggregate.CourierName(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		Items:                 items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates the status and carrier id consistency so
// corrupted rows are rejected at this boundary.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalMinorUnits)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewMoney(itemDTO.PriceMinorUnits)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		addressID,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		total,
		dto.PlacedAt,
		items,
		dto.CarrierOrderID,
		dto.CarrierShipmentID,
		dto.ShippingStatus,
		dto.AWBCode,
		dto.CourierName,
		dto.EstimatedDeliveryDate,
	)
}
