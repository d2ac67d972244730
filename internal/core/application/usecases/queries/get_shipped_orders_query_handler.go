package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShippedOrdersQueryHandler retrieves submitted orders with their tracking
// details from the database.
type GetShippedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShippedOrdersQueryHandler creates a handler for shipped order queries.
func NewGetShippedOrdersQueryHandler(db *gorm.DB) GetShippedOrdersQueryHandler {
	return GetShippedOrdersQueryHandler{db: db}
}

// Handle executes the query. A non-null carrier order id is the authoritative
// submitted marker; newest submissions come first.
func (h GetShippedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShippedOrdersQuery,
) ([]GetShippedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetShippedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipping_status,
			carrier_order_id,
			carrier_shipment_id,
			awb_code,
			courier_name,
			estimated_delivery_date
		FROM orders
		WHERE carrier_order_id IS NOT NULL
		ORDER BY placed_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetShippedOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.ShippingStatus,
			&resp.CarrierOrderID,
			&resp.CarrierShipmentID,
			&resp.AWBCode,
			&resp.CourierName,
			&resp.EstimatedDeliveryDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
