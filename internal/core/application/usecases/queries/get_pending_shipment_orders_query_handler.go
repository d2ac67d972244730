package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingShipmentOrdersQueryHandler retrieves the shipment work queue from
// the database: confirmed orders with no carrier order id yet.
type GetPendingShipmentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingShipmentOrdersQueryHandler creates a handler for pending
// shipment queries. Requires a GORM database connection for query execution.
func NewGetPendingShipmentOrdersQueryHandler(db *gorm.DB) GetPendingShipmentOrdersQueryHandler {
	return GetPendingShipmentOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first so the longest
// waiting orders surface at the top of the work queue.
func (h GetPendingShipmentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShipmentOrdersQuery,
) ([]GetPendingShipmentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingShipmentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			payment_method,
			total_minor_units,
			placed_at
		FROM orders
		WHERE status = ?
		  AND carrier_order_id IS NULL
		ORDER BY placed_at
	`, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingShipmentOrdersQueryResponse
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&userID,
			&resp.PaymentMethod,
			&resp.TotalMinorUnits,
			&resp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.UserID = ownerID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
