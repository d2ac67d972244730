package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetCarrierCredentialsQueryHandler retrieves the redacted carrier
// configuration from the database. The password column is never selected.
type GetCarrierCredentialsQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierCredentialsQueryHandler creates a handler for carrier
// configuration queries.
func NewGetCarrierCredentialsQueryHandler(db *gorm.DB) GetCarrierCredentialsQueryHandler {
	return GetCarrierCredentialsQueryHandler{db: db}
}

// Handle executes the query against the single carrier configuration row.
// Returns ErrCarrierCredentialsNotFound when the seller never configured the
// carrier.
func (h GetCarrierCredentialsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierCredentialsQuery,
) (GetCarrierCredentialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarrierCredentialsQueryResponse{}, err
	}

	var resp GetCarrierCredentialsQueryResponse
	var cachedToken sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			email,
			default_courier_id,
			auto_ship_enabled,
			cached_token,
			token_refreshed_at,
			updated_at
		FROM carrier_settings
		WHERE id = 1
	`).Row()

	err := row.Scan(
		&resp.Email,
		&resp.DefaultCourierID,
		&resp.AutoShipEnabled,
		&cachedToken,
		&resp.TokenRefreshedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCarrierCredentialsQueryResponse{}, ErrCarrierCredentialsNotFound
	}
	if err != nil {
		return GetCarrierCredentialsQueryResponse{}, err
	}

	resp.HasCachedToken = cachedToken.Valid
	return resp, nil
}
