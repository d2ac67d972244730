// Package order provides domain entities and business logic for marketplace
// orders on their way to shipment. It implements the Order aggregate root with
// lifecycle management and the carrier submission invariant.
//
// The package includes:
//   - Order: The aggregate root that owns the shipping-related order state
//   - Status: A state machine that enforces valid order status transitions
//   - Item: A read-only order line referencing a catalog product
//
// Key business rules:
//   - Order status follows a defined workflow: Pending -> Confirmed -> Shipped
//   - An order carrying a carrier order id has been submitted to the carrier
//     and must never be submitted again (the ship-once invariant)
//   - A failed waybill assignment leaves the order shipped; the carrier order
//     id is never rolled back once recorded
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
