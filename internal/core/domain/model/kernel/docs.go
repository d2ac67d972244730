// Package kernel provides core domain primitives for the fulfillment service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: An amount kept in minor currency units, converted to major units only at payload boundaries
//   - Weight: A physical weight kept in grams, converted to kilograms only at payload boundaries
//   - Dimensions: Package dimensions in centimeters with component-wise maximum combination
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
