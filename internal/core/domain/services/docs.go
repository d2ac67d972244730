// Package services contains stateless domain services for the fulfillment
// subsystem. Domain services host business logic that spans aggregates and
// does not naturally belong to a single entity.
//
// Available services:
//   - PackageMetricsCalculator: derives shipment weight and bounding
//     dimensions from order lines and catalog metadata
package services
