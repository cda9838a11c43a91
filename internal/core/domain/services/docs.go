// Package services provides domain services for the parcel tracking system.
// It implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - CostEstimator: a pure service computing shipping fees from weight,
//     county adjacency and service tier
//
// Domain services are stateless and side-effect free; anything requiring
// I/O belongs to the application layer.
package services
