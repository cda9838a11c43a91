// Package parcel implements the parcel aggregate for the tracking system.
//
// Parcel is the aggregate root, coordinating operational status, payment
// settlement, parties and physical attributes of a single shipment. Status,
// PaymentMethod and PaymentStatus are explicit enumerated types; every
// string spelling arriving from storage or requests passes through the
// Parse* normalizers at the boundary, so the rest of the system never
// compares loosely-matched status strings.
//
// Value objects owned by the aggregate:
//   - TrackingCode: the "TRK" + 8-digit customer-facing identifier
//   - Party: sender or recipient details with validated county and phone
//   - Dimensions: optional measurements parsed from the "LxWxH" form field
package parcel
