// Package kernel provides core domain primitives for the delivery execution
// service.
//
// The package includes:
//   - DeliveryID: a value object identifying a delivery shipment
//   - Location: a closed tagged variant (Unknown, Text, Coordinates) describing
//     where a delivery currently is
//
// These primitives are immutable and safe for concurrent use. DeliveryID
// enforces proper construction through a constructor guard; Location treats
// its zero value (Unknown) as a legitimate state.
package kernel
