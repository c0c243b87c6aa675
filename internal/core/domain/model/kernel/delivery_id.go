package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"glassgo/internal/pkg/errs"
	"glassgo/internal/pkg/guard"
)

// DeliveryIDPrefix is the prefix carried by generated delivery identifiers.
const DeliveryIDPrefix = "DEL-"

// ErrDeliveryIDIsNotConstructed is returned when attempting to use an improperly
// initialized DeliveryID. Identifiers must be created via NewDeliveryID or
// DeliveryIDFromString.
var ErrDeliveryIDIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery ID must be created via NewDeliveryID or DeliveryIDFromString constructors")

// DeliveryID is the value object identifying a delivery shipment.
//
// Generated identifiers have the form "DEL-NNNNN" with a random five-digit
// suffix. The random suffix alone does not guarantee uniqueness; the
// persistence layer enforces it through the primary key, so a collision
// surfaces as a storage error rather than silently shadowing an existing
// record. Identifiers are compared as plain strings, and identifiers supplied
// by callers are accepted as-is (any non-empty string).
//
// DeliveryID is immutable after construction. The zero value is invalid and
// fails validation - use the constructors.
type DeliveryID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewDeliveryID generates a fresh identifier with a random five-digit suffix.
//
// Example:
//
//	id := kernel.NewDeliveryID()
//	fmt.Println(id) // e.g. "DEL-48213"
func NewDeliveryID() DeliveryID {
	suffix := rand.IntN(90000) + 10000 //nolint:gosec // identifier suffix, not a secret
	return DeliveryID{
		value: fmt.Sprintf("%s%d", DeliveryIDPrefix, suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// DeliveryIDFromString reconstructs a DeliveryID from its string form.
// Any non-empty string is accepted: deliveries created before identifier
// generation was standardized may carry arbitrary identifiers, and lookups
// compare identifiers as strings regardless of origin.
//
// Returns an error if the string is empty or blank.
func DeliveryIDFromString(s string) (DeliveryID, error) {
	if strings.TrimSpace(s) == "" {
		return DeliveryID{}, errs.NewValueIsRequiredError("deliveryID")
	}
	return DeliveryID{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the identifier's string form.
// This method implements the fmt.Stringer interface.
func (id DeliveryID) String() string {
	return id.value
}

// IsEqual compares two identifiers by string equality.
func (id DeliveryID) IsEqual(other DeliveryID) bool {
	return id.value == other.value
}

// Validate checks that the DeliveryID was created through a constructor.
// The zero value fails with ErrDeliveryIDIsNotConstructed.
func (id DeliveryID) Validate() error {
	return id.guard.Validate(ErrDeliveryIDIsNotConstructed)
}
