package kernel

import (
	"fmt"
)

// LocationKind discriminates the closed set of location representations.
type LocationKind int

const (
	// LocationUnknown means no location has been reported for the delivery.
	LocationUnknown LocationKind = iota

	// LocationText is a free-form location description, e.g. "Zone A".
	LocationText

	// LocationCoordinates is a latitude/longitude pair.
	LocationCoordinates
)

const (
	locationUnknownName     = "unknown"
	locationTextName        = "text"
	locationCoordinatesName = "coordinates"
)

// String returns the storage name of the kind.
func (k LocationKind) String() string {
	switch k {
	case LocationText:
		return locationTextName
	case LocationCoordinates:
		return locationCoordinatesName
	default:
		return locationUnknownName
	}
}

// LocationKindFromString maps a storage name back to a kind.
// Unrecognized names map to LocationUnknown.
func LocationKindFromString(name string) LocationKind {
	switch name {
	case locationTextName:
		return LocationText
	case locationCoordinatesName:
		return LocationCoordinates
	default:
		return LocationUnknown
	}
}

// Location is a tagged-variant value object describing where a delivery
// currently is. Exactly one of three shapes applies:
//
//	Unknown            - nothing reported yet
//	Text(string)       - free-form description
//	Coordinates(lat,lng) - geographic pair
//
// The zero value is the Unknown location, which is a legitimate state for a
// delivery that has not reported a position, so Location carries no
// constructor guard. Constructors are deliberately permissive: an empty text
// or zero coordinates construct fine. Whether a location counts as *verified*
// is a monitoring concern, not a construction concern.
type Location struct {
	kind LocationKind
	text string
	lat  float64
	lng  float64
}

// UnknownLocation returns the Unknown variant.
func UnknownLocation() Location {
	return Location{kind: LocationUnknown}
}

// NewTextLocation creates a free-form text location.
func NewTextLocation(text string) Location {
	return Location{kind: LocationText, text: text}
}

// NewCoordinates creates a latitude/longitude location.
func NewCoordinates(lat float64, lng float64) Location {
	return Location{kind: LocationCoordinates, lat: lat, lng: lng}
}

// Kind returns the variant discriminator.
func (l Location) Kind() LocationKind {
	return l.kind
}

// IsUnknown reports whether no location has been set.
func (l Location) IsUnknown() bool {
	return l.kind == LocationUnknown
}

// Text returns the free-form description. Empty unless Kind is LocationText.
func (l Location) Text() string {
	return l.text
}

// Lat returns the latitude. Zero unless Kind is LocationCoordinates.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude. Zero unless Kind is LocationCoordinates.
func (l Location) Lng() float64 {
	return l.lng
}

// IsEqual compares two locations for equality across kind and payload.
func (l Location) IsEqual(other Location) bool {
	return l == other
}

// String returns a human-readable representation, useful in alerts and logs.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	switch l.kind {
	case LocationText:
		return l.text
	case LocationCoordinates:
		return fmt.Sprintf("(%g,%g)", l.lat, l.lng)
	default:
		return "unknown"
	}
}
