package kernel

import (
	"fmt"
	"math"

	"sharebite/internal/pkg/errs"
	"sharebite/internal/pkg/guard"
)

const (
	latitudeMin  = -90.0
	latitudeMax  = 90.0
	longitudeMin = -180.0
	longitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when validating a zero-value
// GeoPoint. Use NewGeoPoint or NewAddressGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or NewAddressGeoPoint constructors")

// ErrNoCoordinates is returned when a distance is requested between points
// that do not both carry coordinates.
var ErrNoCoordinates = errs.NewValueIsRequiredError("coordinates")

// GeoPoint is an immutable value object describing where a donation sits or
// where an NGO operates: an optional latitude/longitude pair plus a free-text
// address. Coordinates come from an external geocoding provider and are not
// always present, so a point without coordinates is valid; distance
// calculations then degrade (see services.NearestNgoResolver).
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude       float64
	longitude      float64
	address        string
	hasCoordinates bool

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with coordinates and an optional address.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(latitude, longitude float64, address string) (GeoPoint, error) {
	if latitude < latitudeMin || latitude > latitudeMax {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%v is outside [%v, %v]", latitude, latitudeMin, latitudeMax))
	}
	if longitude < longitudeMin || longitude > longitudeMax {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%v is outside [%v, %v]", longitude, longitudeMin, longitudeMax))
	}

	return GeoPoint{
		latitude:       latitude,
		longitude:      longitude,
		address:        address,
		hasCoordinates: true,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// NewAddressGeoPoint creates a GeoPoint without coordinates. The address may
// be empty: a donation whose location is entirely unknown is still routable
// by the first-available fallback.
func NewAddressGeoPoint(address string) GeoPoint {
	return GeoPoint{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
}

// Latitude returns the latitude. Meaningful only when HasCoordinates is true.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude. Meaningful only when HasCoordinates is true.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Address returns the free-text address, possibly empty.
func (p GeoPoint) Address() string {
	return p.address
}

// HasCoordinates reports whether the point carries a latitude/longitude pair.
func (p GeoPoint) HasCoordinates() bool {
	return p.hasCoordinates
}

// DistanceKmTo computes the great-circle distance in kilometers between two
// points using the haversine formula. Returns ErrNoCoordinates when either
// point has no coordinates.
func (p GeoPoint) DistanceKmTo(other GeoPoint) (float64, error) {
	if !p.hasCoordinates || !other.hasCoordinates {
		return 0, ErrNoCoordinates
	}

	lat1 := p.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - p.latitude) * math.Pi / 180
	dLng := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// IsEqual reports whether two points carry the same coordinates and address.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.hasCoordinates == other.hasCoordinates &&
		p.latitude == other.latitude &&
		p.longitude == other.longitude &&
		p.address == other.address
}

// String returns a compact representation for logs.
func (p GeoPoint) String() string {
	if p.hasCoordinates {
		return fmt.Sprintf("GeoPoint(%.6f,%.6f,%q)", p.latitude, p.longitude, p.address)
	}
	return fmt.Sprintf("GeoPoint(%q)", p.address)
}

// Validate returns ErrGeoPointIsNotConstructed for the zero value.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
