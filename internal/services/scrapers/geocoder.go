package scrapers

import (
	"context"
	"fmt"
	"strings"
)

// MockGeocoder resolves every address to a configured default center.
// Stands in for a real geocoding provider behind the same interface.
type MockGeocoder struct {
	defaultLatitude  float64
	defaultLongitude float64
	region           string
}

var _ Geocoder = (*MockGeocoder)(nil)

func NewMockGeocoder(latitude, longitude float64, region string) *MockGeocoder {
	if region == "" {
		region = "San Francisco, CA, USA"
	}
	return &MockGeocoder{
		defaultLatitude:  latitude,
		defaultLongitude: longitude,
		region:           region,
	}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}

	return &GeocodeResult{
		Address:          address,
		Latitude:         g.defaultLatitude,
		Longitude:        g.defaultLongitude,
		FormattedAddress: fmt.Sprintf("%s, %s", address, g.region),
	}, nil
}
