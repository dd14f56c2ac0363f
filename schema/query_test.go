package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginationSkip(t *testing.T) {
	assert.Equal(t, int64(0), Pagination{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, int64(40), Pagination{Page: 3, Limit: 20}.Skip())
	assert.Equal(t, int64(0), Pagination{Page: 0, Limit: 20}.Skip())
}

func TestPaginationWithTotal(t *testing.T) {
	p := Pagination{Page: 2, Limit: 20}.WithTotal(41)
	assert.Equal(t, int64(41), p.Total)
	assert.Equal(t, int64(3), p.Pages)

	p = Pagination{Page: 1, Limit: 20}.WithTotal(0)
	assert.Equal(t, int64(0), p.Pages)
}

func TestHelpRequestIsExpired(t *testing.T) {
	now := time.Now()
	h := HelpRequest{ExpiresAt: now}
	assert.True(t, h.IsExpired(now))
	assert.True(t, h.IsExpired(now.Add(time.Second)))
	assert.False(t, h.IsExpired(now.Add(-time.Second)))
}

func TestGeoPointRoundTrip(t *testing.T) {
	p := NewGeoPoint(Location{Latitude: 40.7, Longitude: -74.0})
	assert.Equal(t, []float64{-74.0, 40.7}, p.Coordinates)
	assert.Equal(t, Location{Latitude: 40.7, Longitude: -74.0}, p.Location())
}

func TestAddressMerge(t *testing.T) {
	a := Address{City: "Brooklyn"}
	merged := a.Merge(Address{City: "New York", State: "NY", ZipCode: "11201"})
	assert.Equal(t, Address{City: "Brooklyn", State: "NY", ZipCode: "11201"}, merged)
	assert.False(t, merged.Incomplete())
	assert.True(t, a.Incomplete())
}
