package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseGeoPosition(t *testing.T) {
	lat, long, err := parseGeoPosition("40.758; -73.9855")
	assert.NoError(t, err)
	assert.Equal(t, 40.758, lat)
	assert.Equal(t, -73.9855, long)

	_, _, err = parseGeoPosition("40.758")
	assert.Error(t, err)

	_, _, err = parseGeoPosition("north;-73.9855")
	assert.Error(t, err)
}

func TestLocationQueryCenter(t *testing.T) {
	lat, long := 25.03, 121.56

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Geo-Position", "40.758;-73.9855")

	center, err := locationQuery{Latitude: &lat, Longitude: &long}.center(c, true)
	assert.NoError(t, err)
	assert.Equal(t, 25.03, center.Latitude)

	center, err = locationQuery{}.center(c, false)
	assert.NoError(t, err)
	assert.Nil(t, center)

	center, err = locationQuery{}.center(c, true)
	assert.NoError(t, err)
	assert.Equal(t, -73.9855, center.Longitude)

	_, err = locationQuery{Longitude: &long}.center(c, false)
	assert.Error(t, err)
}
