package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

type locationQuery struct {
	Latitude  *float64 `form:"latitude"`
	Longitude *float64 `form:"longitude"`
}

// optionalCenter is the location of the query or of the Geo-Position header,
// nil when the client gives neither
func (q locationQuery) optionalCenter(c *gin.Context) (*schema.Location, error) {
	if q.Latitude == nil && q.Longitude == nil && c.GetHeader("Geo-Position") == "" {
		return nil, nil
	}
	return q.center(c, true)
}

// center returns the location of the query. Latitude and longitude are given
// together or not at all. A required location falls back to the Geo-Position
// header of the client.
func (q locationQuery) center(c *gin.Context, required bool) (*schema.Location, error) {
	if q.Latitude != nil && q.Longitude != nil {
		return &schema.Location{
			Latitude:  *q.Latitude,
			Longitude: *q.Longitude,
		}, nil
	}

	if q.Latitude != nil || q.Longitude != nil {
		return nil, fmt.Errorf("latitude and longitude must be given together")
	}

	if !required {
		return nil, nil
	}

	gp := c.GetHeader("Geo-Position")
	if gp == "" {
		return nil, fmt.Errorf("latitude and longitude are required")
	}

	lat, long, err := parseGeoPosition(gp)
	if err != nil {
		return nil, err
	}
	return &schema.Location{
		Latitude:  lat,
		Longitude: long,
	}, nil
}
