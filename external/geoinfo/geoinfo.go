package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/helpnet-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo - reverse geocoding of help request locations
type GeoInfo interface {
	Get(schema.Location) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client *maps.Client
}

// Get returns the addresses google maps knows for a coordinate, best match first
func (g geoInfo) Get(loc schema.Location) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("reverse geocode")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		ResultType: []string{"street_address", "postal_code", "locality"},
	})
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
