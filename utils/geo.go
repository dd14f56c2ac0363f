package utils

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/helpnet-api/external/geoinfo"
	"github.com/bitmark-inc/helpnet-api/schema"
)

var ErrGeoClientNotInit = fmt.Errorf("geo location client is not initialized")
var ErrEmptyGeo = fmt.Errorf("empty geo info")

var geoClient geoinfo.GeoInfo

func InitGeoInfo(apiKey string) {
	c, err := geoinfo.New(apiKey)
	if nil != err {
		log.Panicf("get geo client with error: %s", err)
	}

	geoClient = c
}

func SetGeoClient(c geoinfo.GeoInfo) {
	geoClient = c
}

// GeoEnabled reports whether reverse geocoding is configured
func GeoEnabled() bool {
	return geoClient != nil
}

// AddressOf resolves the street address, city, state and zip code of a location
func AddressOf(loc schema.Location) (schema.Address, error) {
	var addr schema.Address

	if geoClient == nil {
		return addr, ErrGeoClientNotInit
	}

	geos, err := geoClient.Get(loc)
	if nil != err {
		return addr, err
	}
	if len(geos) == 0 {
		return addr, ErrEmptyGeo
	}

	addr.Address = geos[0].FormattedAddress
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "locality":
			addr.City = a.LongName
		case "administrative_area_level_1":
			addr.State = a.LongName
		case "postal_code":
			addr.ZipCode = a.LongName
		}
	}

	return addr, nil
}
