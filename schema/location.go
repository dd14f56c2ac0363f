package schema

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoPoint returns a GeoJSON point; mongo expects [longitude, latitude]
func NewGeoPoint(loc Location) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// Location converts a GeoJSON point back to a latitude/longitude pair
func (g GeoJSON) Location() Location {
	if len(g.Coordinates) != 2 {
		return Location{}
	}
	return Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}

type Address struct {
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
}

// Incomplete reports whether reverse geocoding could fill something in
func (a Address) Incomplete() bool {
	return a.City == "" || a.State == "" || a.ZipCode == ""
}

// Merge fills the empty fields of a with the values of other
func (a Address) Merge(other Address) Address {
	if a.Address == "" {
		a.Address = other.Address
	}
	if a.City == "" {
		a.City = other.City
	}
	if a.State == "" {
		a.State = other.State
	}
	if a.ZipCode == "" {
		a.ZipCode = other.ZipCode
	}
	return a
}
