package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bitmark-inc/helpnet-api/schema"
)

const earthRadiusMeters = 6378100

func matchOpenAndUnexpired(now interface{}) bson.M {
	return bson.M{
		"status":     schema.HELP_OPEN,
		"expires_at": bson.M{"$gt": now},
	}
}

// aggStageGeoProximity sorts the matching documents from nearest to farthest
// and records the distance in meters. It must be the first stage.
func aggStageGeoProximity(maxDistance float64, location schema.Location, query bson.M) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{location.Longitude, location.Latitude},
			},
			"distanceField": "distance",
			"maxDistance":   maxDistance,
			"query":         query,
			"spherical":     true,
			"key":           "location",
		},
	}
}

// aggStagePaginate splits the input into one page of items and a total count
/*
{
	"$facet": {
		"items": [{"$skip": skip}, {"$limit": limit}],
		"total": [{"$count": "count"}]
	}
}
*/
func aggStagePaginate(p schema.Pagination) bson.M {
	return bson.M{
		"$facet": bson.M{
			"items": bson.A{
				bson.M{"$skip": p.Skip()},
				bson.M{"$limit": p.Limit},
			},
			"total": bson.A{
				bson.M{"$count": "count"},
			},
		},
	}
}

type paginatedHelpRequests struct {
	Items []schema.HelpRequest `bson:"items"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

func (p paginatedHelpRequests) count() int64 {
	if len(p.Total) == 0 {
		return 0
	}
	return p.Total[0].Count
}

// aggStageCountBy counts documents per distinct value of field
func aggStageCountBy(field string) bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":   specifyField(field),
			"count": bson.M{"$sum": 1},
		},
	}
}

// aggStageAverage computes the mean and the size of the input over field
/*
{
	"$group": {
		"_id": null,
		"average": {"$avg": "$field"},
		"count": {"$sum": 1}
	}
}
*/
func aggStageAverage(field string) bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": specifyField(field)},
			"count":   bson.M{"$sum": 1},
		},
	}
}

// withinRadius restricts a geo field to a circle, usable in find and count
func withinRadius(center schema.Location, radius float64) bson.M {
	return bson.M{
		"$geoWithin": bson.M{
			"$centerSphere": bson.A{
				bson.A{center.Longitude, center.Latitude},
				radius / earthRadiusMeters,
			},
		},
	}
}

func specifyField(fieldName string) string {
	return fmt.Sprintf("$%s", fieldName)
}
