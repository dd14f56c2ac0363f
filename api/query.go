package api

import (
	"github.com/bitmark-inc/helpnet-api/schema"
)

type pageQuery struct {
	Page  int64 `form:"page"`
	Limit int64 `form:"limit"`
}

func (q pageQuery) pagination() schema.Pagination {
	return schema.Pagination{
		Page:  q.Page,
		Limit: q.Limit,
	}
}
