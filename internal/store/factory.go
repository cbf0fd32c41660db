package store

import (
	"sauti.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Reports() ReportStore {
	return newReportStore(s.queries)
}
