// Package readstore holds the read-side persistence: snapshots for command
// validation and the aggregation views behind reports. Never writes.
package readstore

import sq "github.com/Masterminds/squirrel"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
