package settlement

import "errors"

var (
	ErrSettlementNotFound       = errors.New("settlement not found")
	ErrDuplicateSettlementRange = errors.New("a settlement already exists for an overlapping date range")
	ErrEmptyReport              = errors.New("settlement report has no rows")
	ErrStoreUnavailable         = errors.New("record store unavailable")
)
