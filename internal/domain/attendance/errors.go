package attendance

import "errors"

var (
	ErrDuplicateLabourerEntry = errors.New("duplicate labourer entry for the same date")
	ErrInvalidDate            = errors.New("invalid date or date range")
	ErrRecordNotFound         = errors.New("attendance record not found")
	ErrFutureDate             = errors.New("attendance cannot be recorded for a future date")
	ErrNoFaceMatch            = errors.New("no matching labourer found for the supplied photo")
	ErrNoEnrolledFaces        = errors.New("no labourers have an enrolled face scan")
)
