package labourer

import "errors"

var (
	ErrLabourerNotFound = errors.New("labourer not found")
	ErrMobileExists     = errors.New("mobile number already registered")
	ErrAadhaarExists    = errors.New("aadhaar number already registered")
	ErrHasOpenLoan      = errors.New("labourer has an outstanding loan balance")
	ErrMissingDailyWage = errors.New("labourer has no daily wage configured")
)
