package domain

import "errors"

var (
	ErrSeatsUnavailable   = errors.New("some of the selected seats are no longer available")
	ErrSelectionEmpty     = errors.New("no seats are selected")
	ErrSelectionExpired   = errors.New("your selections have expired, please select your seats again")
	ErrCheckoutInProgress = errors.New("checkout is already in progress for this session")
	ErrRecordNotFound     = errors.New("record not found")
)
