package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrNotEnoughSeats = errors.New("not enough seats")
	ErrBlockTooLarge  = errors.New("requested block exceeds the maximum block size of the chart")
)
