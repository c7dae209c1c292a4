package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrInvalidStatType   = errors.New("invalid stat type")
	ErrInvalidPlayerType = errors.New("invalid player type")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDateRange  = errors.New("start date is after end date")
	ErrQueryTooShort     = errors.New("search query too short")

	// Player index errors
	ErrIndexNotReady = errors.New("player index not ready")

	// Upstream errors
	ErrUpstream      = errors.New("upstream request failed")
	ErrTableNotFound = errors.New("table not found in upstream response")

	// Cache errors
	ErrCacheMiss = errors.New("cache miss")
)
