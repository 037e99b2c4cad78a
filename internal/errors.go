package internal

import (
	"errors"
	"fmt"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrEmptyRateTable   = errors.New("rate table has no valid rates")
	ErrNoRates          = errors.New("no exchange rates available")
)

// FetchError reports a failed remote refresh: network, timeout, HTTP status
// or an undecodable payload.
type FetchError struct {
	Base  CurrencyCode
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch rates for %s: %v", e.Base, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// CacheError reports a snapshot that is missing, unreadable or malformed.
type CacheError struct {
	Path  string
	Cause error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("load snapshot %s: %v", e.Path, e.Cause)
}

func (e *CacheError) Unwrap() error { return e.Cause }

type PersistError struct {
	Path  string
	Cause error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("save snapshot %s: %v", e.Path, e.Cause)
}

func (e *PersistError) Unwrap() error { return e.Cause }
