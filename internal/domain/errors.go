package domain

import "errors"

var (
	// Fatal for an import run
	ErrTableLoad       = errors.New("unable to load spreadsheet table")
	ErrNoStoreColumns  = errors.New("no store columns found in header row")
	ErrSinkUnavailable = errors.New("persistence sink unavailable")

	ErrImportRunning = errors.New("an import is already running")
)
