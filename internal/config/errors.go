package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidColumn is returned when a column is not a valid column letter.
	ErrInvalidColumn = errors.New("invalid column: must be a column letter such as A or N")

	// ErrEmptyLabel is returned when a required label is empty.
	ErrEmptyLabel = errors.New("invalid labels: header and maintenance labels must be non-empty")

	// ErrNoNewStatuses is returned when the new status set is empty.
	ErrNoNewStatuses = errors.New("invalid labels: at least one new status is required")

	// ErrOverlappingStatus is returned when the maintenance status is also a
	// new status. New values must stay a subset of the totals.
	ErrOverlappingStatus = errors.New("invalid labels: maintenance status cannot be a new status")

	// ErrInvalidHeaders is returned when the table headers are not exactly five.
	ErrInvalidHeaders = errors.New("invalid headers: exactly five column headers are required")

	// ErrEmptySheetName is returned when the export sheet name is empty.
	ErrEmptySheetName = errors.New("invalid output: sheet name must be non-empty")

	// ErrEmptyFileName is returned when the export file name is empty.
	ErrEmptyFileName = errors.New("invalid output: file name must be non-empty")
)
