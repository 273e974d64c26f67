package medreq

import (
	"errors"

	"rural-health-api-server/internal/models"
)

var (
	// ErrMissingContent: neither a medicine list nor a prescription file was supplied.
	ErrMissingContent = errors.New("a prescription file or a medicine list is required")

	// ErrMissingRequiredField: patient name, phone or delivery address is empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrFileTooLarge: the prescription file exceeds the upload ceiling.
	ErrFileTooLarge = errors.New("prescription file is larger than 5MB")

	// ErrSubmissionFailed: the upload or the insert failed for infrastructural
	// reasons. The caller may resubmit; nothing is retried automatically.
	ErrSubmissionFailed = errors.New("medicine request submission failed")

	// ErrInvalidTransition: the request is not in the status the action expects.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFound: no medicine request with the given id. The sentinel
	// lives with the model so stores report it without depending on this
	// package.
	ErrNotFound = models.ErrRequestNotFound
)
