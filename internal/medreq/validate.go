package medreq

import (
	"fmt"
	"io"
	"strings"
)

// MaxPrescriptionSize is the upload ceiling for prescription files (5 MiB).
const MaxPrescriptionSize = 5 * 1024 * 1024

// SubmitInput carries everything the requester form collects.
type SubmitInput struct {
	PatientName   string
	Phone         string
	Location      string
	Urgency       string
	Notes         string
	MedicinesText string

	// File is the optional prescription upload; nil when no file was attached.
	File     io.Reader
	FileName string
}

// ValidateSubmission gates a candidate request before anything is written.
func ValidateSubmission(in SubmitInput) error {
	if strings.TrimSpace(in.MedicinesText) == "" && in.File == nil {
		return ErrMissingContent
	}
	if strings.TrimSpace(in.PatientName) == "" {
		return fmt.Errorf("%w: patient name", ErrMissingRequiredField)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingRequiredField)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: delivery address", ErrMissingRequiredField)
	}
	return nil
}

// CheckFileSize rejects oversized prescription files. It runs when the file is
// selected, before the file is staged for upload, independent of the other rules.
func CheckFileSize(size int64) error {
	if size > MaxPrescriptionSize {
		return ErrFileTooLarge
	}
	return nil
}
