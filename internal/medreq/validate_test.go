package medreq

import (
	"errors"
	"strings"
	"testing"
)

func validInput() SubmitInput {
	return SubmitInput{
		PatientName:   "Asha",
		Phone:         "+91-99999-00000",
		Location:      "Village X",
		Urgency:       "high",
		MedicinesText: "Paracetamol, ORS",
	}
}

func TestValidateSubmissionOK(t *testing.T) {
	if err := ValidateSubmission(validInput()); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}
}

func TestValidateSubmissionMissingContent(t *testing.T) {
	for _, medicines := range []string{"", "   ", "\t\n"} {
		in := validInput()
		in.MedicinesText = medicines
		in.File = nil

		err := ValidateSubmission(in)
		if !errors.Is(err, ErrMissingContent) {
			t.Fatalf("medicines %q: expected ErrMissingContent, got %v", medicines, err)
		}
	}
}

func TestValidateSubmissionFileCountsAsContent(t *testing.T) {
	in := validInput()
	in.MedicinesText = ""
	in.File = strings.NewReader("fake image bytes")
	in.FileName = "rx.jpg"

	if err := ValidateSubmission(in); err != nil {
		t.Fatalf("expected file-only submission to pass, got %v", err)
	}
}

func TestValidateSubmissionMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"patient name", func(in *SubmitInput) { in.PatientName = "" }},
		{"patient name whitespace", func(in *SubmitInput) { in.PatientName = "  " }},
		{"phone", func(in *SubmitInput) { in.Phone = "" }},
		{"address", func(in *SubmitInput) { in.Location = "" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)

		err := ValidateSubmission(in)
		if !errors.Is(err, ErrMissingRequiredField) {
			t.Fatalf("%s: expected ErrMissingRequiredField, got %v", tc.name, err)
		}
	}
}

func TestValidateSubmissionContentCheckedFirst(t *testing.T) {
	// Both rules violated: the content check wins.
	in := SubmitInput{}
	err := ValidateSubmission(in)
	if !errors.Is(err, ErrMissingContent) {
		t.Fatalf("expected ErrMissingContent, got %v", err)
	}
}

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize(MaxPrescriptionSize); err != nil {
		t.Fatalf("expected file of exactly 5MiB to pass, got %v", err)
	}
	if err := CheckFileSize(MaxPrescriptionSize + 1); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if err := CheckFileSize(0); err != nil {
		t.Fatalf("expected empty file to pass the size check, got %v", err)
	}
}
