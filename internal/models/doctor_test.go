package models

import "testing"

func TestDoctorMatches(t *testing.T) {
	doctor := Doctor{Name: "Dr. Rajesh Kumar", Specialty: "General Medicine"}

	cases := []struct {
		search    string
		specialty string
		want      bool
	}{
		{"", "", true},
		{"rajesh", "", true},
		{"KUMAR", "", true},
		{"general", "", true},
		{"  rajesh  ", "", true},
		{"priya", "", false},
		{"", "General Medicine", true},
		{"", "Pediatrics", false},
		{"rajesh", "Pediatrics", false},
	}
	for _, tc := range cases {
		if got := doctor.Matches(tc.search, tc.specialty); got != tc.want {
			t.Errorf("Matches(%q, %q): expected %v, got %v", tc.search, tc.specialty, tc.want, got)
		}
	}
}

func TestDoctorNormalize(t *testing.T) {
	var doctor Doctor
	doctor.Normalize()
	if doctor.Languages == nil {
		t.Fatal("expected languages to default to an empty slice")
	}
}
