package models

import "testing"

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusAccepted, StatusDelivered, true},
		{StatusPending, StatusDelivered, false},
		{StatusPending, StatusPending, false},
		{StatusAccepted, StatusPending, false},
		{StatusAccepted, StatusAccepted, false},
		{StatusDelivered, StatusAccepted, false},
		{StatusDelivered, StatusDelivered, false},
		{StatusDelivered, StatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "accepted", "delivered"} {
		status, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if string(status) != raw {
			t.Fatalf("expected %q, got %q", raw, status)
		}
	}

	if _, err := ParseStatus("rejected"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Fatal("expected error for empty status")
	}
}

func TestParseUrgencyDefaultsToMedium(t *testing.T) {
	if got := ParseUrgency("high"); got != UrgencyHigh {
		t.Fatalf("expected high, got %s", got)
	}
	for _, raw := range []string{"", "urgent", "HIGH"} {
		if got := ParseUrgency(raw); got != UrgencyMedium {
			t.Fatalf("%q: expected medium default, got %s", raw, got)
		}
	}
}

func TestMedicineRequestNormalize(t *testing.T) {
	var req MedicineRequest
	req.Normalize()
	if req.Medicines == nil {
		t.Fatal("expected medicines to default to an empty slice")
	}

	req.Medicines = []string{"ORS"}
	req.Normalize()
	if len(req.Medicines) != 1 {
		t.Fatalf("expected existing medicines to be kept, got %v", req.Medicines)
	}
}
