package medreq

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseMedicineList(t *testing.T) {
	got := ParseMedicineList("Paracetamol 500mg - 10 tablets, , ORS sachets - 5 packs ,")
	want := []string{"Paracetamol 500mg - 10 tablets", "ORS sachets - 5 packs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseMedicineListEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", ",", " , , "} {
		got := ParseMedicineList(raw)
		if got == nil {
			t.Fatalf("expected non-nil slice for %q", raw)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty list for %q, got %v", raw, got)
		}
	}
}

func TestParseMedicineListKeepsOrderAndDuplicates(t *testing.T) {
	got := ParseMedicineList("ORS, Paracetamol, ORS")
	want := []string{"ORS", "Paracetamol", "ORS"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseMedicineListIdempotent(t *testing.T) {
	inputs := []string{
		"Paracetamol 500mg - 10 tablets, , ORS sachets - 5 packs ,",
		"a,b,c",
		"  spaced  out  ,,",
		"",
		"single",
	}
	for _, raw := range inputs {
		first := ParseMedicineList(raw)
		second := ParseMedicineList(strings.Join(first, ","))
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("parse not idempotent for %q: %v vs %v", raw, first, second)
		}
	}
}
