package medreq

import "strings"

// ParseMedicineList normalizes the free-text medicine field into a list.
// The input is split on commas, each entry is trimmed, and empty entries are
// dropped. Order is preserved and duplicates are kept.
func ParseMedicineList(raw string) []string {
	medicines := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		medicines = append(medicines, part)
	}
	return medicines
}
