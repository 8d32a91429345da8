package importer

import "stayledger/internal/domains/booking/model"

// Merge appends every incoming record whose reference/unit signature is absent from
// existing. Only existing records are matched, so two incoming stays on the same unit
// under one reference are both kept. Existing records keep their order and are never
// replaced. The returned count is the number of records actually appended.
func Merge(existing, incoming []model.BookingRecord) ([]model.BookingRecord, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, record := range existing {
		seen[record.Signature()] = struct{}{}
	}

	merged := make([]model.BookingRecord, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	added := 0

	for _, record := range incoming {
		signature := record.Signature()
		if _, dup := seen[signature]; dup {
			continue
		}

		merged = append(merged, record)
		added++
	}

	return merged, added
}
