package importer_test

import (
	"stayledger/internal/domains/booking/importer"
	"stayledger/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, reference, unit string) model.BookingRecord {
	return model.BookingRecord{ID: id, Reference: reference, Unit: unit, AddOns: []model.AddOn{}}
}

func TestMerge_AppendsOnlyNewSignatures(t *testing.T) {
	existing := []model.BookingRecord{record("1", "26363", "G1"), record("2", "26363", "G2")}
	incoming := []model.BookingRecord{record("3", "26363", "G2"), record("4", "26363", "G3")}

	merged, added := importer.Merge(existing, incoming)

	assert.Equal(t, 1, added)
	require.Len(t, merged, 3)
	assert.Equal(t, "1", merged[0].ID)
	assert.Equal(t, "2", merged[1].ID)
	assert.Equal(t, "4", merged[2].ID)
}

func TestMerge_SignatureIgnoresCase(t *testing.T) {
	existing := []model.BookingRecord{record("1", "ABC", "g1")}
	incoming := []model.BookingRecord{record("2", "abc", "G1")}

	merged, added := importer.Merge(existing, incoming)

	assert.Zero(t, added)
	require.Len(t, merged, 1)
	assert.Equal(t, "1", merged[0].ID)
}

func TestMerge_Idempotent(t *testing.T) {
	incoming := []model.BookingRecord{record("1", "A", "G1"), record("2", "B", "G2")}

	once, added := importer.Merge(nil, incoming)
	assert.Equal(t, 2, added)

	twice, added := importer.Merge(once, incoming)
	assert.Zero(t, added)
	assert.Equal(t, once, twice)
}

func TestMerge_KeepsRepeatedStaysWithinIncoming(t *testing.T) {
	incoming := []model.BookingRecord{record("1", "R9", "G1"), record("2", "R9", "G1")}

	merged, added := importer.Merge([]model.BookingRecord{}, incoming)

	assert.Equal(t, 2, added)
	require.Len(t, merged, 2)
	assert.Equal(t, "1", merged[0].ID)
	assert.Equal(t, "2", merged[1].ID)

	again, added := importer.Merge(merged, incoming)

	assert.Zero(t, added)
	assert.Equal(t, merged, again)
}

func TestMerge_DoesNotMutateExisting(t *testing.T) {
	existing := make([]model.BookingRecord, 1, 4)
	existing[0] = record("1", "A", "G1")

	merged, _ := importer.Merge(existing, []model.BookingRecord{record("2", "B", "G1")})
	merged[0].GuestName = "changed"

	assert.Empty(t, existing[0].GuestName)
	assert.Len(t, existing, 1)
}
