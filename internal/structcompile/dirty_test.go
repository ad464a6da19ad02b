package structcompile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirtyTrackerMarkIgnoresZeroID(t *testing.T) {
	var tr DirtyTracker
	tr.Mark(0, DirtyVolume)
	_, ok := tr.Get(0)
	assert.False(t, ok)
}

func TestDirtyTrackerExpansion(t *testing.T) {
	var tr DirtyTracker
	tr.Mark(1, DirtyFootprint)
	rec, ok := tr.Get(1)
	assert.True(t, ok)
	assert.Equal(t, DirtyFootprint|DirtyVolume|DirtyEnclosure|DirtySurface|DirtySupport, rec.Flags)
}

func TestDirtyTrackerEnclosureExpandsOnlySurface(t *testing.T) {
	var tr DirtyTracker
	tr.Mark(1, DirtyEnclosure)
	rec, _ := tr.Get(1)
	assert.Equal(t, DirtyEnclosure|DirtySurface, rec.Flags)
}

func TestDirtyTrackerCarrierDoesNotExpand(t *testing.T) {
	var tr DirtyTracker
	tr.Mark(1, DirtyCarrier)
	rec, _ := tr.Get(1)
	assert.Equal(t, DirtyCarrier, rec.Flags)
}

func TestDirtyTrackerSortedByStructID(t *testing.T) {
	var tr DirtyTracker
	tr.Mark(30, DirtyCarrier)
	tr.Mark(10, DirtyCarrier)
	tr.Mark(20, DirtyCarrier)
	all := tr.All()
	if assert.Len(t, all, 3) {
		assert.Equal(t, ID(10), all[0].StructID)
		assert.Equal(t, ID(20), all[1].StructID)
		assert.Equal(t, ID(30), all[2].StructID)
	}
}

func TestDirtyTrackerClearFlagsDropsCleanRecord(t *testing.T) {
	var tr DirtyTracker
	tr.Mark(1, DirtyCarrier)
	tr.ClearFlags(1, DirtyCarrier)
	_, ok := tr.Get(1)
	assert.False(t, ok)
}

func TestDirtyTrackerClearFlagsPartial(t *testing.T) {
	var tr DirtyTracker
	tr.Mark(1, DirtyCarrier|DirtySupport)
	tr.ClearFlags(1, DirtyCarrier)
	rec, ok := tr.Get(1)
	assert.True(t, ok)
	assert.Equal(t, DirtySupport, rec.Flags)
}
