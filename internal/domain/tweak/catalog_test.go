package tweak

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownNames(t *testing.T) {
	for _, d := range All() {
		got, ok := Lookup(string(d.ID))
		require.True(t, ok, "catalog entry %q must be findable by name", d.ID)
		assert.Equal(t, d.ID, got.ID)
	}
}

func TestLookup_UnknownName(t *testing.T) {
	_, ok := Lookup("Overclock Everything")
	assert.False(t, ok)
}

func TestAll_StableAndCopied(t *testing.T) {
	first := All()
	second := All()
	require.Equal(t, first, second)

	// Mutating the returned slice must not affect the catalog.
	first[0] = Definition{ID: "bogus"}
	again := All()
	assert.Equal(t, second[0].ID, again[0].ID)
}

func TestDefinitions_HaveCategory(t *testing.T) {
	for _, d := range All() {
		assert.NotEmpty(t, d.Category, "entry %q has no category", d.ID)
	}
}

// Entries that run no commands in either state must carry a note or be
// known no-ops; everything else must produce at least one command when
// enabled.
func TestCommands_EnabledCoverage(t *testing.T) {
	noops := map[ID]bool{
		IDCleanStandbyList: true, // simulated, carries a note
		IDHIDLagFix:        true,
		IDP0StateForced:    true,
	}

	for _, d := range All() {
		enabled := d.Commands(true)
		if noops[d.ID] {
			assert.Empty(t, enabled, "entry %q should run nothing", d.ID)
			continue
		}
		assert.NotEmpty(t, enabled, "entry %q runs nothing when enabled", d.ID)
	}
}

func TestCommands_Idempotent(t *testing.T) {
	for _, d := range All() {
		assert.Equal(t, d.Commands(true), d.Commands(true), "entry %q not stable for enable", d.ID)
		assert.Equal(t, d.Commands(false), d.Commands(false), "entry %q not stable for disable", d.ID)
	}
}

func TestGameDVR_OnOffShapes(t *testing.T) {
	d, ok := Lookup(string(IDDisableGameDVR))
	require.True(t, ok)

	on := d.Commands(true)
	require.Len(t, on, 2)
	assert.Contains(t, on[0].Line, "GameDVR_Enabled /t REG_DWORD /d 0")
	assert.Contains(t, on[1].Line, "AllowGameDVR /t REG_DWORD /d 0")

	off := d.Commands(false)
	require.Len(t, off, 1)
	assert.Contains(t, off[0].Line, "GameDVR_Enabled /t REG_DWORD /d 1")
}

func TestFSO_StateParameterized(t *testing.T) {
	d, ok := Lookup(string(IDFSOOptimization))
	require.True(t, ok)

	on := d.Commands(true)
	require.Len(t, on, 1)
	assert.True(t, strings.HasSuffix(on[0].Line, "/d 2 /f"), "enable should write 2: %s", on[0].Line)

	off := d.Commands(false)
	require.Len(t, off, 1)
	assert.True(t, strings.HasSuffix(off[0].Line, "/d 0 /f"), "disable should write 0: %s", off[0].Line)
}

func TestOneWayTweaks_NothingOnDisable(t *testing.T) {
	for _, id := range []ID{IDDisableCStates, IDMouseAcceleration, IDKillBiometry, IDDisableNetDMA} {
		d, ok := Lookup(string(id))
		require.True(t, ok)
		assert.Empty(t, d.Commands(false), "entry %q should run nothing on disable", id)
		assert.NotEmpty(t, d.Commands(true))
	}
}

func TestCleanStandbyList_SimulatedNote(t *testing.T) {
	d, ok := Lookup(string(IDCleanStandbyList))
	require.True(t, ok)
	assert.Empty(t, d.Commands(true))
	assert.Equal(t, "Memory optimized (Simulated)", d.Note)
}
