package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() *ModuleManifest {
	return &ModuleManifest{
		Name:        "user-management",
		Type:        "CORE",
		Domain:      "identity",
		Version:     "0.1.0",
		Description: "core module for the identity domain",
		GeneratedBy: "modkit 0.3.0",
		CreatedAt:   time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
}

func TestManagerSaveLoadRoundTrip(t *testing.T) {
	mgr := NewModuleManager(t.TempDir())
	assert.False(t, mgr.Exists())

	want := testManifest()
	require.NoError(t, mgr.Save(want))
	assert.True(t, mgr.Exists())

	got, err := mgr.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestManagerRejectsInvalidManifest(t *testing.T) {
	mgr := NewModuleManager(t.TempDir())

	m := testManifest()
	m.Domain = ""
	require.Error(t, mgr.Save(m))
	assert.False(t, mgr.Exists())
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := NewModuleManager(t.TempDir()).Load()
	assert.Error(t, err)
}

func TestMarshalValidates(t *testing.T) {
	data, err := Marshal(testManifest())
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: user-management")
	assert.Contains(t, string(data), "created_at:")

	_, err = Marshal(&ModuleManifest{Name: "user-management"})
	assert.Error(t, err)

	_, err = Marshal(nil)
	assert.Error(t, err)
}
