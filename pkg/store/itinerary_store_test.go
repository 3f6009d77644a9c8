package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumbo/internal/models/request_models"
	"rumbo/internal/models/response_models"
	"rumbo/pkg/utils"
)

func testRecord(id, destination string) response_models.SavedItinerary {
	return response_models.SavedItinerary{
		ID: id,
		Preferences: request_models.TravelPreferences{
			Destination: destination,
			Duration:    3,
			Budget:      "medio",
			Interests:   []string{"cultura"},
		},
		Itinerary: "DÍA 1: Llegada\nMañana\n- Check-in\n",
		CreatedAt: "2026-08-30T12:00:00Z",
	}
}

func TestStore_RoundTripIsLossless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itineraries.json")

	first, err := NewFileItineraryStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Upsert(testRecord("a", "Roma")))
	require.NoError(t, first.Upsert(testRecord("b", "Tokio")))

	reloaded, err := NewFileItineraryStore(path)
	require.NoError(t, err)

	records := reloaded.List()
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "Roma", records[0].Preferences.Destination)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, testRecord("b", "Tokio").Itinerary, records[1].Itinerary)
}

func TestStore_UpsertReplacesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itineraries.json")
	s, err := NewFileItineraryStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Upsert(testRecord("a", "Roma")))
	require.NoError(t, s.Upsert(testRecord("b", "Tokio")))

	edited := testRecord("a", "Roma")
	edited.Itinerary = "DÍA 1: Versión regenerada\n"
	require.NoError(t, s.Upsert(edited))

	records := s.List()
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "DÍA 1: Versión regenerada\n", records[0].Itinerary)
}

func TestStore_FileRemovedWhenCollectionEmptied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itineraries.json")
	s, err := NewFileItineraryStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Upsert(testRecord("a", "Roma")))
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, s.Delete("a"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itineraries.json")
	s, err := NewFileItineraryStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Upsert(testRecord("a", "Roma")))
	require.NoError(t, s.Upsert(testRecord("b", "Tokio")))
	require.NoError(t, s.Clear())

	assert.Empty(t, s.List())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_DeleteUnknownID(t *testing.T) {
	s, err := NewFileItineraryStore(filepath.Join(t.TempDir(), "itineraries.json"))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete("missing"), utils.ErrItineraryNotFound)
}

func TestStore_MissingFileStartsEmpty(t *testing.T) {
	s, err := NewFileItineraryStore(filepath.Join(t.TempDir(), "never-written.json"))
	require.NoError(t, err)
	assert.Empty(t, s.List())

	_, found := s.Get("anything")
	assert.False(t, found)
}
