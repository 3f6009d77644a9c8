package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumbo/internal/models/response_models"
	"rumbo/pkg/store"
	"rumbo/pkg/utils"
)

func setupTripsRouter(t *testing.T) (*gin.Engine, store.ItineraryStore) {
	t.Helper()

	s, err := store.NewFileItineraryStore(filepath.Join(t.TempDir(), "itineraries.json"))
	require.NoError(t, err)

	r := gin.New()
	controller := NewTripsController(s)
	r.GET("/api/itineraries", controller.ListItineraries)
	r.POST("/api/itineraries", controller.SaveItinerary)
	r.DELETE("/api/itineraries", controller.ClearItineraries)
	r.GET("/api/itineraries/:id", controller.GetItinerary)
	r.PUT("/api/itineraries/:id", controller.UpdateItinerary)
	r.DELETE("/api/itineraries/:id", controller.DeleteItinerary)
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const saveBody = `{
	"preferences": {"destination": "Roma", "duration": 3, "budget": "medio", "interests": ["historia"], "restrictions": ""},
	"itinerary": "DÍA 1: Clásicos\nMañana (9:00 - 12:00)\n- Coliseo\n- Foro Romano\n"
}`

func savedRecord(t *testing.T, w *httptest.ResponseRecorder) response_models.SavedItinerary {
	t.Helper()

	var envelope struct {
		Data response_models.SavedItinerary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestTrips_SaveAssignsIDAndTimestamp(t *testing.T) {
	r, _ := setupTripsRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/itineraries", saveBody)

	require.Equal(t, http.StatusOK, w.Code)
	record := savedRecord(t, w)
	assert.NotEmpty(t, record.ID)
	assert.NotEmpty(t, record.CreatedAt)
	assert.Equal(t, "Roma", record.Preferences.Destination)
}

func TestTrips_SaveRejectsMissingItineraryText(t *testing.T) {
	r, _ := setupTripsRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/itineraries",
		`{"preferences":{"destination":"Roma","duration":3},"itinerary":"  "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrips_GetReturnsParsedDays(t *testing.T) {
	r, _ := setupTripsRouter(t)

	created := savedRecord(t, doJSON(t, r, http.MethodPost, "/api/itineraries", saveBody))

	w := doJSON(t, r, http.MethodGet, "/api/itineraries/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data response_models.ItineraryDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, created.ID, envelope.Data.ID)
	require.Len(t, envelope.Data.Days, 1)
	assert.Equal(t, 1, envelope.Data.Days[0].Day)
	assert.Equal(t, "Clásicos", envelope.Data.Days[0].Title)
	assert.Equal(t, []string{"Coliseo", "Foro Romano"}, envelope.Data.Days[0].Morning)
}

func TestTrips_GetUnknownIDIs404(t *testing.T) {
	r, _ := setupTripsRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/itineraries/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrips_UpdateKeepsID(t *testing.T) {
	r, s := setupTripsRouter(t)

	created := savedRecord(t, doJSON(t, r, http.MethodPost, "/api/itineraries", saveBody))

	updated := `{
		"preferences": {"destination": "Roma", "duration": 4, "budget": "alto", "interests": ["historia"], "restrictions": ""},
		"itinerary": "DÍA 1: Versión nueva\nMañana\n- Vaticano\n"
	}`
	w := doJSON(t, r, http.MethodPut, "/api/itineraries/"+created.ID, updated)
	require.Equal(t, http.StatusOK, w.Code)

	record, found := s.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, 4, record.Preferences.Duration)
	assert.Contains(t, record.Itinerary, "Versión nueva")
	assert.Len(t, s.List(), 1)
}

func TestTrips_UpdateUnknownIDIs404(t *testing.T) {
	r, _ := setupTripsRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/itineraries/ghost", saveBody)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrips_DeleteAndClear(t *testing.T) {
	r, s := setupTripsRouter(t)

	first := savedRecord(t, doJSON(t, r, http.MethodPost, "/api/itineraries", saveBody))
	_ = savedRecord(t, doJSON(t, r, http.MethodPost, "/api/itineraries", saveBody))
	require.Len(t, s.List(), 2)

	w := doJSON(t, r, http.MethodDelete, "/api/itineraries/"+first.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.List(), 1)

	w = doJSON(t, r, http.MethodDelete, "/api/itineraries", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.List())
}

func TestTrips_ListEnvelope(t *testing.T) {
	r, _ := setupTripsRouter(t)
	_ = savedRecord(t, doJSON(t, r, http.MethodPost, "/api/itineraries", saveBody))

	w := doJSON(t, r, http.MethodGet, "/api/itineraries", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, http.StatusOK, envelope.Code)
}
