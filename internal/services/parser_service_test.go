package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItineraryIntoDays_SingleDayMorningOnly(t *testing.T) {
	itinerary := `DÍA 1: Intro
Mañana (9:00 - 12:00)
- Visita al museo
- Paseo por el centro
`

	days := ParseItineraryIntoDays(itinerary)

	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "Intro", days[0].Title)
	assert.Equal(t, []string{"Visita al museo", "Paseo por el centro"}, days[0].Morning)
	assert.Equal(t, []string{NoScheduledActivities}, days[0].Afternoon)
	assert.Equal(t, []string{NoScheduledActivities}, days[0].Evening)
	assert.Empty(t, days[0].Budget)
}

func TestParseItineraryIntoDays_FullDayWithBudget(t *testing.T) {
	itinerary := `BARCELONA
Duración: 2 días

DÍA 1: Modernismo y tapas
Mañana (9:00 - 12:00)
- Sagrada Familia
- Desayuno en el Eixample

Tarde (14:00 - 18:00)
- Park Güell

Noche (20:00 - 23:00)
- Tapas en el Barrio Gótico

Presupuesto estimado del día: EUR 80-120 (aproximado)

DÍA 2: Mar y paseo
Mañana (9:00 - 12:00)
- Playa de la Barceloneta
`

	days := ParseItineraryIntoDays(itinerary)

	require.Len(t, days, 2)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "Modernismo y tapas", days[0].Title)
	assert.Equal(t, []string{"Sagrada Familia", "Desayuno en el Eixample"}, days[0].Morning)
	assert.Equal(t, []string{"Park Güell"}, days[0].Afternoon)
	assert.Equal(t, []string{"Tapas en el Barrio Gótico"}, days[0].Evening)
	assert.Equal(t, "EUR 80-120 (aproximado)", days[0].Budget)

	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, "Mar y paseo", days[1].Title)
	assert.Equal(t, []string{"Playa de la Barceloneta"}, days[1].Morning)
	assert.Equal(t, []string{NoScheduledActivities}, days[1].Afternoon)
}

func TestParseItineraryIntoDays_NoHeadingYieldsEmpty(t *testing.T) {
	days := ParseItineraryIntoDays("random preamble text")
	assert.Empty(t, days)
}

func TestParseItineraryIntoDays_PreambleBeforeFirstDayIsDropped(t *testing.T) {
	itinerary := `MADRID
Duración: 1 días
Presupuesto: medio

DÍA 1: Clásicos
Mañana (9:00 - 12:00)
- Museo del Prado
`

	days := ParseItineraryIntoDays(itinerary)

	require.Len(t, days, 1)
	assert.Equal(t, "Clásicos", days[0].Title)
}

func TestParseItineraryIntoDays_CaseInsensitiveHeading(t *testing.T) {
	days := ParseItineraryIntoDays("día 3: Relax\nMañana\n- Spa\n")

	require.Len(t, days, 1)
	assert.Equal(t, 3, days[0].Day)
	assert.Equal(t, "Relax", days[0].Title)
	assert.Equal(t, []string{"Spa"}, days[0].Morning)
}

func TestParseItineraryIntoDays_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseItineraryIntoDays(""))
}

func TestParseActivities_IgnoresNonBulletLines(t *testing.T) {
	itinerary := `DÍA 1: Mixto
Mañana (9:00 - 12:00)
Texto introductorio sin guion
- Actividad real
  - Actividad con sangría
`

	days := ParseItineraryIntoDays(itinerary)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"Actividad real", "Actividad con sangría"}, days[0].Morning)
}
