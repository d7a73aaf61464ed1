package domain

const (
	ConditionWeather      ConditionKey = "meteo"
	ConditionWind         ConditionKey = "vent"
	ConditionTerrain      ConditionKey = "terrain"
	ConditionSurface      ConditionKey = "piste"
	ConditionCourse       ConditionKey = "parcours"
	ConditionParticipants ConditionKey = "participants"
)

// NotAvailable is displayed for a condition that was not recorded.
const NotAvailable = "N/A"

// ConditionKey is one of the recognized condition keys. Wind/terrain and surface/course are
// alternative pairs: track events record wind and surface, cross-country events record terrain
// and course.
type ConditionKey string

// Conditions maps recognized condition keys to free text.
type Conditions map[ConditionKey]string

// Weather returns the recorded weather or NotAvailable.
func (c Conditions) Weather() string {
	return c.first(ConditionWeather)
}

// WindOrTerrain returns the first non-empty value of wind then terrain.
func (c Conditions) WindOrTerrain() string {
	return c.first(ConditionWind, ConditionTerrain)
}

// SurfaceOrCourse returns the first non-empty value of surface then course.
func (c Conditions) SurfaceOrCourse() string {
	return c.first(ConditionSurface, ConditionCourse)
}

// Participants returns the recorded participation or NotAvailable.
func (c Conditions) Participants() string {
	return c.first(ConditionParticipants)
}

func (c Conditions) first(keys ...ConditionKey) string {
	for _, k := range keys {
		if v := c[k]; v != "" {
			return v
		}
	}
	return NotAvailable
}
