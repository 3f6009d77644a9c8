package services

import (
	"regexp"
	"strconv"
	"strings"

	"rumbo/internal/models/response_models"
)

// NoScheduledActivities fills any time-of-day block the model left empty
// or formatted in a way the parser could not recognize.
const NoScheduledActivities = "No hay actividades programadas"

var (
	dayHeadingRe = regexp.MustCompile(`(?i)DÍA (\d+):\s*([^\n]+)`)
	daySplitRe   = regexp.MustCompile(`(?i)DÍA \d+`)
	morningRe    = regexp.MustCompile(`(?is)Mañana[^\n]*\n(.*?)(?:Tarde|Noche|Presupuesto estimado|DÍA|\z)`)
	afternoonRe  = regexp.MustCompile(`(?is)Tarde[^\n]*\n(.*?)(?:Noche|Presupuesto estimado|DÍA|\z)`)
	eveningRe    = regexp.MustCompile(`(?is)Noche[^\n]*\n(.*?)(?:Presupuesto estimado|DÍA|\z)`)
	budgetRe     = regexp.MustCompile(`(?i)Presupuesto estimado[^\n]*:\s*([^\n]+)`)
)

// ParseItineraryIntoDays slices free-form itinerary text into per-day
// records. Output structure is best-effort: segments without a day
// heading are dropped, unrecognized sections degrade to placeholders,
// and malformed input yields an empty slice rather than an error.
func ParseItineraryIntoDays(itinerary string) []response_models.DaySchedule {
	var days []response_models.DaySchedule

	for _, segment := range splitAtDayHeadings(itinerary) {
		heading := dayHeadingRe.FindStringSubmatch(segment)
		if heading == nil {
			continue
		}

		dayNum, err := strconv.Atoi(heading[1])
		if err != nil {
			continue
		}

		days = append(days, response_models.DaySchedule{
			Day:       dayNum,
			Title:     strings.TrimSpace(heading[2]),
			Morning:   parseActivities(firstGroup(morningRe, segment)),
			Afternoon: parseActivities(firstGroup(afternoonRe, segment)),
			Evening:   parseActivities(firstGroup(eveningRe, segment)),
			Budget:    strings.TrimSpace(firstGroup(budgetRe, segment)),
		})
	}

	return days
}

// splitAtDayHeadings cuts the text so each segment starts at a DÍA
// heading. Text before the first heading becomes its own segment and is
// later dropped for lacking a heading.
func splitAtDayHeadings(text string) []string {
	starts := daySplitRe.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return []string{text}
	}

	var segments []string
	if starts[0][0] > 0 {
		segments = append(segments, text[:starts[0][0]])
	}
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		segments = append(segments, text[loc[0]:end])
	}
	return segments
}

func firstGroup(re *regexp.Regexp, segment string) string {
	match := re.FindStringSubmatch(segment)
	if match == nil {
		return ""
	}
	return match[1]
}

func parseActivities(block string) []string {
	var activities []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		activity := strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if activity != "" {
			activities = append(activities, activity)
		}
	}
	if len(activities) == 0 {
		return []string{NoScheduledActivities}
	}
	return activities
}
