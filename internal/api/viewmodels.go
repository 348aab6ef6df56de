package api

import (
	"fmt"
	"html/template"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/themes"
)

// IndexData is everything the landing page template needs: the resolved
// theme flattened into CSS-ready strings plus the headline conditions.
type IndexData struct {
	Theme themes.Config

	// CSS-ready strings derived from the theme.
	TransitionSeconds string
	SlantDeg          string
	FilterCSS         template.CSS

	Temp            string
	FeelsLike       string
	Label           string
	OverrideMessage string
	HolidayName     string
	Victory         bool
	UpdatedAt       time.Time
}

func newIndexData(snap *models.Snapshot, loc *time.Location) IndexData {
	data := IndexData{
		Theme:             snap.Theme,
		TransitionSeconds: fmt.Sprintf("%.2fs", snap.Theme.Physics.Viscosity),
		SlantDeg:          fmt.Sprintf("%.0fdeg", snap.Theme.Typography.Slant),
		FilterCSS: template.CSS(fmt.Sprintf("contrast(%d%%) saturate(%d%%) blur(%s)",
			snap.Theme.Effects.Contrast, snap.Theme.Effects.Saturate, snap.Theme.Effects.Blur)),
		Temp:            fmt.Sprintf("%.0f°C", snap.Weather.Temp),
		FeelsLike:       fmt.Sprintf("%.0f°C", snap.Weather.ApparentTemp),
		Label:           snap.Theme.Label,
		OverrideMessage: snap.Social.OverrideMessage,
		Victory:         snap.Social.Outcome == models.OutcomeVictory,
		UpdatedAt:       snap.CreatedAt.In(loc),
	}
	if snap.Temporal.Holiday != nil {
		data.HolidayName = snap.Temporal.Holiday.Name
	}
	return data
}
