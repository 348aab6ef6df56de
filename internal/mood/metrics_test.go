package mood

import (
	"math"
	"testing"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
)

func TestViscosityBounds(t *testing.T) {
	prev := math.Inf(1)
	for temp := -60.0; temp <= 60; temp += 0.5 {
		v := Viscosity(temp)
		if v < 0.8 || v > 2.5 {
			t.Fatalf("Viscosity(%v) = %v, out of [0.8, 2.5]", temp, v)
		}
		if v > prev+1e-9 {
			t.Fatalf("Viscosity not non-increasing at %v: %v > %v", temp, v, prev)
		}
		prev = v
	}
}

func TestViscosityAnchors(t *testing.T) {
	tests := []struct {
		temp float64
		want float64
	}{
		{-30, 2.5},
		{-21, 2.5},
		{20, 1.0},
		{0, 1.6},
		{31, 0.8},
		{40, 0.8},
	}
	for _, tt := range tests {
		if got := Viscosity(tt.temp); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Viscosity(%v) = %v, want %v", tt.temp, got, tt.want)
		}
	}
}

func TestWindForce(t *testing.T) {
	for w := 0.0; w <= 120; w += 2.5 {
		f := WindForce(w)
		if f < 0 || f > 1 {
			t.Fatalf("WindForce(%v) = %v, out of [0, 1]", w, f)
		}
		if w >= 50 && f != 1 {
			t.Fatalf("WindForce(%v) = %v, want saturation at 1", w, f)
		}
	}
	if got := WindForce(25); got != 0.5 {
		t.Errorf("WindForce(25) = %v, want 0.5", got)
	}
}

func TestSeasonalNormal(t *testing.T) {
	if got := SeasonalNormal(15); math.Abs(got-(-13)) > 0.1 {
		t.Errorf("SeasonalNormal(15) = %v, want about -13", got)
	}
	if got := SeasonalNormal(196); math.Abs(got-26) > 0.2 {
		t.Errorf("SeasonalNormal(196) = %v, want about 26", got)
	}

	// Deviation is just the difference against the curve.
	if d := Deviation(-25, 15); math.Abs(d-(-12)) > 0.1 {
		t.Errorf("Deviation(-25, 15) = %v, want about -12", d)
	}
}

func TestColdStreak(t *testing.T) {
	tests := []struct {
		name   string
		minima []float64
		active bool
		days   int
	}{
		{name: "empty window", minima: nil, active: false, days: 0},
		{name: "too short", minima: []float64{-25, -30}, active: false, days: 2},
		{name: "three brutal days", minima: []float64{-21, -25, -30}, active: true, days: 3},
		{name: "broken streak", minima: []float64{-25, -10, -30}, active: false, days: 2},
		{name: "long window counts all qualifying days", minima: []float64{-25, -10, -22, -23, -24, -28}, active: true, days: 5},
		{name: "warm spell ends the grind", minima: []float64{-25, -26, -27, -5, -3, -1}, active: false, days: 3},
		{name: "threshold is strict", minima: []float64{-20, -20, -20}, active: false, days: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ColdStreak(tt.minima)
			if g.Active != tt.active || g.Days != tt.days {
				t.Errorf("ColdStreak() = {%v %d}, want {%v %d}", g.Active, g.Days, tt.active, tt.days)
			}
		})
	}
}

func TestMentalTemp(t *testing.T) {
	if got := MentalTemp(-15, models.OutcomeVictory); got != -5 {
		t.Errorf("victory: got %v, want -5", got)
	}
	if got := MentalTemp(-15, models.OutcomeDefeat); got != -20 {
		t.Errorf("defeat: got %v, want -20", got)
	}
	if got := MentalTemp(-15, models.OutcomeGameDay); got != -15 {
		t.Errorf("game day: got %v, want -15", got)
	}
	if got := MentalTemp(-15, models.OutcomeNone); got != -15 {
		t.Errorf("none: got %v, want -15", got)
	}
}

func TestClassifyPrecip(t *testing.T) {
	tests := []struct {
		code int
		want models.PrecipClass
	}{
		{0, models.PrecipNone},
		{3, models.PrecipNone},
		{51, models.PrecipRain},
		{63, models.PrecipRain},
		{81, models.PrecipRain},
		{56, models.PrecipIce},
		{57, models.PrecipIce},
		{66, models.PrecipIce},
		{67, models.PrecipIce},
		{71, models.PrecipSnow},
		{75, models.PrecipSnow},
		{85, models.PrecipSnow},
		{95, models.PrecipNone}, // thunderstorms are handled by the danger rule
	}
	for _, tt := range tests {
		if got := ClassifyPrecip(tt.code); got != tt.want {
			t.Errorf("ClassifyPrecip(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestSunLie(t *testing.T) {
	if !SunLie(-25, 10, true) {
		t.Error("clear, -25, daytime should be a sun lie")
	}
	if SunLie(-25, 10, false) {
		t.Error("night is never a sun lie")
	}
	if SunLie(-25, 60, true) {
		t.Error("overcast is never a sun lie")
	}
	if SunLie(-10, 10, true) {
		t.Error("-10 is not cold enough to lie about")
	}
}

func TestSeasonBiasFor(t *testing.T) {
	optimistic := []time.Month{time.March, time.April, time.May}
	for _, m := range optimistic {
		if SeasonBiasFor(m) != models.BiasOptimistic {
			t.Errorf("SeasonBiasFor(%s) should be optimistic", m)
		}
	}
	for _, m := range []time.Month{time.January, time.June, time.September, time.December} {
		if SeasonBiasFor(m) != models.BiasPessimistic {
			t.Errorf("SeasonBiasFor(%s) should be pessimistic", m)
		}
	}
}
