package themes

// ID identifies a visual theme in the catalog.
type ID string

const (
	Normal            ID = "NORMAL"
	Bunker            ID = "BUNKER"
	SunDog            ID = "SUN_DOG"
	DeepFreeze        ID = "DEEP_FREEZE"
	Slush             ID = "SLUSH"
	FalseSpring       ID = "FALSE_SPRING"
	PrairieGold       ID = "PRAIRIE_GOLD"
	MosquitoSwarm     ID = "MOSQUITO_SWARM"
	Construction      ID = "CONSTRUCTION"
	VictoryLap        ID = "VICTORY_LAP"
	NorthWind         ID = "NORTH_WIND"
	Smoke             ID = "SMOKE"
	WhiteOut          ID = "WHITE_OUT"
	Flood             ID = "FLOOD"
	NeutralRespectful ID = "NEUTRAL_RESPECTFUL"
	CozySomber        ID = "COZY_SOMBER"
	ManicParty        ID = "MANIC_PARTY"
	VictoryCold       ID = "VICTORY_COLD"
	VictoryPatio      ID = "VICTORY_PATIO"
	HyggeMode         ID = "HYGGE_MODE"
	Halloween         ID = "HALLOWEEN"
	Autumn            ID = "AUTUMN"
)

// Default is the catalog fallback used whenever a lookup misses.
const Default = Normal

// Colors holds the palette roles exposed to templates as CSS variables.
type Colors struct {
	Background string `json:"bg"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	Surface    string `json:"surface"`
}

// Physics tunes the motion feel of the page.
type Physics struct {
	// Viscosity is the transition-duration seed, 0.8 (fast) to 3.0 (sludge).
	Viscosity float64 `json:"viscosity"`
	Cursor    string  `json:"cursor"`
}

// Typography tunes the variable-font axes.
type Typography struct {
	// Casual is the Recursive CASL axis, 0 (stiff) to 1 (loose).
	Casual float64 `json:"casual"`
	// Slant is the wind lean in degrees, 0 to -15.
	Slant  float64 `json:"slant"`
	Weight int     `json:"weight"`
}

// Effects are the page-level CSS filter parameters.
type Effects struct {
	Contrast int     `json:"contrast"` // percent, 100 is neutral
	Blur     string  `json:"blur"`     // CSS length
	Noise    float64 `json:"noise"`    // grain overlay opacity 0-1
	Saturate int     `json:"saturate"` // percent, 100 is neutral
}

// Config is a full visual configuration for one theme.
type Config struct {
	ID         ID         `json:"id"`
	Label      string     `json:"label"`
	Colors     Colors     `json:"colors"`
	Physics    Physics    `json:"physics"`
	Typography Typography `json:"typography"`
	Effects    Effects    `json:"effects"`
}

// Lookup returns the configuration for id. The second return reports whether
// the id exists in the catalog; callers that just want a usable theme should
// use Get instead.
func Lookup(id ID) (Config, bool) {
	c, ok := catalog[id]
	return c, ok
}

// Get returns the configuration for id, falling back to the default theme
// when the id is unknown.
func Get(id ID) Config {
	if c, ok := catalog[id]; ok {
		return c
	}
	return catalog[Default]
}

// All returns the catalog ids, for diagnostics.
func All() []ID {
	ids := make([]ID, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	return ids
}

var catalog = map[ID]Config{
	Normal: {
		ID:         Normal,
		Label:      "Winnipeg, MB",
		Colors:     Colors{Background: "#F5F5F0", Text: "#1A1A1A", Accent: "#0055FF", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 1.0, Cursor: "default"},
		Typography: Typography{Casual: 0.5, Slant: 0, Weight: 500},
		Effects:    Effects{Contrast: 100, Blur: "0px", Noise: 0.03, Saturate: 100},
	},
	Bunker: {
		ID:         Bunker,
		Label:      "Shelter Mode",
		Colors:     Colors{Background: "#0F0E0E", Text: "#E0DACC", Accent: "#FF4400", Surface: "#1C1B1B"},
		Physics:    Physics{Viscosity: 2.2, Cursor: "default"},
		Typography: Typography{Casual: 0, Slant: 0, Weight: 700},
		Effects:    Effects{Contrast: 130, Blur: "0.5px", Noise: 0.15, Saturate: 80},
	},
	SunDog: {
		ID:         SunDog,
		Label:      "Sundog Glare",
		Colors:     Colors{Background: "#FFFFFF", Text: "#002244", Accent: "#00AACC", Surface: "#F0FBFF"},
		Physics:    Physics{Viscosity: 1.8, Cursor: "crosshair"},
		Typography: Typography{Casual: 0, Slant: 0, Weight: 600},
		Effects:    Effects{Contrast: 150, Blur: "0px", Noise: 0, Saturate: 120},
	},
	DeepFreeze: {
		ID:         DeepFreeze,
		Label:      "Deep Freeze",
		Colors:     Colors{Background: "#263238", Text: "#ECEFF1", Accent: "#0288D1", Surface: "#37474F"},
		Physics:    Physics{Viscosity: 2.0, Cursor: "default"},
		Typography: Typography{Casual: 0, Slant: 0, Weight: 700},
		Effects:    Effects{Contrast: 120, Blur: "0px", Noise: 0.1, Saturate: 80},
	},
	Slush: {
		ID:         Slush,
		Label:      "Melt Phase",
		Colors:     Colors{Background: "#C4C2BC", Text: "#2A2926", Accent: "#5C4830", Surface: "#D6D4D0"},
		Physics:    Physics{Viscosity: 1.4, Cursor: "progress"},
		Typography: Typography{Casual: 0.2, Slant: -2, Weight: 500},
		Effects:    Effects{Contrast: 90, Blur: "1px", Noise: 0.08, Saturate: 60},
	},
	FalseSpring: {
		ID:         FalseSpring,
		Label:      "Fool's Spring",
		Colors:     Colors{Background: "#FFFDE7", Text: "#33691E", Accent: "#C6FF00", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 0.9, Cursor: "default"},
		Typography: Typography{Casual: 0.8, Slant: 0, Weight: 400},
		Effects:    Effects{Contrast: 105, Blur: "0px", Noise: 0.02, Saturate: 115},
	},
	PrairieGold: {
		ID:         PrairieGold,
		Label:      "Golden Hour",
		Colors:     Colors{Background: "#FFF8E1", Text: "#3E2723", Accent: "#FFB300", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 0.9, Cursor: "default"},
		Typography: Typography{Casual: 1.0, Slant: 0, Weight: 400},
		Effects:    Effects{Contrast: 100, Blur: "0px", Noise: 0.02, Saturate: 110},
	},
	MosquitoSwarm: {
		ID:         MosquitoSwarm,
		Label:      "Humidex Warning",
		Colors:     Colors{Background: "#E8F5E9", Text: "#1B5E20", Accent: "#D50000", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 1.2, Cursor: "default"},
		Typography: Typography{Casual: 0.8, Slant: 2, Weight: 500},
		Effects:    Effects{Contrast: 100, Blur: "2px", Noise: 0.05, Saturate: 130},
	},
	Construction: {
		ID:         Construction,
		Label:      "Detour Ahead",
		Colors:     Colors{Background: "#FFF3E0", Text: "#212121", Accent: "#FF6F00", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 1.0, Cursor: "help"},
		Typography: Typography{Casual: 0, Slant: 0, Weight: 900},
		Effects:    Effects{Contrast: 110, Blur: "0px", Noise: 0.1, Saturate: 100},
	},
	VictoryLap: {
		ID:         VictoryLap,
		Label:      "WPG Victory",
		Colors:     Colors{Background: "#F0F4F8", Text: "#041E42", Accent: "#C8102E", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 0.8, Cursor: "default"},
		Typography: Typography{Casual: 0.1, Slant: -10, Weight: 800},
		Effects:    Effects{Contrast: 120, Blur: "0px", Noise: 0, Saturate: 110},
	},
	NorthWind: {
		ID:         NorthWind,
		Label:      "Windchill -40",
		Colors:     Colors{Background: "#E0F7FA", Text: "#006064", Accent: "#00BCD4", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 0.6, Cursor: "crosshair"},
		Typography: Typography{Casual: 0, Slant: -15, Weight: 600},
		Effects:    Effects{Contrast: 110, Blur: "0.5px", Noise: 0.05, Saturate: 90},
	},
	Smoke: {
		ID:         Smoke,
		Label:      "Air Quality 10+",
		Colors:     Colors{Background: "#D7CCC8", Text: "#3E2723", Accent: "#FF5722", Surface: "#EFEBE9"},
		Physics:    Physics{Viscosity: 1.1, Cursor: "not-allowed"},
		Typography: Typography{Casual: 0.5, Slant: 0, Weight: 500},
		Effects:    Effects{Contrast: 80, Blur: "3px", Noise: 0.05, Saturate: 120},
	},
	WhiteOut: {
		ID:         WhiteOut,
		Label:      "Zero Visibility",
		Colors:     Colors{Background: "#FAFAFA", Text: "#212121", Accent: "#9E9E9E", Surface: "#F5F5F5"},
		Physics:    Physics{Viscosity: 1.5, Cursor: "wait"},
		Typography: Typography{Casual: 0, Slant: 5, Weight: 700},
		Effects:    Effects{Contrast: 60, Blur: "4px", Noise: 0.4, Saturate: 0},
	},
	Flood: {
		ID:         Flood,
		Label:      "Sandbag Duty",
		Colors:     Colors{Background: "#8D6E63", Text: "#EFEBE9", Accent: "#795548", Surface: "#A1887F"},
		Physics:    Physics{Viscosity: 3.0, Cursor: "move"},
		Typography: Typography{Casual: 0.3, Slant: -1, Weight: 600},
		Effects:    Effects{Contrast: 90, Blur: "1px", Noise: 0.1, Saturate: 80},
	},
	NeutralRespectful: {
		ID:         NeutralRespectful,
		Label:      "Observance",
		Colors:     Colors{Background: "#F5F5F5", Text: "#111111", Accent: "#555555", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 1.0, Cursor: "default"},
		Typography: Typography{Casual: 0, Slant: 0, Weight: 400},
		Effects:    Effects{Contrast: 100, Blur: "0px", Noise: 0, Saturate: 50},
	},
	CozySomber: {
		ID:         CozySomber,
		Label:      "Hygge Dark",
		Colors:     Colors{Background: "#2B1B17", Text: "#D2B48C", Accent: "#8B4513", Surface: "#3E2723"},
		Physics:    Physics{Viscosity: 1.2, Cursor: "default"},
		Typography: Typography{Casual: 1.0, Slant: 0, Weight: 500},
		Effects:    Effects{Contrast: 90, Blur: "0px", Noise: 0.05, Saturate: 90},
	},
	ManicParty: {
		ID:         ManicParty,
		Label:      "Social Override",
		Colors:     Colors{Background: "#FFF0F5", Text: "#000000", Accent: "#FF00FF", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 0.8, Cursor: "pointer"},
		Typography: Typography{Casual: 1.0, Slant: -5, Weight: 700},
		Effects:    Effects{Contrast: 110, Blur: "0px", Noise: 0, Saturate: 150},
	},
	VictoryCold: {
		ID:         VictoryCold,
		Label:      "True North Strong",
		Colors:     Colors{Background: "#001F3F", Text: "#FFFFFF", Accent: "#004C97", Surface: "#003366"},
		Physics:    Physics{Viscosity: 0.7, Cursor: "default"},
		Typography: Typography{Casual: 0, Slant: -15, Weight: 800},
		Effects:    Effects{Contrast: 130, Blur: "0px", Noise: 0.05, Saturate: 100},
	},
	VictoryPatio: {
		ID:         VictoryPatio,
		Label:      "Whiteout Party",
		Colors:     Colors{Background: "#E6F3FF", Text: "#002244", Accent: "#004C97", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 0.9, Cursor: "default"},
		Typography: Typography{Casual: 0.5, Slant: -5, Weight: 600},
		Effects:    Effects{Contrast: 110, Blur: "0px", Noise: 0, Saturate: 120},
	},
	HyggeMode: {
		ID:         HyggeMode,
		Label:      "Cabin Vibe",
		Colors:     Colors{Background: "#FAF0E6", Text: "#4A3B32", Accent: "#DEB887", Surface: "#FFFFFF"},
		Physics:    Physics{Viscosity: 1.0, Cursor: "default"},
		Typography: Typography{Casual: 1.0, Slant: 0, Weight: 400},
		Effects:    Effects{Contrast: 95, Blur: "0px", Noise: 0.02, Saturate: 100},
	},
	Halloween: {
		ID:         Halloween,
		Label:      "All Hallows",
		Colors:     Colors{Background: "#1A0F1E", Text: "#F5E6CC", Accent: "#FF6F00", Surface: "#2A1A30"},
		Physics:    Physics{Viscosity: 1.3, Cursor: "crosshair"},
		Typography: Typography{Casual: 0.7, Slant: -3, Weight: 600},
		Effects:    Effects{Contrast: 115, Blur: "0.5px", Noise: 0.12, Saturate: 110},
	},
	Autumn: {
		ID:         Autumn,
		Label:      "Harvest",
		Colors:     Colors{Background: "#FBE9E7", Text: "#3E2723", Accent: "#D84315", Surface: "#FFF3E0"},
		Physics:    Physics{Viscosity: 1.1, Cursor: "default"},
		Typography: Typography{Casual: 0.6, Slant: -2, Weight: 500},
		Effects:    Effects{Contrast: 100, Blur: "0px", Noise: 0.04, Saturate: 105},
	},
}
