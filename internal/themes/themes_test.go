package themes

import "testing"

func TestLookup(t *testing.T) {
	c, ok := Lookup(PrairieGold)
	if !ok {
		t.Fatal("expected PRAIRIE_GOLD in catalog")
	}
	if c.ID != PrairieGold {
		t.Errorf("ID = %s, want %s", c.ID, PrairieGold)
	}
	if c.Colors.Background == "" || c.Colors.Text == "" {
		t.Error("expected palette colors to be populated")
	}

	if _, ok := Lookup("MYSTERY"); ok {
		t.Error("expected unknown id to miss")
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	c := Get("MYSTERY")
	if c.ID != Default {
		t.Errorf("fallback ID = %s, want %s", c.ID, Default)
	}
}

func TestCatalogSanity(t *testing.T) {
	if _, ok := Lookup(Default); !ok {
		t.Fatal("default theme missing from catalog")
	}
	for _, id := range All() {
		c := Get(id)
		if c.ID != id {
			t.Errorf("catalog entry %s has mismatched ID %s", id, c.ID)
		}
		if c.Label == "" {
			t.Errorf("catalog entry %s has no label", id)
		}
		if c.Physics.Viscosity < 0.6 || c.Physics.Viscosity > 3.0 {
			t.Errorf("catalog entry %s viscosity %v out of range", id, c.Physics.Viscosity)
		}
		if c.Typography.Casual < 0 || c.Typography.Casual > 1 {
			t.Errorf("catalog entry %s casual axis %v out of range", id, c.Typography.Casual)
		}
	}
}
