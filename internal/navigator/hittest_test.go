package navigator

import "testing"

func testGeometry() Geometry {
	return Geometry{
		Left:          100,
		Bottom:        50,
		RowWidth:      280,
		RowHeight:     28,
		Rows:          4,
		IconMargin:    20,
		IconSize:      14,
		ColorBarWidth: 6,
		TextSize:      12,
	}
}

func TestGeometry_Edges(t *testing.T) {
	g := testGeometry()

	if got := g.Right(); got != 380 {
		t.Errorf("Right = %v, want 380", got)
	}
	if got := g.Top(); got != 162 {
		t.Errorf("Top = %v, want 162", got)
	}
	if got := g.HideZoneX(); got != 360 {
		t.Errorf("HideZoneX = %v, want 360", got)
	}
	if got := g.MuteZoneX(); got != 320 {
		t.Errorf("MuteZoneX = %v, want 320", got)
	}
}

func TestGeometry_HitTest(t *testing.T) {
	g := testGeometry()

	tests := []struct {
		name     string
		x, y     float64
		wantRow  int
		wantZone Zone
	}{
		{"text zone bottom row", 150, 60, 0, ZoneText},
		{"text zone third row", 150, 110, 2, ZoneText},
		{"mute zone", 325, 60, 0, ZoneMute},
		{"lock zone", 345, 60, 0, ZoneLock},
		{"hide zone", 365, 60, 0, ZoneHide},
		{"left of popup", 99, 60, -1, ZoneNone},
		{"right of popup", 381, 60, -1, ZoneNone},
		{"below popup", 150, 49, -1, ZoneNone},
		{"above popup", 150, 163, -1, ZoneNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, zone := g.HitTest(tt.x, tt.y)
			if row != tt.wantRow || zone != tt.wantZone {
				t.Errorf("HitTest(%v, %v) = (%d, %s), want (%d, %s)",
					tt.x, tt.y, row, zone, tt.wantRow, tt.wantZone)
			}
		})
	}
}

func TestPlaceGeometry_CentersCurrentRowUnderPointer(t *testing.T) {
	g := testGeometry()
	placed := PlaceGeometry(g, 500, 300, 2, 1000, 800)

	// Row 2 spans [Bottom+2h, Bottom+3h); its center sits on the pointer.
	rowCenter := placed.RowBottom(2) + placed.RowHeight/2
	if rowCenter != 300 {
		t.Errorf("current row center = %v, want 300", rowCenter)
	}
	if popupCenter := placed.Left + placed.RowWidth/2; popupCenter != 500 {
		t.Errorf("popup horizontal center = %v, want 500", popupCenter)
	}
}

func TestPlaceGeometry_ClampsIntoRegion(t *testing.T) {
	g := testGeometry()

	placed := PlaceGeometry(g, 5, 5, 0, 1000, 800)
	if placed.Left != 10 || placed.Bottom != 10 {
		t.Errorf("near-origin placement = (%v, %v), want margin (10, 10)", placed.Left, placed.Bottom)
	}

	placed = PlaceGeometry(g, 995, 795, 3, 1000, 800)
	if placed.Left+placed.RowWidth != 990 {
		t.Errorf("right edge = %v, want 990", placed.Left+placed.RowWidth)
	}
	if placed.Bottom+placed.RowHeight*float64(placed.Rows) != 790 {
		t.Errorf("top edge = %v, want 790", placed.Bottom+placed.RowHeight*float64(placed.Rows))
	}
}
