package render

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/fuzzyface/pkg/complication"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

func TestRenderJSON(t *testing.T) {
	slots := complication.DefaultLayout(400, 400)
	slots[0].SetDrawable(complication.DrawableFor(complication.StyleRed))
	slots[1].SetEnabled(false)

	data, err := RenderJSON(Frame{Mode: Active, Time: quarterPastThree}, snapshot(style.Default()),
		WithJSONSize(400, 400),
		WithJSONSlots(slots),
	)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Phrase != "quarter past three or so" {
		t.Errorf("Phrase = %q", out.Phrase)
	}
	if out.Mode != "active" || out.Time != "15:16" {
		t.Errorf("Mode/Time = %s/%s, want active/15:16", out.Mode, out.Time)
	}
	if out.Config != style.Default() {
		t.Errorf("Config = %v, want defaults", out.Config)
	}
	if out.Colors.Primary == "" || out.Colors.Background == "" {
		t.Errorf("Colors = %+v, want background and primary", out.Colors)
	}
	if out.Complication != string(complication.StyleRed) {
		t.Errorf("Complication = %q", out.Complication)
	}
	if out.Geometry == nil || out.Geometry.Radius != 200 {
		t.Errorf("Geometry = %+v, want radius 200", out.Geometry)
	}
	if len(out.Slots) != 2 || out.Slots[0].Drawable != string(complication.StyleRed) || out.Slots[1].Enabled {
		t.Errorf("Slots = %+v", out.Slots)
	}
}

func TestRenderJSONHighlight(t *testing.T) {
	snap := snapshot(style.Default())
	f, err := NewFrame("highlight", quarterPastThree, snap.Palette)
	if err != nil {
		t.Fatal(err)
	}

	data, err := RenderJSON(f, snap)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Mode != "highlight" || out.Phrase != "" {
		t.Errorf("Mode/Phrase = %s/%q, want highlight with no phrase", out.Mode, out.Phrase)
	}
	if out.Colors.Text != "" {
		t.Errorf("Colors.Text = %q, want empty", out.Colors.Text)
	}
}
