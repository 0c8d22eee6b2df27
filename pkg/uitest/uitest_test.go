package uitest

import (
	"testing"

	"github.com/go-facet/facet/pkg/widget"
)

func TestClickOnButton(t *testing.T) {
	tt := New(t)
	id := tt.NewButton("OK", 10, 10)
	clicks := tt.Clicks(id)

	tt.ClickOn(id)
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}

	tt.Click(500, 500)
	if *clicks != 1 {
		t.Errorf("clicks = %d after click elsewhere, want 1", *clicks)
	}
}

func TestHoverHighlights(t *testing.T) {
	tt := New(t)
	id := tt.NewButton("Hover me", 10, 10)

	tt.HoverOver(id)
	btn, err := tt.Manager().Button(id)
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	if !btn.Highlighted() {
		t.Error("button not highlighted under pointer")
	}

	tt.MoveMouse(500, 500)
	btn, err = tt.Manager().Button(id)
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	if btn.Highlighted() {
		t.Error("button still highlighted after pointer left")
	}
}

func TestButtonSizedFromLabel(t *testing.T) {
	tt := New(t)
	short := tt.NewButton("OK", 0, 0)
	long := tt.NewButton("A much longer label", 0, 100)

	shortSpatial, err := tt.Manager().Spatial(short)
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	longSpatial, err := tt.Manager().Spatial(long)
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	if shortSpatial.PreferredSize().Width >= longSpatial.PreferredSize().Width {
		t.Errorf("short label width %g not below long label width %g",
			shortSpatial.PreferredSize().Width, longSpatial.PreferredSize().Width)
	}
}

func TestContainerLaysOutButtons(t *testing.T) {
	tt := New(t)
	m := tt.Manager()
	container := tt.NewContainer(0, 0, 300, 100)
	ok := tt.NewButton("OK", 0, 0)
	cancel := tt.NewButton("Cancel", 0, 0)

	c, err := m.Container(container)
	if err != nil {
		t.Fatalf("Container: %v", err)
	}
	ctx := m.Context(container)
	if err := c.AddColumn(ctx, ok, widget.AlignLeft); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if err := c.AddColumn(ctx, cancel, widget.AlignRight); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	tt.Settle()

	okSpatial, err := m.Spatial(ok)
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	cancelSpatial, err := m.Spatial(cancel)
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	if okSpatial.Position().X >= cancelSpatial.Position().X {
		t.Errorf("left button at x=%g not left of right button at x=%g",
			okSpatial.Position().X, cancelSpatial.Position().X)
	}
	if cancelSpatial.Bounds().Right > 300 {
		t.Errorf("right button bounds %+v exceed container width", cancelSpatial.Bounds())
	}

	// Clicking still works after layout moved the buttons.
	clicks := tt.Clicks(ok)
	tt.ClickOn(ok)
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
}
