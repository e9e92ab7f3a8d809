package world

import (
	"bytes"
	"sync"
	"testing"

	"roomba/internal/layout"

	"gopkg.in/yaml.v3"
)

func TestDataManagerDerivedData(t *testing.T) {
	dm := NewDataManager(referenceLayout(t))

	w := dm.Window()
	if w.TotalPixelW != 640 || w.TotalPixelH != 480 || w.CenterPixelW != 320 || w.CenterPixelH != 240 {
		t.Errorf("Unexpected window data: %+v", w)
	}

	g := dm.Grid()
	expected := GridData{
		SpriteWCount:   11,
		SpriteHCount:   8,
		MaxPixelTop:    40,
		MaxPixelRight:  545,
		MaxPixelBottom: 440,
		MaxPixelLeft:   45,
	}
	if g != expected {
		t.Errorf("Expected grid data %+v, got %+v", expected, g)
	}

	bounds := dm.Bounds()
	if bounds != (layout.BoundRect{Top: 40, Right: 545, Bottom: 440, Left: 45}) {
		t.Errorf("Unexpected bounds: %+v", bounds)
	}

	limits := dm.Limits()
	if limits[LimitTop] != 40 || limits[LimitRight] != 545 || limits[LimitBottom] != 440 || limits[LimitLeft] != 45 {
		t.Errorf("Unexpected limits: %v", limits)
	}
}

func TestDataManagerSetLayout(t *testing.T) {
	dm := NewDataManager(referenceLayout(t))

	bigger, err := layout.Calculate(layout.Viewport{Width: 800, Height: 600}, 50)
	if err != nil {
		t.Fatalf("Failed to calculate layout: %v", err)
	}
	dm.SetLayout(bigger)

	if dm.Bounds() != bigger.Bounds {
		t.Errorf("Bounds not updated: %+v vs %+v", dm.Bounds(), bigger.Bounds)
	}
	if dm.Layout() != bigger {
		t.Error("Layout not updated")
	}
	if dm.Window().TotalPixelW != 800 {
		t.Errorf("Window data not updated: %+v", dm.Window())
	}
}

func TestDataManagerConcurrentSnapshots(t *testing.T) {
	small := referenceLayout(t)
	big, err := layout.Calculate(layout.Viewport{Width: 800, Height: 600}, 50)
	if err != nil {
		t.Fatalf("Failed to calculate layout: %v", err)
	}
	dm := NewDataManager(small)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				dm.SetLayout(big)
			} else {
				dm.SetLayout(small)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		b := dm.Bounds()
		if b != small.Bounds && b != big.Bounds {
			t.Fatalf("Observed partially updated bounds: %+v", b)
		}
	}
	wg.Wait()
}

func TestDataManagerWriteYAML(t *testing.T) {
	dm := NewDataManager(referenceLayout(t))

	var buf bytes.Buffer
	if err := dm.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	var decoded map[string]map[string]int
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}
	if decoded["window_data"]["center_pixel_w"] != 320 {
		t.Errorf("Unexpected window_data: %v", decoded["window_data"])
	}
	if decoded["sprite_data"]["max_pixel_right"] != 545 {
		t.Errorf("Unexpected sprite_data: %v", decoded["sprite_data"])
	}
}
