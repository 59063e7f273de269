package main

import (
	"testing"

	"github.com/Faultbox/wolfcast/internal/engine/raycast"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/world"
	"github.com/Faultbox/wolfcast/pkg/math"
)

const room = `#####
#...#
#.>.#
#...#
#####`

func TestRenderMap(t *testing.T) {
	m, err := world.LoadMap("room", []byte(room))
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	opts := renderOptions{Angle: -1, FOV: 60, Width: 64, Height: 48, Workers: 1}
	fb, err := renderMap(m, opts)
	if err != nil {
		t.Fatalf("renderMap: %v", err)
	}

	view := entity.NewPlayer(m.Grid, entity.DefaultPlayerOptions()).View()
	want := raycast.Render(&raycast.SingleThreaded{}, view, m.Vectors, 64, 64, 48)
	if !fb.Equal(want) {
		t.Error("spawn render differs from the renderer output")
	}

	opts.X, opts.Y, opts.Angle, opts.Rays, opts.Workers = 1.5, 1.5, 90, 16, 4
	fb, err = renderMap(m, opts)
	if err != nil {
		t.Fatalf("renderMap: %v", err)
	}
	view = entity.View{Position: math.Vec2{X: 1.5, Y: 1.5}, Angle: math.Radians(90), FOV: math.Radians(60)}
	want = raycast.Render(&raycast.SingleThreaded{}, view, m.Vectors, 16, 64, 48)
	if !fb.Equal(want) {
		t.Error("custom view render differs from the renderer output")
	}
}

func TestRenderMapRejectsBadOptions(t *testing.T) {
	m, err := world.LoadMap("room", []byte(room))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts renderOptions
	}{
		{"zero width", renderOptions{FOV: 60, Height: 10}},
		{"zero fov", renderOptions{Width: 10, Height: 10}},
		{"wide fov", renderOptions{FOV: 180, Width: 10, Height: 10}},
		{"negative rays", renderOptions{FOV: 60, Rays: -1, Width: 10, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := renderMap(m, tt.opts); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDirList(t *testing.T) {
	var d dirList
	_ = d.Set("a")
	_ = d.Set("b")
	if d.String() != "a,b" {
		t.Errorf("got %q", d.String())
	}
}
