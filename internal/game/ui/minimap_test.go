package ui

import (
	"image/color"
	gomath "math"
	"testing"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/world"
	"github.com/Faultbox/wolfcast/pkg/formats"
	"github.com/Faultbox/wolfcast/pkg/math"
)

var black = color.RGBA{0, 0, 0, 255}

func roomMap(t *testing.T) *world.VectorMap {
	t.Helper()
	grid, err := formats.ParseASCIIMap([]byte("#####\n#...#\n#...#\n#...#\n#####\n"))
	if err != nil {
		t.Fatalf("ParseASCIIMap: %v", err)
	}
	return world.NewVectorMap(grid)
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool { return gomath.Abs(float64(x)-float64(y)) <= float64(tol) }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func TestMinimapDraw(t *testing.T) {
	vm := roomMap(t)
	fb := framebuffer.New(200, 200)
	fb.Fill(black)

	view := entity.View{Position: math.Vec2{X: 2.5, Y: 2.5}, Angle: 3 * gomath.Pi / 2, FOV: math.Radians(60)}
	mm := NewMinimap()
	mm.Draw(fb, vm, view)

	// 160px for 5 cells: 32px per cell, origin at the 8px margin.
	if got := fb.At(88, 90); !near(got, mm.PlayerColor, 2) {
		t.Errorf("player marker pixel = %v, want %v", got, mm.PlayerColor)
	}
	if got := fb.At(48, 40); got.R < 40 {
		t.Errorf("expected wall stroke at (48,40), got %v", got)
	}
	if got := fb.At(58, 108); got != black {
		t.Errorf("open floor should stay background, got %v", got)
	}
	if got := fb.At(190, 190); got != black {
		t.Errorf("pixels outside the minimap must not change, got %v", got)
	}
	if got := fb.At(7, 7); got != mm.Border {
		t.Errorf("expected border at (7,7), got %v", got)
	}
	for i := 3; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] != 255 {
			t.Fatal("overlay must keep the frame opaque")
		}
	}
}

func TestMinimapKeepsSceneVisible(t *testing.T) {
	vm := roomMap(t)
	scene := color.RGBA{200, 100, 50, 255}
	fb := framebuffer.New(200, 200)
	fb.Fill(scene)

	view := entity.View{Position: math.Vec2{X: 2.5, Y: 2.5}, Angle: 3 * gomath.Pi / 2, FOV: math.Radians(60)}
	mm := NewMinimap()
	mm.Rays = 0
	mm.Draw(fb, vm, view)

	// Background alpha 170 leaves 85/255 of the scene.
	dimmed := color.RGBA{67, 33, 17, 255}
	for _, p := range [][2]int{{58, 108}, {110, 60}, {130, 130}} {
		if got := fb.At(p[0], p[1]); !near(got, dimmed, 2) {
			t.Errorf("pixel %v = %v, want the scene dimmed to about %v", p, got, dimmed)
		}
	}
	for _, p := range [][2]int{{7, 7}, {168, 7}, {7, 168}, {168, 168}, {88, 7}, {7, 88}} {
		if got := fb.At(p[0], p[1]); got != mm.Border {
			t.Errorf("border pixel %v = %v, want %v", p, got, mm.Border)
		}
	}
	if got := fb.At(6, 6); got != scene {
		t.Errorf("pixels outside the border must not change, got %v", got)
	}
}

func TestMinimapSkipsTinyFrames(t *testing.T) {
	vm := roomMap(t)
	fb := framebuffer.New(20, 20)
	fb.Fill(black)
	want := framebuffer.New(20, 20)
	want.Fill(black)

	NewMinimap().Draw(fb, vm, entity.View{Position: math.Vec2{X: 2.5, Y: 2.5}, FOV: 1})
	if !fb.Equal(want) {
		t.Error("minimap should not draw into a frame that cannot hold it")
	}
}

func TestMinimapShrinksToFit(t *testing.T) {
	vm := roomMap(t)
	fb := framebuffer.New(60, 300)
	mm := NewMinimap()

	l, ok := mm.place(fb, vm)
	if !ok {
		t.Fatal("expected a layout")
	}
	if l.box.Max.X > fb.Width || l.box.Max.Y > fb.Height {
		t.Errorf("box %v exceeds the frame", l.box)
	}
	if l.box.Dx() != 44 {
		t.Errorf("expected the box to shrink to 44px, got %d", l.box.Dx())
	}
}

func TestDrawText(t *testing.T) {
	fb := framebuffer.New(40, 20)
	fb.Fill(black)
	white := color.RGBA{255, 255, 255, 255}

	DrawText(fb, 2, 2, "W", white)

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if fb.At(x, y) != black {
				lit++
				if x < 2 || y < 2 || x >= 2+7 || y >= 2+13 {
					t.Fatalf("glyph pixel (%d,%d) outside its cell", x, y)
				}
			}
		}
	}
	if lit == 0 {
		t.Error("expected glyph pixels")
	}

	w, h := TextSize("abc")
	if w != 21 || h != 13 {
		t.Errorf("TextSize = %dx%d, want 21x13", w, h)
	}

	// Text running off the frame is clipped, not a panic.
	DrawText(fb, 35, 15, "clipped", white)
}
