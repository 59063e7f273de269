// maptool is a CLI utility for inspecting and rendering ASCII maps.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Faultbox/wolfcast/internal/assets"
	"github.com/Faultbox/wolfcast/internal/engine/debug"
	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/engine/raycast"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/ui"
	"github.com/Faultbox/wolfcast/internal/game/world"
	"github.com/Faultbox/wolfcast/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "segments", "segs":
		err = cmdSegments(args)
	case "check":
		err = cmdCheck(args)
	case "list", "ls":
		err = cmdList(args)
	case "render":
		err = cmdRender(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`maptool - raycaster map utility

Usage:
  maptool <command> [options]

Commands:
  info [-dir d] <map>              Show map information
  segments [-dir d] <map>          List wall segments
  check [-dir d] <map>...          Parse maps and report errors
  list [-dir d]                    List available maps
  render [options] <map>           Render a view to PNG

Maps are file paths or names from the built-in library and -dir.

Examples:
  maptool info e1m1
  maptool check maps/*.txt
  maptool render -angle 90 -o view.png e1m1`)
}

// library returns a map manager with dirs added.
func library(dirs []string) (*assets.Manager, error) {
	lib := assets.NewManager()
	for _, d := range dirs {
		if err := lib.AddDir(d); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

type dirList []string

func (d *dirList) String() string { return strings.Join(*d, ",") }

func (d *dirList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

// loadOne parses the flag set and loads its single map argument.
func loadOne(fs *flag.FlagSet, dirs *dirList, args []string) (*world.Map, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("usage: maptool %s [options] <map>", fs.Name())
	}
	lib, err := library(*dirs)
	if err != nil {
		return nil, err
	}
	defer lib.Close()
	return lib.LoadMap(fs.Arg(0))
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	var dirs dirList
	fs.Var(&dirs, "dir", "Extra map directory (repeatable)")

	m, err := loadOne(fs, &dirs, args)
	if err != nil {
		return err
	}

	g := m.Grid
	fmt.Printf("Map:         %s\n", m.Name)
	fmt.Printf("Size:        %d x %d\n", g.Width, g.Height)
	fmt.Printf("Open cells:  %d\n", g.OpenCells())
	if start, ok := g.Start(); ok {
		fmt.Printf("Start:       col %d, row %d, facing %s\n", start.Col, start.Row, start.Facing)
	} else {
		fmt.Println("Start:       none (first open cell)")
	}
	fmt.Printf("Segments:    %d\n", m.Vectors.Len())

	types := make(map[int]int)
	faces := make(map[world.Face]int)
	m.Vectors.Each(func(_ int, s world.WallSegment) bool {
		types[s.WallType]++
		faces[s.Face]++
		return true
	})

	keys := make([]int, 0, len(types))
	for k := range types {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	fmt.Println("\nBy wall type:")
	for _, k := range keys {
		c := world.WallColor(k)
		fmt.Printf("  %d  %6d  #%02x%02x%02x\n", k, types[k], c.R, c.G, c.B)
	}
	fmt.Println("\nBy face:")
	for f := world.FaceNorth; f <= world.FaceEast; f++ {
		fmt.Printf("  %-6s %6d\n", f, faces[f])
	}
	return nil
}

func cmdSegments(args []string) error {
	fs := flag.NewFlagSet("segments", flag.ExitOnError)
	var dirs dirList
	fs.Var(&dirs, "dir", "Extra map directory (repeatable)")

	m, err := loadOne(fs, &dirs, args)
	if err != nil {
		return err
	}

	fmt.Printf("%5s  %-15s  %-15s  %4s  %-5s  %s\n", "#", "A", "B", "TYPE", "FACE", "CELL")
	m.Vectors.Each(func(i int, s world.WallSegment) bool {
		fmt.Printf("%5d  (%5.1f,%5.1f)  (%5.1f,%5.1f)  %4d  %-5s  %d,%d\n",
			i, s.A.X, s.A.Y, s.B.X, s.B.Y, s.WallType, s.Face, s.Col, s.Row)
		return true
	})
	return nil
}

func cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var dirs dirList
	fs.Var(&dirs, "dir", "Extra map directory (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: maptool check [options] <map>...")
	}

	lib, err := library(dirs)
	if err != nil {
		return err
	}
	defer lib.Close()

	failed := 0
	for _, name := range fs.Args() {
		m, err := lib.LoadMap(name)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s (%dx%d, %d segments)\n", name, m.Grid.Width, m.Grid.Height, m.Vectors.Len())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d maps failed", failed, fs.NArg())
	}
	return nil
}

func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var dirs dirList
	fs.Var(&dirs, "dir", "Extra map directory (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib, err := library(dirs)
	if err != nil {
		return err
	}
	defer lib.Close()

	for _, name := range lib.List() {
		fmt.Println(name)
	}
	return nil
}

// renderOptions describes a single offline render.
type renderOptions struct {
	X, Y    float64 // <= 0 uses the map's spawn point
	Angle   float64 // degrees; < 0 uses the spawn heading
	FOV     float64 // degrees
	Rays    int     // 0 casts one ray per column
	Width   int
	Height  int
	Workers int
	Minimap bool
}

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var dirs dirList
	var opts renderOptions
	fs.Var(&dirs, "dir", "Extra map directory (repeatable)")
	output := fs.String("o", "render.png", "Output PNG path")
	fs.Float64Var(&opts.X, "x", 0, "Eye X (0 = spawn)")
	fs.Float64Var(&opts.Y, "y", 0, "Eye Y (0 = spawn)")
	fs.Float64Var(&opts.Angle, "angle", -1, "View angle in degrees, clockwise from east (-1 = spawn)")
	fs.Float64Var(&opts.FOV, "fov", 60, "Field of view in degrees")
	fs.IntVar(&opts.Rays, "rays", 0, "Rays to cast (0 = one per column)")
	fs.IntVar(&opts.Width, "width", 640, "Image width")
	fs.IntVar(&opts.Height, "height", 400, "Image height")
	fs.IntVar(&opts.Workers, "workers", 0, "Render workers (1 = single-threaded, 0 = all CPUs)")
	fs.BoolVar(&opts.Minimap, "minimap", false, "Draw the minimap overlay")

	m, err := loadOne(fs, &dirs, args)
	if err != nil {
		return err
	}

	fb, err := renderMap(m, opts)
	if err != nil {
		return err
	}
	if err := debug.SavePNG(*output, fb); err != nil {
		return err
	}
	fmt.Printf("Rendered %s to %s (%dx%d)\n", m.Name, *output, fb.Width, fb.Height)
	return nil
}

// renderMap draws one frame of m as seen from opts.
func renderMap(m *world.Map, opts renderOptions) (*framebuffer.FrameBuffer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.FOV <= 0 || opts.FOV >= 180 {
		return nil, fmt.Errorf("fov must be in (0, 180), got %v", opts.FOV)
	}
	if opts.Rays < 0 {
		return nil, fmt.Errorf("rays must not be negative, got %d", opts.Rays)
	}

	spawn := entity.NewPlayer(m.Grid, entity.DefaultPlayerOptions())
	view := spawn.View()
	view.FOV = math.Radians(opts.FOV)
	if opts.X > 0 && opts.Y > 0 {
		view.Position = math.Vec2{X: opts.X, Y: opts.Y}
	}
	if opts.Angle >= 0 {
		view.Angle = math.WrapAngle(math.Radians(opts.Angle))
	}

	rays := opts.Rays
	if rays == 0 {
		rays = opts.Width
	}

	r := raycast.New(opts.Workers, raycast.DefaultShadeDistance)
	fb := raycast.Render(r, view, m.Vectors, rays, opts.Width, opts.Height)
	if opts.Minimap {
		mm := ui.NewMinimap()
		mm.Label = m.Name
		mm.Draw(fb, m.Vectors, view)
	}
	return fb, nil
}
