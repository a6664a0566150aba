package scene

import (
	"math"
	"reflect"
	"testing"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
	"github.com/iburimskiy/holiday-scene/internal/config"
)

func fullLayout(t *testing.T) config.Layout {
	t.Helper()
	l, err := config.Preset(config.PresetFull)
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	return l
}

func assertFinite(t *testing.T, rec *canvas.Recorder) {
	t.Helper()
	for i, op := range rec.Ops {
		for _, sp := range op.Subpaths {
			for _, p := range sp.Points {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
					t.Fatalf("op %d (%v) has non-finite point %v", i, op.Kind, p)
				}
			}
		}
		for _, v := range op.Rect {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("op %d (%v) has non-finite rect %v", i, op.Kind, op.Rect)
			}
		}
	}
}

// --- Backdrop ---

func TestStarPosition(t *testing.T) {
	x, y, ok := StarPosition(3, 10, 800, 600)
	if !ok {
		t.Fatal("expected a star")
	}
	if x != math.Mod(3*77+10*0.4, 800) {
		t.Errorf("x = %v", x)
	}
	if y != 20+math.Mod(3*43, 450-40) {
		t.Errorf("y = %v", y)
	}
}

func TestStarsStayInSky(t *testing.T) {
	for tick := uint64(0); tick < 10000; tick += 97 {
		for i := 0; i < config.StarCount; i++ {
			x, y, ok := StarPosition(i, tick, 640, 480)
			if !ok {
				t.Fatal("expected stars on a 640x480 surface")
			}
			if x < 0 || x >= 640 {
				t.Fatalf("star %d x = %v outside [0, 640)", i, x)
			}
			if y < config.StarTop || y >= SnowLine(480)-config.StarTop {
				t.Fatalf("star %d y = %v outside the sky band", i, y)
			}
		}
	}
}

func TestStarPositionDegenerate(t *testing.T) {
	if _, _, ok := StarPosition(0, 0, 0, 600); ok {
		t.Error("zero width should have no stars")
	}
	if _, _, ok := StarPosition(0, 0, 800, 40); ok {
		t.Error("sky shorter than the star margins should have no stars")
	}
}

func TestDrawBackdropOrder(t *testing.T) {
	rec := &canvas.Recorder{}
	DrawBackdrop(canvas.NewPen(rec), 800, 600, 5)

	if len(rec.Ops) != 3 {
		t.Fatalf("ops = %d, want 3 (sky, ground, stars)", len(rec.Ops))
	}
	sky := rec.Ops[0]
	if sky.Kind != canvas.OpGradient || sky.Rect != [4]float64{0, 0, 800, 450} {
		t.Errorf("sky = %v %v", sky.Kind, sky.Rect)
	}
	if len(sky.Gradient) != 3 || sky.Gradient[1].Offset != 0.4 {
		t.Errorf("sky gradient = %v", sky.Gradient)
	}
	if ground := rec.Ops[1]; ground.Kind != canvas.OpFill || ground.Color != groundColor {
		t.Errorf("ground = %v %v", ground.Kind, ground.Color)
	}
	if stars := rec.Ops[2]; len(stars.Subpaths) != config.StarCount {
		t.Errorf("stars = %d, want %d", len(stars.Subpaths), config.StarCount)
	}
}

func TestDrawBackdropZeroSize(t *testing.T) {
	rec := &canvas.Recorder{}
	DrawBackdrop(canvas.NewPen(rec), 0, 0, 99)
	assertFinite(t, rec)
	if n := rec.Count(canvas.OpFill); n != 1 {
		t.Errorf("fills = %d, want only the ground", n)
	}
}

// --- Figures ---

func TestEveryKnownFigureIsDrawable(t *testing.T) {
	for _, name := range config.KnownFigures {
		if Figures[name] == nil {
			t.Errorf("no draw routine for %q", name)
		}
	}
	if len(Figures) != len(config.KnownFigures) {
		t.Errorf("Figures has %d entries, config knows %d", len(Figures), len(config.KnownFigures))
	}
}

func TestFiguresAreDeterministic(t *testing.T) {
	for name, draw := range Figures {
		t.Run(name, func(t *testing.T) {
			a, b := &canvas.Recorder{}, &canvas.Recorder{}
			draw(canvas.NewPen(a), 320, 240, 1.4, 1234)
			draw(canvas.NewPen(b), 320, 240, 1.4, 1234)
			if len(a.Ops) == 0 {
				t.Fatal("figure drew nothing")
			}
			if !reflect.DeepEqual(a.Ops, b.Ops) {
				t.Error("same arguments produced different drawings")
			}
			assertFinite(t, a)
		})
	}
}

func TestFiguresAnimate(t *testing.T) {
	for name, draw := range Figures {
		t.Run(name, func(t *testing.T) {
			a, b := &canvas.Recorder{}, &canvas.Recorder{}
			draw(canvas.NewPen(a), 0, 0, 1, 0)
			draw(canvas.NewPen(b), 0, 0, 1, 13)
			if reflect.DeepEqual(a.Ops, b.Ops) {
				t.Error("drawing did not change over time")
			}
		})
	}
}

func TestFigureAnchorAndScale(t *testing.T) {
	rec := &canvas.Recorder{}
	Santa(canvas.NewPen(rec), 100, 200, 2, 0)

	// The body is a radius 40 disc at the anchor.
	body := rec.Ops[0]
	for _, p := range body.Subpaths[0].Points {
		if d := math.Hypot(p.X-100, p.Y-200); math.Abs(d-80) > 1e-9 {
			t.Fatalf("body point %v is %v from anchor, want 80", p, d)
		}
	}
}

func TestSantaArmPivot(t *testing.T) {
	rec := &canvas.Recorder{}
	Santa(canvas.NewPen(rec), 0, 0, 1, 7)

	var arm *canvas.Op
	for i := range rec.Ops {
		if rec.Ops[i].Kind == canvas.OpStroke {
			arm = &rec.Ops[i]
			break
		}
	}
	if arm == nil {
		t.Fatal("no arm stroke")
	}
	pts := arm.Subpaths[0].Points
	if pts[0] != (canvas.Point{X: 30, Y: -10}) {
		t.Errorf("arm starts at %v, want shoulder (30, -10)", pts[0])
	}
	angle := SantaArmAngle(7)
	wantX, wantY := 30+30*math.Cos(angle), -10+30*math.Sin(angle)
	if math.Abs(pts[1].X-wantX) > 1e-9 || math.Abs(pts[1].Y-wantY) > 1e-9 {
		t.Errorf("hand at %v, want (%v, %v)", pts[1], wantX, wantY)
	}
}

func TestAnimationAngles(t *testing.T) {
	for tick := uint64(0); tick < 2000; tick++ {
		if a := SantaArmAngle(tick); a < -0.8-1e-12 || a > 0.4+1e-12 {
			t.Fatalf("santa arm %v", a)
		}
		if a := SnowmanArmAngle(tick); a < -0.7-1e-12 || a > 0.1+1e-12 {
			t.Fatalf("snowman arm %v", a)
		}
		if w := AntlerWiggle(tick); math.Abs(w) > 0.15 {
			t.Fatalf("antler wiggle %v", w)
		}
		if a := OrnamentAlpha(-30, tick); a < 0.4-1e-12 || a > 1+1e-12 {
			t.Fatalf("ornament alpha %v", a)
		}
	}
}

// --- Frame driver ---

func TestSceneTickIncrementsByOne(t *testing.T) {
	s := New(800, 600, fullLayout(t), testRand())
	if s.Running() {
		t.Error("scene should be idle before the first tick")
	}
	for want := uint64(1); want <= 500; want++ {
		s.Tick()
		if s.Time() != want {
			t.Fatalf("time = %d, want %d", s.Time(), want)
		}
	}
	if !s.Running() {
		t.Error("scene should be running after ticks")
	}
}

func TestSceneDrawOrder(t *testing.T) {
	s := New(800, 600, fullLayout(t), testRand())
	rec := &canvas.Recorder{}
	s.Step(rec)

	ops := rec.Ops
	if ops[0].Kind != canvas.OpClear {
		t.Fatalf("op 0 = %v, want clear", ops[0].Kind)
	}
	if ops[1].Kind != canvas.OpGradient {
		t.Fatalf("op 1 = %v, want sky gradient", ops[1].Kind)
	}
	// ground, stars
	wire := ops[4]
	if wire.Kind != canvas.OpStroke || wire.Color != wireColor || len(wire.Subpaths[0].Points) != config.LightCount {
		t.Fatalf("op 4 should be the light wire, got %v", wire.Kind)
	}
	flakesStart := 5 + 3*config.LightCount
	for i := 0; i < config.FlakeCount; i++ {
		op := ops[flakesStart+i]
		if op.Kind != canvas.OpFill || op.Color != flakeColor {
			t.Fatalf("op %d should be a flake, got %v %v", flakesStart+i, op.Kind, op.Color)
		}
	}
	figuresStart := flakesStart + config.FlakeCount
	if len(ops) <= figuresStart {
		t.Fatal("no figure drawing after snow")
	}
	// The house body is the first figure op: a wood rect centred at 0.15 width.
	house := ops[figuresStart]
	if house.Color != wood {
		t.Errorf("first figure op color = %v, want house wood", house.Color)
	}
	pts := house.Subpaths[0].Points
	centre := (pts[0].X + pts[1].X) / 2
	if math.Abs(centre-800*0.15) > 1e-9 {
		t.Errorf("house centred at x=%v, want %v", centre, 800*0.15)
	}
}

func TestSceneFiguresFollowLayoutOrder(t *testing.T) {
	layout := config.Layout{Figures: []config.Placement{
		{Figure: "tree", X: 0.2, Scale: 1},
		{Figure: "santa", X: 0.8, Scale: 1},
	}}
	s := New(1000, 800, layout, testRand())
	rec := &canvas.Recorder{}
	s.Draw(rec)

	figuresStart := 5 + 3*config.LightCount + config.FlakeCount
	if got := rec.Ops[figuresStart].Color; got != darkWood {
		t.Errorf("first figure op color = %v, want tree trunk", got)
	}
	if got := rec.Ops[len(rec.Ops)-1].Color; got != red {
		t.Errorf("last op color = %v, want santa's left arm", got)
	}
}

func TestSceneFigureScale(t *testing.T) {
	layout := config.Layout{Figures: []config.Placement{{Figure: "santa", X: 0.5, OffsetY: 10, Scale: 2}}}
	s := New(80, 48, layout, testRand())
	s.SetFigureScale(0.25)
	s.SetFigureScale(0)
	if s.FigureScale() != 0.25 {
		t.Fatalf("figure scale = %v, want 0.25", s.FigureScale())
	}
	rec := &canvas.Recorder{}
	s.Draw(rec)

	body := rec.Ops[5+3*config.LightCount+config.FlakeCount]
	ax := 40.0
	ay := SnowLine(48) - config.FigureBaseline*0.25 + 10*0.25
	for _, p := range body.Subpaths[0].Points {
		// radius 40 * scale 2 * figure scale 0.25
		if d := math.Hypot(p.X-ax, p.Y-ay); math.Abs(d-20) > 1e-9 {
			t.Fatalf("body point %v is %v from (%v, %v), want 20", p, d, ax, ay)
		}
	}
}

func TestSceneSkipsUnknownFigures(t *testing.T) {
	layout := config.Layout{Figures: []config.Placement{{Figure: "grinch", X: 0.5, Scale: 1}}}
	s := New(800, 600, layout, testRand())
	rec := &canvas.Recorder{}
	s.Draw(rec)
	if want := 5 + 3*config.LightCount + config.FlakeCount; len(rec.Ops) != want {
		t.Errorf("ops = %d, want %d", len(rec.Ops), want)
	}
}

func TestSceneResize(t *testing.T) {
	s := New(800, 600, fullLayout(t), testRand())
	before := make([]Bulb, config.LightCount)
	copy(before, s.Lights().Bulbs())
	flake := s.Snow().Flakes()[0]

	s.Resize(800, 600)
	if s.Snow().Flakes()[0] != flake {
		t.Error("resize to the same size should not reseed snow")
	}

	s.Resize(1600, 900)
	if w, h := s.Size(); w != 1600 || h != 900 {
		t.Errorf("size = %vx%v", w, h)
	}
	if s.Snow().Len() != config.FlakeCount {
		t.Errorf("flakes = %d after resize", s.Snow().Len())
	}
	bulbs := s.Lights().Bulbs()
	if len(bulbs) != config.LightCount {
		t.Fatalf("bulbs = %d after resize", len(bulbs))
	}
	for i, b := range bulbs {
		if b.Phase != before[i].Phase || b.Speed != before[i].Speed {
			t.Errorf("bulb %d lost its phase or speed", i)
		}
	}
	if bulbs[len(bulbs)-1].X != 1600 {
		t.Errorf("last bulb x = %v, want 1600", bulbs[len(bulbs)-1].X)
	}
	for i, f := range s.Snow().Flakes() {
		if f.X >= 1600 || f.Y >= 900 {
			t.Errorf("flake %d at (%v, %v) outside new size", i, f.X, f.Y)
		}
	}
}

func TestSceneNegativeAndZeroSize(t *testing.T) {
	s := New(-10, -10, fullLayout(t), testRand())
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("size = %vx%v, want clamped to 0", w, h)
	}
	rec := &canvas.Recorder{}
	for i := 0; i < 3; i++ {
		rec.Reset()
		s.Step(rec)
		assertFinite(t, rec)
	}
}
