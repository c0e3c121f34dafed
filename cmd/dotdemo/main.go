// Command dotdemo renders a frame of gradient dots, lines and curves to a
// PNG file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/dotfx"
	"github.com/gogpu/dotfx/raster"
	"github.com/gogpu/dotfx/recording"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		dots    = flag.Int("dots", 12, "number of orbiting dots")
		output  = flag.String("output", "dotdemo.png", "output file")
		verbose = flag.Bool("v", false, "log drawing details to stderr")
	)
	flag.Parse()

	if *verbose {
		dotfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Draw into a recorder first so the frame can be inspected, then
	// replay it onto the raster canvas.
	rec := recording.NewRecorder(*width, *height)
	if err := drawFrame(rec, *dots); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	canvas := raster.NewCanvas(*width, *height, raster.WithBackground(dotfx.Hex("#10141c")))
	if err := rec.Playback(canvas); err != nil {
		log.Fatalf("Failed to replay %d commands: %v", len(rec.Commands()), err)
	}
	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d commands)\n", *output, *width, *height, len(rec.Commands()))
}

func drawFrame(s dotfx.Surface, n int) error {
	w, h := float64(s.Width()), float64(s.Height())
	center := dotfx.Pt(w/2, h/2)
	orbit := math.Min(w, h) * 0.35

	hub := dotfx.NewEntity(center,
		dotfx.WithSurface(s),
		dotfx.WithInitRadius(dotfx.FixedRadius(orbit*0.25)),
		dotfx.WithColor(dotfx.NewGradientTemplate(dotfx.GradientRadial, 0,
			dotfx.Stop(0, dotfx.Hex("#fff3b0")),
			dotfx.Stop(1, dotfx.Hex("#e09f3e")),
		)),
	)
	hub.Initialize()

	satellite := dotfx.NewGradientTemplate(dotfx.GradientLinear, 45,
		dotfx.Stop(0, dotfx.Hex("#9ed8db")),
		dotfx.Stop(1, dotfx.Hex("#467599")),
	).WithExtend(dotfx.ExtendReflect)
	tether := dotfx.NewStyleProfile("tether", dotfx.Literal("rgba(255,255,255,0.35)"),
		dotfx.Patch().WithLineWidth(1.5).WithDash(6, 4).WithLineCap(dotfx.LineCapRound))

	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(max(n, 1))
		pos := center.Add(dotfx.Pt(math.Cos(a), math.Sin(a)).Mul(orbit))
		dot := dotfx.NewEntity(pos,
			dotfx.WithParent(hub),
			dotfx.WithSurface(s),
			dotfx.WithInitRadius(dotfx.DerivedRadius(func(p, _ *dotfx.Entity) (float64, bool) {
				return p.Radius() * (0.2 + 0.1*float64(i%3)), true
			})),
			dotfx.WithColor(satellite),
		)
		dot.Initialize()

		if err := dotfx.Stroke(s, dotfx.Line(center, pos), tether); err != nil {
			return err
		}
		if err := drawDot(s, dot); err != nil {
			return err
		}
	}

	if err := drawDot(s, hub); err != nil {
		return err
	}

	// Flourishes along the bottom edge.
	base := h - 40
	wave := dotfx.NewStyleProfile("wave", dotfx.Literal("coral"), dotfx.Patch().WithLineWidth(4))
	if err := dotfx.Stroke(s, dotfx.CubicCurve(dotfx.Pt(40, base), dotfx.Pt(w/2, base),
		dotfx.Pt(w/6, base-60), dotfx.Pt(w/3, base+40)), wave); err != nil {
		return err
	}
	if err := dotfx.Stroke(s, dotfx.QuadraticCurve(dotfx.Pt(w/2, base), dotfx.Pt(w-40, base),
		dotfx.Pt(w*3/4, base-80)), wave.With(dotfx.Patch().WithColor(dotfx.Literal("gold")))); err != nil {
		return err
	}
	return dotfx.StrokeLine(s, dotfx.Pt(40, base+20), dotfx.Pt(w-40, base+20), dotfx.LineStyle{
		Color: dotfx.Literal("#ffffff55"),
		Width: 2,
		Dash:  []float64{2, 6},
	})
}

func drawDot(s dotfx.Surface, e *dotfx.Entity) error {
	style := dotfx.Patch().WithColor(e.Color().ColorObject())
	return dotfx.Fill(s, dotfx.Arc(e.Pos(), e.Radius()), style)
}
