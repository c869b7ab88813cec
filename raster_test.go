package goldenmesh

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
)

func TestCanvas_Render(t *testing.T) {
	engine := New(200, 100, 20)
	canvas := NewCanvas(200, 100, 2)
	engine.Render(canvas)

	img := canvas.Frame(0, false)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("expected a 400x200 image, got %dx%d", b.Dx(), b.Dy())
	}

	bg := Background.NRGBA(1)
	corner := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if corner != bg {
		t.Errorf("expected the background color in the corner, got %v", corner)
	}
	// The central seed is drawn on the center of the area.
	center := color.NRGBAModel.Convert(img.At(200, 100)).(color.NRGBA)
	if center == bg {
		t.Error("expected the central seed to be painted")
	}
}

func TestCanvas_PostProcess(t *testing.T) {
	engine := New(120, 120, 15)
	canvas := NewCanvas(120, 120, 1)
	engine.Render(canvas)
	canvas.Mist()
	canvas.Caption("frame 1")

	gray := canvas.Frame(0, true).(*image.NRGBA)
	for i := 0; i < len(gray.Pix); i += 4 {
		if gray.Pix[i] != gray.Pix[i+1] || gray.Pix[i+1] != gray.Pix[i+2] {
			t.Fatalf("pixel %d is not gray", i/4)
		}
	}

	g1 := canvas.Frame(20, false).(*image.NRGBA)
	g2 := canvas.Frame(20, false).(*image.NRGBA)
	if !bytes.Equal(g1.Pix, g2.Pix) {
		t.Error("the grain should be deterministic")
	}
	if bytes.Equal(g1.Pix, canvas.Frame(0, false).(*image.NRGBA).Pix) {
		t.Error("the grain should alter the frame")
	}
}

func TestEncodePNG(t *testing.T) {
	engine := New(64, 48, 12)
	canvas := NewCanvas(64, 48, 1)
	engine.Render(canvas)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, canvas.Frame(0, false)); err != nil {
		t.Fatalf("unable to encode the frame: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("unable to decode the frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("unexpected size %dx%d", b.Dx(), b.Dy())
	}
}

func TestSVG(t *testing.T) {
	engine := New(300, 200, 25)
	engine.Tick(16)

	var buf bytes.Buffer
	svg := NewSVG(&buf, 300, 200)
	svg.Title = "tessellation"
	svg.Start()
	engine.Render(svg)
	svg.End()

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("expected a complete SVG document")
	}
	if !strings.Contains(out, "<title>tessellation</title>") {
		t.Error("expected the document title")
	}
	if n := strings.Count(out, "<line "); n != len(engine.Edges()) {
		t.Errorf("expected %d lines, got %d", len(engine.Edges()), n)
	}
	if n := strings.Count(out, "<circle "); n != len(engine.Seeds()) {
		t.Errorf("expected %d circles, got %d", len(engine.Seeds()), n)
	}
	if !strings.Contains(out, "fill:"+Background.Hex()) {
		t.Error("expected the background rectangle")
	}
}

func TestEncodeGIF(t *testing.T) {
	engine := New(80, 60, 10)

	var frames []image.Image
	for i := 0; i < 3; i++ {
		engine.Tick(16)
		canvas := NewCanvas(80, 60, 2)
		engine.Render(canvas)
		frames = append(frames, canvas.Frame(0, false))
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 2, 80, 60); err != nil {
		t.Fatalf("unable to encode the animation: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("unable to decode the animation: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(anim.Image))
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("unexpected frame size %dx%d", b.Dx(), b.Dy())
	}

	if err := EncodeGIF(&buf, nil, 2, 80, 60); err == nil {
		t.Error("expected an error without frames")
	}
}

func TestSavePNG(t *testing.T) {
	canvas := NewCanvas(32, 32, 1)
	New(32, 32, 8).Render(canvas)

	out := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(out, canvas.Frame(0, false)); err != nil {
		t.Fatalf("unable to save the frame: %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png"), canvas.Image()); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
