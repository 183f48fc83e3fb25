package core

import "testing"

func TestFrame_RGBA(t *testing.T) {
	frame := Frame{Width: 2, Height: 1, RGB: []byte{1, 2, 3, 250, 251, 252}}

	img := frame.RGBA()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", img.Bounds())
	}

	first := img.RGBAAt(0, 0)
	second := img.RGBAAt(1, 0)
	if first.R != 1 || first.G != 2 || first.B != 3 || first.A != 255 {
		t.Errorf("Unexpected first pixel %v", first)
	}
	if second.R != 250 || second.G != 251 || second.B != 252 || second.A != 255 {
		t.Errorf("Unexpected second pixel %v", second)
	}
}

func TestFrame_RGBA_ShortData(t *testing.T) {
	frame := Frame{Width: 2, Height: 2, RGB: []byte{9, 9, 9}}

	img := frame.RGBA()
	if c := img.RGBAAt(1, 1); c.A != 0 {
		t.Errorf("Missing pixels should stay empty, got %v", c)
	}
}
