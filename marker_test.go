package viz

import (
	"testing"
)

// TestDrawMarker_Circle verifies pixels inside the radius are painted
// and the corners of the bounding box are not.
func TestDrawMarker_Circle(t *testing.T) {
	c := NewPixelCanvas(20, 20, White, 0)
	c.Clear()

	c.DrawMarker(10, 10, Circle(4), Red)

	if got := c.GetPixel(10, 10); got != Red {
		t.Error("center not painted")
	}
	if got := c.GetPixel(14, 10); got != Red {
		t.Error("radius edge not painted")
	}
	if got := c.GetPixel(14, 14); got != White {
		t.Error("bounding box corner painted")
	}
	if got := c.GetPixel(15, 10); got != White {
		t.Error("pixel beyond radius painted")
	}
}

// TestDrawMarker_Square verifies the filled square extent.
func TestDrawMarker_Square(t *testing.T) {
	c := NewPixelCanvas(20, 20, White, 0)
	c.Clear()

	c.DrawMarker(10, 10, Square(6), Blue)

	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if got := c.GetPixel(10+dx, 10+dy); got != Blue {
				t.Errorf("square pixel (%d,%d) not painted", 10+dx, 10+dy)
			}
		}
	}
	if got := c.GetPixel(6, 10); got != White {
		t.Error("pixel outside square painted")
	}
}

// TestDrawMarker_Cross verifies the two arms and nothing diagonal.
func TestDrawMarker_Cross(t *testing.T) {
	c := NewPixelCanvas(20, 20, White, 0)
	c.Clear()

	c.DrawMarker(10, 10, Cross(3), Green)

	for i := -3; i <= 3; i++ {
		if got := c.GetPixel(10+i, 10); got != Green {
			t.Errorf("horizontal arm pixel %d not painted", i)
		}
		if got := c.GetPixel(10, 10+i); got != Green {
			t.Errorf("vertical arm pixel %d not painted", i)
		}
	}
	if got := c.GetPixel(11, 11); got != White {
		t.Error("diagonal pixel painted")
	}
}

// TestDrawMarker_Triangle verifies a wide base row and a narrow apex.
func TestDrawMarker_Triangle(t *testing.T) {
	c := NewPixelCanvas(20, 20, White, 0)
	c.Clear()

	c.DrawMarker(10, 14, Triangle(4), Red)

	// Base row spans the full width.
	for dx := -4; dx <= 4; dx++ {
		if got := c.GetPixel(10+dx, 14); got != Red {
			t.Errorf("base pixel (%d,14) not painted", 10+dx)
		}
	}
	// Apex is the single top pixel.
	if got := c.GetPixel(10, 10); got != Red {
		t.Error("apex not painted")
	}
	if got := c.GetPixel(11, 10); got != White {
		t.Error("pixel beside apex painted")
	}
}

// TestDrawMarker_OffCanvas verifies clipping at the edges.
func TestDrawMarker_OffCanvas(t *testing.T) {
	c := NewPixelCanvas(10, 10, White, 0)
	c.Clear()

	c.DrawMarker(0, 0, Circle(5), Red)
	c.DrawMarker(-20, -20, Square(4), Red)

	if got := c.GetPixel(0, 0); got != Red {
		t.Error("clipped circle center not painted")
	}
}
