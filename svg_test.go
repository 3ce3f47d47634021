package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSVGCanvas_Header verifies a fresh canvas starts with the XML
// declaration and viewBox.
func TestSVGCanvas_Header(t *testing.T) {
	c := NewSVGCanvas(800, 600, "white", 50)

	s := c.String()
	if !strings.HasPrefix(s, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>") {
		t.Errorf("missing XML declaration:\n%s", s)
	}
	if !strings.Contains(s, `viewBox="0 0 800 600"`) {
		t.Errorf("missing viewBox:\n%s", s)
	}
	if !strings.HasSuffix(s, "</svg>") {
		t.Errorf("missing closing tag")
	}
}

// TestSVGCanvas_TwoDecimalFormatting verifies every numeric attribute
// carries exactly two decimals.
func TestSVGCanvas_TwoDecimalFormatting(t *testing.T) {
	c := NewSVGCanvas(100, 100, "white", 10)

	c.Line(1, 2.5, 3.14159, 4, "black", 1)

	s := c.String()
	if !strings.Contains(s, `x1="1.00"`) {
		t.Errorf("x1 not two-decimal:\n%s", s)
	}
	if !strings.Contains(s, `y1="2.50"`) {
		t.Errorf("y1 not two-decimal:\n%s", s)
	}
	if !strings.Contains(s, `x2="3.14"`) {
		t.Errorf("x2 not rounded to two decimals:\n%s", s)
	}
}

// TestSVGCanvas_InsertionOrder verifies fragments appear in draw order.
func TestSVGCanvas_InsertionOrder(t *testing.T) {
	c := NewSVGCanvas(100, 100, "white", 10)

	c.Circle(10, 10, 5, "red")
	c.Circle(20, 20, 5, "blue")

	s := c.String()
	red := strings.Index(s, `fill="red"`)
	blue := strings.Index(s, `fill="blue"`)
	if red == -1 || blue == -1 {
		t.Fatalf("missing circles:\n%s", s)
	}
	if red > blue {
		t.Errorf("fragments out of order: red at %d, blue at %d", red, blue)
	}
}

// TestSVGCanvas_Clear verifies Clear drops accumulated fragments but
// keeps the header.
func TestSVGCanvas_Clear(t *testing.T) {
	c := NewSVGCanvas(100, 100, "white", 10)
	c.Circle(10, 10, 5, "red")

	c.Clear()

	s := c.String()
	if strings.Contains(s, "circle") {
		t.Errorf("Clear kept fragments:\n%s", s)
	}
	if !strings.Contains(s, "viewBox") {
		t.Errorf("Clear dropped the header")
	}
}

// TestSVGCanvas_LineStyled verifies dashed and dotted strokes carry a
// dasharray and solid ones do not.
func TestSVGCanvas_LineStyled(t *testing.T) {
	c := NewSVGCanvas(100, 100, "white", 10)

	c.LineStyled(0, 0, 10, 10, Red, 2, Dashed(4))
	c.LineStyled(0, 0, 10, 10, Red, 2, Dotted(3))
	c.LineStyled(0, 0, 10, 10, Red, 2, Solid())

	s := c.String()
	if !strings.Contains(s, `stroke-dasharray="4,4"`) {
		t.Errorf("dashed stroke missing dasharray:\n%s", s)
	}
	if !strings.Contains(s, `stroke-dasharray="1,3"`) {
		t.Errorf("dotted stroke missing dasharray:\n%s", s)
	}
	if strings.Count(s, "stroke-dasharray") != 2 {
		t.Errorf("solid stroke carries a dasharray:\n%s", s)
	}
}

// TestSVGCanvas_Grid verifies tick counts produce ticks+1 lines per
// direction.
func TestSVGCanvas_Grid(t *testing.T) {
	c := NewSVGCanvas(100, 100, "white", 10)

	c.Grid(10, 90, 10, 90, 4, 4, "lightgray")

	// 5 vertical + 5 horizontal lines.
	if n := strings.Count(c.String(), "<line "); n != 10 {
		t.Errorf("grid line count: got %d, want 10", n)
	}
}

// TestSVGCanvas_Save verifies the written file equals the in-memory
// document.
func TestSVGCanvas_Save(t *testing.T) {
	c := NewSVGCanvas(64, 64, "white", 4)
	c.Rect(1, 2, 3, 4, "red", "black", 1, 1)

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := strings.TrimRight(string(data), "\n")
	want := c.String()
	if got != want {
		t.Errorf("file content differs from String():\nfile:\n%s\nmemory:\n%s", got, want)
	}
}

// TestSVGCanvas_Rect verifies the rect attributes.
func TestSVGCanvas_Rect(t *testing.T) {
	c := NewSVGCanvas(100, 100, "white", 10)

	c.Rect(5, 6, 7, 8, "green", "black", 2, 0.5)

	s := c.String()
	for _, want := range []string{
		`x="5.00"`, `y="6.00"`, `width="7.00"`, `height="8.00"`,
		`fill="green"`, `stroke="black"`, `fill-opacity="0.50"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in:\n%s", want, s)
		}
	}
}
