package ant

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		g, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d, %d) returned a grid alongside the error", dims[0], dims[1])
		}
	}
}

func TestNewGridStartsUnmarked(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	for i, c := range g.Cells() {
		if c != Unmarked {
			t.Fatalf("cell %d = %v, want %v", i, c, Unmarked)
		}
	}
	if g.Marked() != 0 {
		t.Fatalf("fresh grid reports %d marked cells", g.Marked())
	}
}

func TestWrapMatchesModulo(t *testing.T) {
	for w := 1; w <= 7; w++ {
		for x := -30; x <= 30; x++ {
			want := ((x % w) + w) % w
			got := Wrap(x, w)
			if got != want {
				t.Fatalf("Wrap(%d, %d) = %d, want %d", x, w, got, want)
			}
			if got < 0 || got >= w {
				t.Fatalf("Wrap(%d, %d) = %d out of range", x, w, got)
			}
		}
	}
}

func TestWrapSingleStep(t *testing.T) {
	cases := []struct{ in, extent, want int }{
		{-1, 5, 4},
		{5, 5, 0},
		{0, 5, 0},
		{4, 5, 4},
		{-1, 1, 0},
	}
	for _, tc := range cases {
		if got := Wrap(tc.in, tc.extent); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.in, tc.extent, got, tc.want)
		}
	}
}

func TestWrapPanicsOnEmptyExtent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Wrap with a zero extent should panic")
		}
	}()
	Wrap(3, 0)
}

func TestGetSetWrapAround(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	red := color.RGBA{R: 200, A: 255}

	g.Set(-1, -1, red)
	if got := g.Get(3, 2); got != red {
		t.Fatalf("Set(-1,-1) should land on (3,2), got %v", got)
	}
	if got := g.Get(7, 5); got != red {
		t.Fatalf("Get(7,5) should alias (3,2), got %v", got)
	}
	if g.Writes() != 1 {
		t.Fatalf("expected 1 write, got %d", g.Writes())
	}
}

func TestCellsRowMajor(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	blue := color.RGBA{B: 180, A: 255}
	g.Set(2, 1, blue)

	if idx := g.Index(2, 1); idx != 5 {
		t.Fatalf("Index(2,1) = %d, want 5", idx)
	}
	snap := g.Snapshot()
	if snap[1*3+2] != blue {
		t.Fatalf("snapshot not row-major: %v", snap)
	}

	snap[0] = blue
	if g.Get(0, 0) != Unmarked {
		t.Fatal("Snapshot must not alias the grid")
	}
}

func TestClearAndMarked(t *testing.T) {
	g, err := NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 1, color.RGBA{G: 10, A: 255})
	g.Set(2, 3, color.RGBA{R: 10, A: 255})
	// Alpha does not distinguish marked from unmarked.
	g.Set(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 0})

	if g.Marked() != 2 {
		t.Fatalf("expected 2 marked cells, got %d", g.Marked())
	}
	g.Clear()
	if g.Marked() != 0 {
		t.Fatalf("expected 0 marked cells after Clear, got %d", g.Marked())
	}
}
