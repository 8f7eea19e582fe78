// Package cube provides a facelet-level 3x3 cube model. It tracks the
// 54 stickers directly, which makes it the natural backing for
// rendering; the solver works on the cubie representation instead and
// the two are cross-checked in tests.
package cube

import (
	"strings"

	"github.com/SeamusWaldron/cubesolver"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face indexes the six faces of the cube.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Cube represents a 3x3 Rubik's cube. Each face has 9 facelets
// indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
type Cube struct {
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation: white on top,
// green in front.
func New() *Cube {
	c := &Cube{}
	for face := Face(0); face < 6; face++ {
		color := solvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

func solvedColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// sticker names one facelet.
type sticker struct {
	face Face
	idx  int
}

// rings lists, for each face, the strip of 12 neighboring facelets in
// the order a clockwise turn carries them: the sticker at position i
// moves to position i+3.
var rings = map[Face][12]sticker{
	U: ringOf(F, [3]int{0, 1, 2}, L, [3]int{0, 1, 2}, B, [3]int{0, 1, 2}, R, [3]int{0, 1, 2}),
	D: ringOf(F, [3]int{6, 7, 8}, R, [3]int{6, 7, 8}, B, [3]int{6, 7, 8}, L, [3]int{6, 7, 8}),
	F: ringOf(U, [3]int{6, 7, 8}, R, [3]int{0, 3, 6}, D, [3]int{2, 1, 0}, L, [3]int{8, 5, 2}),
	B: ringOf(U, [3]int{2, 1, 0}, L, [3]int{0, 3, 6}, D, [3]int{6, 7, 8}, R, [3]int{8, 5, 2}),
	R: ringOf(U, [3]int{2, 5, 8}, B, [3]int{6, 3, 0}, D, [3]int{2, 5, 8}, F, [3]int{2, 5, 8}),
	L: ringOf(U, [3]int{0, 3, 6}, F, [3]int{0, 3, 6}, D, [3]int{0, 3, 6}, B, [3]int{8, 5, 2}),
}

func ringOf(f1 Face, i1 [3]int, f2 Face, i2 [3]int, f3 Face, i3 [3]int, f4 Face, i4 [3]int) [12]sticker {
	var r [12]sticker
	for k := 0; k < 3; k++ {
		r[k] = sticker{f1, i1[k]}
		r[3+k] = sticker{f2, i2[k]}
		r[6+k] = sticker{f3, i3[k]}
		r[9+k] = sticker{f4, i4[k]}
	}
	return r
}

// faceCycles are the on-face sticker cycles of a clockwise turn: the
// sticker at cycle position i moves to position i+1.
var faceCycles = [2][4]int{
	{0, 2, 8, 6},
	{1, 5, 7, 3},
}

// Move applies a face turn. turn follows move notation conventions:
// 1 clockwise, -1 counter-clockwise, 2 half turn.
func (c *Cube) Move(face Face, turn int) {
	n := 1
	switch turn {
	case -1:
		n = 3
	case 2:
		n = 2
	}
	for ; n > 0; n-- {
		c.turnCW(face)
	}
}

func (c *Cube) turnCW(face Face) {
	f := &c.Facelets[face]
	for _, cyc := range faceCycles {
		tmp := f[cyc[3]]
		f[cyc[3]] = f[cyc[2]]
		f[cyc[2]] = f[cyc[1]]
		f[cyc[1]] = f[cyc[0]]
		f[cyc[0]] = tmp
	}

	ring := rings[face]
	var old [12]Color
	for i, s := range ring {
		old[i] = c.Facelets[s.face][s.idx]
	}
	for i, s := range ring {
		c.Facelets[s.face][s.idx] = old[(i+9)%12]
	}
}

// Apply applies a parsed move.
func (c *Cube) Apply(m cubesolver.Move) {
	c.Move(moveFace(m.Face), int(m.Turn))
}

// ApplyMoves applies a sequence of moves.
func (c *Cube) ApplyMoves(moves []cubesolver.Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

func moveFace(f cubesolver.Face) Face {
	switch f {
	case cubesolver.FaceU:
		return U
	case cubesolver.FaceD:
		return D
	case cubesolver.FaceF:
		return F
	case cubesolver.FaceB:
		return B
	case cubesolver.FaceR:
		return R
	default:
		return L
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	for face := Face(0); face < 6; face++ {
		want := solvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != want {
				return false
			}
		}
	}
	return true
}

// String renders the cube as an unfolded net with U on top, the
// L F R B band in the middle and D at the bottom.
func (c *Cube) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		c.writeRow(&b, U, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			c.writeRow(&b, face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		c.writeRow(&b, D, row)
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Cube) writeRow(b *strings.Builder, face Face, row int) {
	for col := 0; col < 3; col++ {
		b.WriteString(c.Facelets[face][row*3+col].String())
		b.WriteByte(' ')
	}
}
