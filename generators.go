package cubesolver

// Face turn generators, built from cycle data rather than 20x20
// tables so the slot geometry stays reviewable.
//
// Corner slots: 0=DLF 1=DBL 2=UFL 3=UBL 4=DFR 5=DRB 6=UFR 7=URB.
// Edge slots:   0=DL 1=FL 2=BL 3=UL 4=DF 5=DB 6=UF 7=UB 8=DR 9=FR
// 10=BR 11=UR.
//
// A clockwise face turn cycles four corner slots and four edge slots.
// corners[i] moves to corners[i+1]; the cubie landing in corners[i]
// picks up the twist cTwist[i], and likewise flips for edges.

type cycleSpec struct {
	corners [4]uint8
	cTwist  [4]uint8
	edges   [4]uint8
	eFlip   [4]uint8
}

var faceSpecs = map[Face]cycleSpec{
	FaceF: {
		corners: [4]uint8{0, 2, 6, 4}, cTwist: [4]uint8{1, 2, 1, 2},
		edges: [4]uint8{4, 1, 6, 9}, eFlip: [4]uint8{1, 1, 1, 1},
	},
	FaceR: {
		corners: [4]uint8{4, 6, 7, 5}, cTwist: [4]uint8{1, 2, 1, 2},
		edges: [4]uint8{8, 9, 11, 10}, eFlip: [4]uint8{0, 0, 0, 0},
	},
	FaceU: {
		corners: [4]uint8{6, 2, 3, 7}, cTwist: [4]uint8{0, 0, 0, 0},
		edges: [4]uint8{6, 3, 7, 11}, eFlip: [4]uint8{0, 0, 0, 0},
	},
	FaceB: {
		corners: [4]uint8{1, 5, 7, 3}, cTwist: [4]uint8{2, 1, 2, 1},
		edges: [4]uint8{7, 2, 5, 10}, eFlip: [4]uint8{1, 1, 1, 1},
	},
	FaceL: {
		corners: [4]uint8{0, 1, 3, 2}, cTwist: [4]uint8{2, 1, 2, 1},
		edges: [4]uint8{0, 2, 3, 1}, eFlip: [4]uint8{0, 0, 0, 0},
	},
	FaceD: {
		corners: [4]uint8{0, 4, 5, 1}, cTwist: [4]uint8{0, 0, 0, 0},
		edges: [4]uint8{0, 4, 8, 5}, eFlip: [4]uint8{0, 0, 0, 0},
	},
}

// genStates maps every legal move to its state. Populated once at
// package init; all later move application is a table lookup plus one
// Compose.
var genStates = make(map[Move]State, 18)

func init() {
	for face, spec := range faceSpecs {
		cw := spec.state()
		genStates[Move{Face: face, Turn: CW}] = cw
		genStates[Move{Face: face, Turn: Double}] = Compose(cw, cw)
		genStates[Move{Face: face, Turn: CCW}] = cw.Inverse()
	}
}

// state expands a cycle spec into the clockwise quarter-turn state.
// Orientation deltas are slot indexed, so cTwist[i] and eFlip[i]
// land on the slot named corners[i] / edges[i].
func (sp cycleSpec) state() State {
	s := Solved()
	for i := 0; i < 4; i++ {
		s.cp[sp.corners[(i+1)%4]] = sp.corners[i]
		s.co[sp.corners[i]] = (2 * sp.cTwist[i]) % 3
		s.ep[sp.edges[(i+1)%4]] = sp.edges[i]
		s.eo[sp.edges[i]] = sp.eFlip[i]
	}
	return s
}

// generatorState looks up the state of a move, panicking on moves
// that were not produced by ParseMove or the predefined set. Internal
// callers only ever pass known moves.
func generatorState(m Move) State {
	g, ok := genStates[m]
	if !ok {
		panic("cubesolver: unknown move " + m.String())
	}
	return g
}
