// Package cubesolver models the 3x3x3 Rubik's cube as a permutation
// group and solves arbitrary scrambles with a staged macro solver.
//
// # Features
//
//   - Cubie-level cube state (permutations plus orientations)
//   - Standard move notation parsing and formatting
//   - State validation against the reachable group
//   - Deterministic staged solver built on conjugated macros
//   - Session tracking with stage progress callbacks
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	state, scramble := cubesolver.Scramble(rng, 30)
//	fmt.Println("Scramble:", cubesolver.FormatMoves(scramble))
//
//	solution, err := cubesolver.Solve(context.Background(), state)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", cubesolver.FormatMoves(solution))
//
// Apply moves directly:
//
//	s := cubesolver.Solved()
//	s = s.Apply(cubesolver.R, cubesolver.U, cubesolver.RPrime, cubesolver.UPrime)
//
// # How the Solver Works
//
// The solver reduces a state through four stages: corner positions,
// corner twists, edge positions and edge flips. Each stage owns a
// small set of macros, commutator products whose effect on the cube
// is confined to a few slots, and a bounded breadth-first search
// finds short setup sequences that conjugate those macros onto the
// cubies being fixed. Solutions are far from move-count optimal but
// are produced quickly, deterministically and without lookup tables.
package cubesolver
