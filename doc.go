// Package cubevision reconstructs a Rubik's cube state from six
// camera-scanned faces and executes moves against it with animated
// layer turns.
//
// # Features
//
//   - Canonical ordering of detected facelet squares (tolerance-based
//     row grouping, order-independent)
//   - Notation conversion via center-color face identity inference
//   - Full 27-cubie model on an integer lattice with quaternion layer
//     rotation
//   - Frame-driven move engine with history cursor, step, play, pause
//     and reset
//   - Standard move notation including wide moves (R, R', R2, r)
//
// # Quick Start
//
// Reconstruct a cube from six captures and read its notation:
//
//	grids := [6]cubevision.FaceletGrid{up, right, front, down, left, back}
//
//	notation, err := cubevision.ToNotation(grids)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model := cubevision.NewCubeModel()
//	if err := model.RebuildFromFacelets(grids, cubevision.DefaultRowTolerance); err != nil {
//	    log.Fatal(err)
//	}
//
// # Applying Moves
//
// The model applies moves discretely:
//
//	model.Apply(cubevision.R, cubevision.U, cubevision.RPrime, cubevision.UPrime)
//	fmt.Println("Solved:", model.IsSolved())
//
// Or parse them from notation text:
//
//	moves, err := cubevision.ParseMoves("R U r' U2")
//
// # Animated Execution
//
// A MoveEngine turns moves into timed layer sweeps and keeps a
// replayable history:
//
//	engine := cubevision.NewMoveEngine(model,
//	    cubevision.WithTurnDuration(250*time.Millisecond),
//	)
//
//	engine.Enqueue(moves...)
//	engine.Play()
//	if err := engine.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// TUIs and render loops drive the engine themselves by calling
// Tick(now) once per frame and reading cubie positions mid-turn.
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubevision.R      // Right clockwise
//	cubevision.RPrime // Right counter-clockwise
//	cubevision.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// Wide(m) converts any of them to its wide variant.
package cubevision
