package cubevision

import "fmt"

// Solver produces a move sequence that solves the cube state described
// by a 54-character notation string. Implementations are external to
// this package; they report ErrInvalidState for inputs that do not
// describe a reachable cube and ErrUnsolvable when no solution exists.
type Solver interface {
	Solve(notation string) ([]Move, error)
}

// SolveModel reads the model's notation, validates it and hands it to
// the solver. A solver failure comes back as "could not find a
// solution" with the solver's error preserved for errors.Is.
func SolveModel(s Solver, m *CubeModel) ([]Move, error) {
	notation, err := m.Notation()
	if err != nil {
		return nil, err
	}
	if err := ValidateNotation(notation); err != nil {
		return nil, err
	}

	moves, err := s.Solve(notation)
	if err != nil {
		return nil, fmt.Errorf("could not find a solution: %w", err)
	}
	return moves, nil
}
