package shuffle

import "github.com/tetsuya-zama/guccicci/types"

// Identity is a shuffler that leaves every element in its original position.
//
// With Identity the formation pipeline becomes a pure function of roster
// order, which is what dry runs and deterministic tests rely on.
type Identity struct{}

var _ types.Shuffler = (*Identity)(nil)

// NewIdentity creates a new identity shuffler.
//
// Returns:
//   - *Identity: Shuffler that never reorders anything
//
// Example:
//
//	teams, err := guccicci.Form(&setting, shuffle.NewIdentity())
func NewIdentity() *Identity {
	return &Identity{}
}

// Shuffle implements types.Shuffler. It never calls swap and never fails.
func (*Identity) Shuffle(_ int, _ func(i, j int)) error {
	return nil
}
