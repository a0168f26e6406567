package types

// Shuffler reorders a sequence in place, or leaves it untouched, depending on
// the implementation.
//
// The interface follows the math/rand Shuffle contract (length plus a swap
// callback) so one implementation serves any slice type. The formation
// engine shuffles the leader pool and the distribution pool through whatever
// Shuffler it is handed, which keeps the algorithm deterministic and testable
// independent of randomness.
//
// Built-in implementations live in the shuffle package:
//   - Identity: No-op, for deterministic runs and tests
//   - Random: Uniform Fisher-Yates permutation
//
// Shuffler implementations should:
//   - Mutate only through the provided swap callback
//   - Treat every call as self-contained (no cross-call ordering state)
//   - Return an error only for unrecoverable environment failures
type Shuffler interface {
	// Shuffle permutes a sequence of n elements through swap.
	//
	// Parameters:
	//   - n: Number of elements in the sequence (n >= 0)
	//   - swap: Exchanges the elements at two indices
	//
	// Returns:
	//   - error: Unrecoverable shuffle failure (nil for the built-ins)
	Shuffle(n int, swap func(i, j int)) error
}
