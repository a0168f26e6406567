// Package shuffle provides built-in shuffler implementations.
//
// Shufflers determine how team formation randomizes the leader candidate pool
// and the member pool. The package includes two built-in shufflers:
//
//   - Random: Uniform Fisher-Yates permutation (production default)
//   - Identity: No-op passthrough (deterministic runs and tests)
//
// # Shuffler Selection Guide
//
// Random:
//   - Use for real events where the draw should be unpredictable
//   - Seedable for reproducible draws (WithSeed, WithSeedLabel, WithRand)
//   - Unseeded instances share the process-wide PRNG
//
// Identity:
//   - Use when the roster order should be preserved exactly
//   - Makes formation a pure function of its input
//   - No configuration
//
// Custom shufflers can be implemented by satisfying the types.Shuffler interface.
package shuffle
