package guccicci

import (
	"fmt"

	"github.com/tetsuya-zama/guccicci/shuffle"
	"github.com/tetsuya-zama/guccicci/types"
)

// Form splits the attendees described by setting into setting.NumTeams teams,
// each with exactly one leader, using shuffler to randomize both the leader
// draft and the member deal.
//
// Formation runs as a fixed pipeline:
//  1. Validate the setting (team count, enough leader candidates).
//  2. Shuffle the leader candidate pool and draft one leader per team from
//     the end of the pool.
//  3. Pool the undrafted candidates with the normal attendees, shuffle, and
//     deal them to the teams round-robin until the pool is empty.
//
// Teams earlier in the result receive any extra member when the headcount
// does not divide evenly, and team sizes never differ by more than one.
// Every attendee lands in exactly one team.
//
// Form never mutates setting. With a deterministic shuffler such as
// shuffle.NewIdentity() the result is a pure function of the roster order.
//
// Parameters:
//   - setting: Roster, team count, and flat flag
//   - shuffler: Shuffle strategy (see the shuffle subpackage)
//
// Returns:
//   - *TeamSet: The formed teams, in draft order
//   - error: ErrNilSetting, ErrNilShuffler, a validation error
//     (ErrTeamCountZero, *InsufficientLeadersError), or a wrapped shuffler
//     failure
//
// Example:
//
//	shuffler := shuffle.NewRandom(shuffle.WithSeed(42))
//	teams, err := guccicci.Form(&setting, shuffler)
func Form(setting *Setting, shuffler Shuffler) (*TeamSet, error) {
	if setting == nil {
		return nil, ErrNilSetting
	}
	if shuffler == nil {
		return nil, ErrNilShuffler
	}

	// Validation errors pass through unwrapped so callers can match them
	// with errors.Is and errors.As.
	if err := setting.Validate(); err != nil {
		return nil, err
	}

	candidates := setting.LeaderCandidates()
	if err := shufflePeople(candidates, shuffler); err != nil {
		return nil, fmt.Errorf("shuffle leader candidates: %w", err)
	}

	teams, rest := draftLeaders(candidates, setting.NumTeams)

	rest = append(rest, setting.NormalAttendees()...)
	if err := shufflePeople(rest, shuffler); err != nil {
		return nil, fmt.Errorf("shuffle remaining attendees: %w", err)
	}

	deal(teams, rest)

	return types.NewTeamSet(teams), nil
}

// Run forms teams from setting with the default random shuffler.
//
// It is the production entry point; use Form with a custom shuffler for
// deterministic or seeded runs.
func Run(setting *Setting) (*TeamSet, error) {
	return Form(setting, shuffle.NewRandom())
}

// draftLeaders creates one team per requested slot, drawing each leader from
// the end of the shuffled candidate pool. It returns the teams in draft order
// together with the undrafted candidates.
//
// Validation guarantees len(candidates) >= numTeams before this runs.
func draftLeaders(candidates []types.Person, numTeams int) ([]*types.Team, []types.Person) {
	teams := make([]*types.Team, 0, numTeams)
	for i := 0; i < numTeams; i++ {
		var leader types.Person
		leader, candidates = popLast(candidates)
		teams = append(teams, types.NewTeam(leader))
	}

	return teams, candidates
}

// deal assigns everyone in pool to the teams round-robin, drawing from the
// end of the pool. A pass stops as soon as the pool runs dry, so earlier
// teams end up at most one member larger than later ones.
func deal(teams []*types.Team, pool []types.Person) {
	for len(pool) > 0 {
		for _, team := range teams {
			if len(pool) == 0 {
				break
			}
			var member types.Person
			member, pool = popLast(pool)
			team.Assign(member)
		}
	}
}

func shufflePeople(people []types.Person, shuffler Shuffler) error {
	return shuffler.Shuffle(len(people), func(i, j int) {
		people[i], people[j] = people[j], people[i]
	})
}

func popLast(people []types.Person) (types.Person, []types.Person) {
	last := len(people) - 1
	return people[last], people[:last]
}
