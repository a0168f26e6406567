package types

// Team is one formed team: a leader plus the members assigned to them.
//
// A team is created around its leader and only grows afterwards: Assign
// appends members in assignment order and nothing is ever removed. The
// member order carries no meaning beyond display.
type Team struct {
	leader  Person
	members []Person
}

// NewTeam creates a team led by the given person, with no members yet.
//
// Parameters:
//   - leader: The person leading the new team
//
// Returns:
//   - *Team: Initialized team
func NewTeam(leader Person) *Team {
	return &Team{leader: leader}
}

// Assign appends a member to the team.
//
// Assign performs no duplicate or capacity checking; the formation engine
// guarantees each person is assigned exactly once.
func (t *Team) Assign(member Person) {
	t.members = append(t.members, member)
}

// Leader returns the person leading this team.
func (t *Team) Leader() Person {
	return t.leader
}

// Members returns the assigned members in assignment order.
//
// Returns:
//   - []Person: Copied slice; mutating it does not touch the team
func (t *Team) Members() []Person {
	out := make([]Person, len(t.members))
	copy(out, t.members)

	return out
}

// MemberCount returns the number of assigned members, excluding the leader.
func (t *Team) MemberCount() int {
	return len(t.members)
}

// TotalSize returns the team size including the leader.
func (t *Team) TotalSize() int {
	return len(t.members) + 1
}

// TeamSet is the ordered result of a formation run.
//
// Teams are indexed by creation order: team 0 was given the first drafted
// leader. A TeamSet is immutable once returned from formation; accessors
// hand out copies.
type TeamSet struct {
	teams []Team
}

// NewTeamSet creates a team set from the given teams, in order.
//
// The teams are copied; the caller's slice is not retained.
//
// Parameters:
//   - teams: Teams in creation order
//
// Returns:
//   - *TeamSet: Immutable ordered collection
func NewTeamSet(teams []*Team) *TeamSet {
	owned := make([]Team, 0, len(teams))
	for _, t := range teams {
		owned = append(owned, *t)
	}

	return &TeamSet{teams: owned}
}

// Teams returns the teams in creation order.
//
// Returns:
//   - []Team: Copied slice; mutating it does not touch the set
func (ts *TeamSet) Teams() []Team {
	out := make([]Team, len(ts.teams))
	copy(out, ts.teams)

	return out
}

// Count returns the number of teams in the set.
func (ts *TeamSet) Count() int {
	return len(ts.teams)
}

// TotalPeople returns the number of people across all teams, leaders included.
func (ts *TeamSet) TotalPeople() int {
	total := 0
	for i := range ts.teams {
		total += ts.teams[i].TotalSize()
	}

	return total
}
