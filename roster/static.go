package roster

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/tetsuya-zama/guccicci/types"
)

// Static implements a setting source with a fixed in-memory setting.
type Static struct {
	mu      sync.RWMutex
	setting types.Setting
}

var _ types.SettingSource = (*Static)(nil)

// NewStatic creates a new static setting source.
//
// The source returns the same setting on every fetch until Update replaces
// it. Useful for testing and for callers that build the roster in code.
//
// Parameters:
//   - setting: The setting to serve
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := roster.NewStatic(types.Setting{
//	    Attendees: attendees,
//	    NumTeams:  2,
//	})
//	setting, _ := src.Fetch(ctx)
//	teams, err := guccicci.Run(setting)
func NewStatic(setting types.Setting) *Static {
	s := &Static{}
	s.store(setting)

	return s
}

// Fetch returns the held setting.
//
// Returns:
//   - *types.Setting: Copy of the setting; mutating it does not affect the source
//   - error: Always nil (never fails)
func (s *Static) Fetch(_ context.Context) (*types.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := cloneSetting(s.setting)

	return &out, nil
}

// Update replaces the held setting.
//
// This allows the static source to simulate settings changing between runs,
// which is useful for testing reload scenarios.
//
// Parameters:
//   - setting: New setting to serve
func (s *Static) Update(setting types.Setting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(setting)
}

func (s *Static) store(setting types.Setting) {
	s.setting = cloneSetting(setting)
}

// cloneSetting copies a setting deeply enough that nothing is shared: the
// attendee slice, each Leader flag, and the Flat flag are all fresh. A
// struct copy alone would leave the *bool fields pointing into the source.
func cloneSetting(setting types.Setting) types.Setting {
	out := setting
	out.Attendees = make([]types.Attendee, len(setting.Attendees))
	for i, attendee := range setting.Attendees {
		if attendee.Leader != nil {
			attendee.Leader = lo.ToPtr(*attendee.Leader)
		}
		out.Attendees[i] = attendee
	}

	if setting.Flat != nil {
		out.Flat = lo.ToPtr(*setting.Flat)
	}

	return out
}
