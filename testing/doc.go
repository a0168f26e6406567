// Package testing provides test utilities for the guccicci library.
//
// This package offers helpers for building rosters and settings files in
// tests. It follows Go's convention of providing testing utilities in a
// dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - Leader, Member: Terse attendee fixtures
//   - NewSetting: Setting assembly from attendees
//   - WriteSettings: Temp settings file on disk
//   - NewTestLogger: types.Logger backed by testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    guctest "github.com/tetsuya-zama/guccicci/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    setting := guctest.NewSetting(2,
//	        guctest.Leader("alice"),
//	        guctest.Leader("bob"),
//	        guctest.Member("carol"),
//	    )
//	    // Use setting for your tests
//	}
package testing
