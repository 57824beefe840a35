package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesSubstringFastPath(t *testing.T) {
	assert.True(t, Matches("Operation Alpha Bravo", "alpha"))
	assert.True(t, Matches("Water point survey", "SURVEY"))
}

func TestMatchesSubsequence(t *testing.T) {
	// o-p-a-l-p in order across "Operation Alpha Bravo"
	assert.True(t, Matches("Operation Alpha Bravo", "opalp"))
	assert.False(t, Matches("Operation Alpha", "xyz"))
	// In-order requirement: characters present but out of order do not match.
	assert.False(t, Matches("ab", "ba"))
}

func TestMatchesEmptyNeedleIsVacuouslyTrue(t *testing.T) {
	assert.True(t, Matches("anything", ""))
	assert.True(t, Matches("", ""))
}

func TestMatchesEmptyHaystackNeverMatches(t *testing.T) {
	assert.False(t, Matches("", "a"))
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, MatchesAny("pump", "Fix the pump", "irrelevant"))
	assert.False(t, MatchesAny("pump", "nothing", "here"))
	assert.True(t, MatchesAny(""))
}
