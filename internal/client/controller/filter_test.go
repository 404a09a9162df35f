package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type user struct {
	ID            string
	Name          string
	Email         string
	Status        string
	IsSubscribed  bool
	IsTrialActive bool
}

var userSpec = Spec[user]{
	ID:       func(u user) string { return u.ID },
	Defaults: func() user { return user{Status: "active"} },
	SearchFields: func(u user) []string {
		return []string{u.Name, u.Email}
	},
	Filters: map[string]func(user, string) bool{
		"id":     func(u user, v string) bool { return u.ID == v },
		"status": func(u user, v string) bool { return u.Status == v },
		"plan": func(u user, v string) bool {
			switch v {
			case "subscribed":
				return u.IsSubscribed
			case "trial":
				return u.IsTrialActive
			case "free":
				return !u.IsSubscribed && !u.IsTrialActive
			default:
				return false
			}
		},
	},
}

func sampleUsers() []user {
	return []user{
		{ID: "1", Name: "Arun Kumar", Email: "arun@email.com", Status: "active", IsSubscribed: true},
		{ID: "2", Name: "Priya Sharma", Email: "priya@email.com", Status: "active", IsTrialActive: true},
		{ID: "3", Name: "Ravi Chandran", Email: "ravi@email.com", Status: "active", IsSubscribed: true},
		{ID: "4", Name: "Lakshmi Devi", Email: "lakshmi@email.com", Status: "inactive"},
	}
}

func TestApplyFilters_NoStateReturnsAll(t *testing.T) {
	users := sampleUsers()
	got := ApplyFilters(userSpec, users, FilterState{})
	assert.Equal(t, users, got)
}

func TestApplyFilters_SearchCaseInsensitive(t *testing.T) {
	users := sampleUsers()

	for _, search := range []string{"arun", "ARUN", "Arun", "  arun  "} {
		got := ApplyFilters(userSpec, users, FilterState{Search: search})
		assert.Len(t, got, 1, "search %q", search)
		assert.Equal(t, "Arun Kumar", got[0].Name)
	}
}

func TestApplyFilters_SearchMatchesAnyField(t *testing.T) {
	users := sampleUsers()

	// "priya" appears in both name and email of the same user.
	got := ApplyFilters(userSpec, users, FilterState{Search: "priya@"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Priya Sharma", got[0].Name)
}

func TestApplyFilters_PredicatesAreANDed(t *testing.T) {
	users := sampleUsers()

	got := ApplyFilters(userSpec, users, FilterState{
		Search:  "a", // matches every name
		Filters: map[string]string{"status": "active", "plan": "subscribed"},
	})

	ids := make([]string, 0, len(got))
	for _, u := range got {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestApplyFilters_AllAndEmptySelectionsInactive(t *testing.T) {
	users := sampleUsers()

	got := ApplyFilters(userSpec, users, FilterState{
		Filters: map[string]string{"status": "all", "plan": ""},
	})
	assert.Equal(t, users, got)
}

func TestApplyFilters_UnknownKeyIgnored(t *testing.T) {
	users := sampleUsers()
	got := ApplyFilters(userSpec, users, FilterState{
		Filters: map[string]string{"category": "Finance"},
	})
	assert.Equal(t, users, got)
}

// The filtered view is a subsequence of the input (order preserved, no
// invented items) and filtering is idempotent.
func TestApplyFilters_SubsequenceAndIdempotent(t *testing.T) {
	users := sampleUsers()
	states := []FilterState{
		{},
		{Search: "a"},
		{Search: "kumar"},
		{Filters: map[string]string{"status": "active"}},
		{Search: "r", Filters: map[string]string{"plan": "subscribed"}},
		{Search: "no such user"},
	}

	for _, state := range states {
		once := ApplyFilters(userSpec, users, state)

		// Subsequence: every result appears in the input, in order.
		idx := 0
		for _, item := range once {
			found := false
			for ; idx < len(users); idx++ {
				if users[idx] == item {
					found = true
					idx++
					break
				}
			}
			assert.True(t, found, "item %+v not in input order", item)
		}

		twice := ApplyFilters(userSpec, once, state)
		assert.Equal(t, once, twice)
	}
}

func TestApplyFilters_EmptyCollection(t *testing.T) {
	got := ApplyFilters(userSpec, nil, FilterState{Search: "arun"})
	assert.Empty(t, got)
}
