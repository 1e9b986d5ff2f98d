package assignment

import (
	"testing"
	"time"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDraw(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func specificRule(id, assignee, priority int) *ent.AssignmentRule {
	return &ent.AssignmentRule{ID: id, AssigneeID: assignee, Priority: priority, AssignmentType: "specific"}
}

func roundRobinRule(id, assignee int, last *time.Time) *ent.AssignmentRule {
	return &ent.AssignmentRule{ID: id, AssigneeID: assignee, AssignmentType: "round_robin", LastAssignedAt: last}
}

func percentageRule(id, assignee, pct int) *ent.AssignmentRule {
	return &ent.AssignmentRule{ID: id, AssigneeID: assignee, AssignmentType: "percentage", Percentage: pct}
}

func TestResolve_SpecificTakesPrecedence(t *testing.T) {
	r := &Resolver{Draw: fixedDraw(50)}
	now := time.Now()

	rules := []*ent.AssignmentRule{
		roundRobinRule(1, 10, nil),
		percentageRule(2, 20, 100),
		specificRule(3, 30, 5),
		specificRule(4, 40, 9),
	}

	out := r.Resolve(rules, now)
	require.NotNil(t, out.AssigneeID)
	assert.Equal(t, 30, *out.AssigneeID, "first specific rule in priority order wins")
	assert.Equal(t, StrategySpecific, out.Strategy)
	assert.Nil(t, out.Mutation, "specific rules are not bookkept")
}

func TestResolve_RoundRobinPrefersNeverAssigned(t *testing.T) {
	r := NewResolver()
	now := time.Now()
	earlier := now.Add(-time.Hour)
	later := now.Add(-time.Minute)

	rules := []*ent.AssignmentRule{
		roundRobinRule(1, 10, &later),
		roundRobinRule(2, 20, nil),
		roundRobinRule(3, 30, &earlier),
	}

	out := r.Resolve(rules, now)
	require.NotNil(t, out.AssigneeID)
	assert.Equal(t, 20, *out.AssigneeID, "null last_assigned_at sorts before any timestamp")
	assert.Equal(t, StrategyRoundRobin, out.Strategy)
	require.NotNil(t, out.Mutation)
	assert.Equal(t, 2, out.Mutation.RuleID)
	assert.Equal(t, now, out.Mutation.LastAssignedAt)
}

func TestResolve_RoundRobinFairnessOverFullCycle(t *testing.T) {
	r := NewResolver()

	rules := []*ent.AssignmentRule{
		roundRobinRule(1, 10, nil),
		roundRobinRule(2, 20, nil),
		roundRobinRule(3, 30, nil),
	}

	base := time.Now()
	var got []int
	for i := 0; i < 3; i++ {
		now := base.Add(time.Duration(i) * time.Second)
		out := r.Resolve(rules, now)
		require.NotNil(t, out.AssigneeID)
		require.NotNil(t, out.Mutation)
		got = append(got, *out.AssigneeID)

		// Apply the mutation the way the ingestor would.
		for _, rule := range rules {
			if rule.ID == out.Mutation.RuleID {
				at := out.Mutation.LastAssignedAt
				rule.LastAssignedAt = &at
				rule.AssignmentCount++
				rule.Version++
			}
		}
	}

	assert.Equal(t, []int{10, 20, 30}, got, "each rule assigned exactly once, in input order")

	// Cycle N+1 wraps around to the least recently assigned.
	out := r.Resolve(rules, base.Add(time.Minute))
	require.NotNil(t, out.AssigneeID)
	assert.Equal(t, 10, *out.AssigneeID)
}

func TestResolve_RoundRobinTieBreakIsStable(t *testing.T) {
	r := NewResolver()
	same := time.Now().Add(-time.Hour)

	rules := []*ent.AssignmentRule{
		roundRobinRule(7, 70, &same),
		roundRobinRule(8, 80, &same),
	}

	out := r.Resolve(rules, time.Now())
	require.NotNil(t, out.AssigneeID)
	assert.Equal(t, 70, *out.AssigneeID, "ties broken by input order")
}

func TestResolve_PercentageWalk(t *testing.T) {
	rules := []*ent.AssignmentRule{
		percentageRule(1, 10, 70),
		percentageRule(2, 20, 30),
	}

	cases := []struct {
		draw     float64
		assignee int
	}{
		{0, 10},
		{35.5, 10},
		{70, 10}, // boundary: r <= cumulative selects the first rule
		{70.01, 20},
		{99.99, 20},
	}

	for _, tc := range cases {
		r := &Resolver{Draw: fixedDraw(tc.draw)}
		out := r.Resolve(rules, time.Now())
		require.NotNil(t, out.AssigneeID, "draw %.2f", tc.draw)
		assert.Equal(t, tc.assignee, *out.AssigneeID, "draw %.2f", tc.draw)
		assert.Equal(t, StrategyPercentage, out.Strategy)
		require.NotNil(t, out.Mutation)
	}
}

func TestResolve_PercentageUnderAllocationSelectsNobody(t *testing.T) {
	rules := []*ent.AssignmentRule{
		percentageRule(1, 10, 40),
		percentageRule(2, 20, 30),
	}

	r := &Resolver{Draw: fixedDraw(85)}
	out := r.Resolve(rules, time.Now())
	assert.Nil(t, out.AssigneeID)
	assert.Equal(t, StrategyNone, out.Strategy)
	assert.Nil(t, out.Mutation)
}

func TestResolve_PercentageDistribution(t *testing.T) {
	rules := []*ent.AssignmentRule{
		percentageRule(1, 10, 70),
		percentageRule(2, 20, 30),
	}

	r := NewResolver()
	const samples = 20000
	counts := map[int]int{}
	for i := 0; i < samples; i++ {
		out := r.Resolve(rules, time.Now())
		require.NotNil(t, out.AssigneeID)
		counts[*out.AssigneeID]++
	}

	share := float64(counts[10]) / samples
	assert.InDelta(t, 0.70, share, 0.02, "70/30 split within tolerance")
}

func TestResolve_EmptyCandidateSet(t *testing.T) {
	r := NewResolver()

	out := r.Resolve(nil, time.Now())
	assert.Nil(t, out.AssigneeID)
	assert.Equal(t, StrategyNone, out.Strategy)
	assert.Nil(t, out.Mutation)
}

func TestResolve_MutationCarriesSeenVersion(t *testing.T) {
	r := NewResolver()
	rule := roundRobinRule(5, 50, nil)
	rule.Version = 12

	out := r.Resolve([]*ent.AssignmentRule{rule}, time.Now())
	require.NotNil(t, out.Mutation)
	assert.Equal(t, 12, out.Mutation.SeenVersion)
}
