package assignment

import (
	"math/rand"
	"sync"
	"time"

	"github.com/leadrouter/crm-backend/ent"
)

// Strategy identifies which selection strategy produced an outcome.
type Strategy string

const (
	StrategySpecific   Strategy = "SPECIFIC"
	StrategyRoundRobin Strategy = "ROUND_ROBIN"
	StrategyPercentage Strategy = "PERCENTAGE"
	StrategyNone       Strategy = "NONE"
)

// RuleMutation describes the bookkeeping update the caller must persist
// against the matched rule, atomically with the lead write. SeenVersion
// is the version the rule had when it was selected; the store applies
// the mutation with a compare-and-swap on that value.
type RuleMutation struct {
	RuleID         int
	SeenVersion    int
	LastAssignedAt time.Time
}

// Outcome is the result of resolving a candidate rule set.
type Outcome struct {
	AssigneeID *int
	Strategy   Strategy
	Mutation   *RuleMutation
}

// Resolver selects an assignee from a candidate rule set. It is a pure
// decision function: no I/O, no side effects. Draw yields uniform
// values in [0, 100) for percentage selection and is injectable for
// deterministic tests.
type Resolver struct {
	Draw func() float64
}

// NewResolver returns a resolver backed by a process-local random
// source seeded from the current time.
func NewResolver() *Resolver {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var mu sync.Mutex
	return &Resolver{
		Draw: func() float64 {
			mu.Lock()
			defer mu.Unlock()
			return rng.Float64() * 100
		},
	}
}

// Resolve picks at most one assignee from the candidate rules.
//
// Candidates must already be filtered to enabled rules matching the
// lead's workspace and source, ordered by ascending priority. Strategy
// precedence is SPECIFIC, then ROUND_ROBIN, then PERCENTAGE. Absence of
// a match is a valid outcome, never an error: the lead stays visibly
// unassigned.
func (r *Resolver) Resolve(rules []*ent.AssignmentRule, now time.Time) Outcome {
	var specific, roundRobin, percentage []*ent.AssignmentRule
	for _, rule := range rules {
		switch rule.AssignmentType {
		case "specific":
			specific = append(specific, rule)
		case "round_robin":
			roundRobin = append(roundRobin, rule)
		case "percentage":
			percentage = append(percentage, rule)
		}
	}

	if len(specific) > 0 {
		// Input order is ascending priority, so the first wins.
		// Specific rules are not bookkept.
		id := specific[0].AssigneeID
		return Outcome{AssigneeID: &id, Strategy: StrategySpecific}
	}

	if len(roundRobin) > 0 {
		chosen := leastRecentlyAssigned(roundRobin)
		id := chosen.AssigneeID
		return Outcome{
			AssigneeID: &id,
			Strategy:   StrategyRoundRobin,
			Mutation: &RuleMutation{
				RuleID:         chosen.ID,
				SeenVersion:    chosen.Version,
				LastAssignedAt: now,
			},
		}
	}

	if len(percentage) > 0 {
		if chosen := r.drawPercentage(percentage); chosen != nil {
			id := chosen.AssigneeID
			return Outcome{
				AssigneeID: &id,
				Strategy:   StrategyPercentage,
				Mutation: &RuleMutation{
					RuleID:         chosen.ID,
					SeenVersion:    chosen.Version,
					LastAssignedAt: now,
				},
			}
		}
		// Percentages summing under 100 leave a dead band: a draw above
		// the sum assigns nobody. Unassigned leads are the visible
		// signal of the misconfiguration.
		return Outcome{Strategy: StrategyNone}
	}

	return Outcome{Strategy: StrategyNone}
}

// leastRecentlyAssigned returns the rule with the oldest
// last_assigned_at. A nil timestamp means "never assigned" and sorts
// before any real time. Ties keep input order (stable).
func leastRecentlyAssigned(rules []*ent.AssignmentRule) *ent.AssignmentRule {
	chosen := rules[0]
	for _, rule := range rules[1:] {
		if olderThan(rule.LastAssignedAt, chosen.LastAssignedAt) {
			chosen = rule
		}
	}
	return chosen
}

func olderThan(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}

// drawPercentage walks the rules in input order accumulating their
// percentages and selects the first rule whose cumulative sum reaches
// the drawn value (r <= cumulative). Returns nil when the draw lands
// above the total.
func (r *Resolver) drawPercentage(rules []*ent.AssignmentRule) *ent.AssignmentRule {
	draw := r.Draw()
	cumulative := 0.0
	for _, rule := range rules {
		cumulative += float64(rule.Percentage)
		if draw <= cumulative {
			return rule
		}
	}
	return nil
}
