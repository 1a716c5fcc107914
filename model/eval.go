// Package model - pure evaluation of objective expressions over acceptance
// vectors.
//
// The solver explores acceptance vectors aligned with Model.Candidates;
// these helpers evaluate revenue, slack, the tier objective, and floor
// satisfaction on any (possibly partial) vector. A partial vector — only a
// prefix decided, the rest false — evaluates as "reject everything
// undecided", which both bound arguments in the solver rely on: revenue and
// expected shows are monotone nondecreasing in acceptance.
package model

// Revenue returns the total revenue of the accepted candidates.
//
// Contract: len(accept) == len(m.Candidates).
//
// Complexity: O(B).
func (m *Model) Revenue(accept []bool) float64 {
	var sum float64
	for i, c := range m.Candidates {
		if accept[i] {
			sum += c.Revenue
		}
	}

	return sum
}

// SlackByDay returns w_d = max(0, expected_shows_d − cap_d) for every
// horizon day. Slack is non-negative by construction.
//
// Complexity: O(B·L + H).
func (m *Model) SlackByDay(accept []bool) map[int]float64 {
	expected := make([]float64, m.Dataset.Horizon+1)
	for i, c := range m.Candidates {
		if !accept[i] {
			continue
		}
		for _, d := range c.Days {
			expected[d] += c.Booking.ShowProb
		}
	}

	slack := make(map[int]float64, m.Dataset.Horizon)
	for d := 1; d <= m.Dataset.Horizon; d++ {
		w := expected[d] - float64(m.capByDay[d])
		if w < 0 {
			w = 0
		}
		slack[d] = w
	}

	return slack
}

// TotalSlack returns Σ_d max(0, expected_shows_d − cap_d).
//
// Complexity: O(B·L + H).
func (m *Model) TotalSlack(accept []bool) float64 {
	var sum float64
	for _, w := range m.SlackByDay(accept) {
		sum += w
	}

	return sum
}

// Objective evaluates the tier's own objective expression on accept.
//
// Complexity: O(B·L + H) for slack tiers, O(B) for revenue tiers.
func (m *Model) Objective(accept []bool) float64 {
	return m.EvalKind(m.Tier.Kind, accept)
}

// EvalKind evaluates the named objective expression on accept. Floors
// reference prior tiers by Kind, so both the current objective and every
// floor bound share this single evaluator.
//
// Complexity: as Objective.
func (m *Model) EvalKind(kind ObjectiveKind, accept []bool) float64 {
	switch kind {
	case MinimizeSlack:
		return m.TotalSlack(accept)
	default: // MaximizeRevenue; Build rejects anything else.
		return m.Revenue(accept)
	}
}

// FloorsSatisfied reports whether accept honors every locked floor within
// its tolerance: expr ≥ Value−ε for maximize floors, expr ≤ Value+ε for
// minimize floors.
//
// Complexity: O(F·(B·L + H)).
func (m *Model) FloorsSatisfied(accept []bool) bool {
	for _, f := range m.Floors {
		v := m.EvalKind(f.Kind, accept)
		if f.Kind.IsMaximize() {
			if v < f.Value-f.Epsilon {
				return false
			}
		} else if v > f.Value+f.Epsilon {
			return false
		}
	}

	return true
}
