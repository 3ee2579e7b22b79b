package inspect

import (
	"fmt"
	"strings"
)

// Tier is the coarse risk bucket derived from a score.
type Tier int

const (
	TierClean Tier = iota
	TierLow
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "clean"
	}
}

// Score thresholds and rule weights.
const (
	mediumThreshold = 3
	highThreshold   = 5

	weightNoPhoto     = 2
	weightNoUsername  = 1
	weightNoBio       = 1
	weightBioKeyword  = 3
	weightNameKeyword = 3
)

// RiskAssessment is the outcome of scoring one profile. Findings keep the
// order in which rules fired.
type RiskAssessment struct {
	Score    int
	Tier     Tier
	Findings []string
}

// Clean reports whether no rule fired.
func (r RiskAssessment) Clean() bool {
	return len(r.Findings) == 0
}

type hit struct {
	finding string
	weight  int
}

type rule func(UserProfile) []hit

// Scorer evaluates a fixed rule table against user profiles.
// A Scorer is immutable and safe for concurrent use.
type Scorer struct {
	bioKeywords  []string
	nameKeywords []string
	rules        []rule
}

// NewScorer returns a Scorer with the default keyword sets.
func NewScorer() *Scorer {
	s := &Scorer{
		bioKeywords:  []string{"crypto", "investment", "forex", "manager", "guaranteed profit", "investor", "cashapp"},
		nameKeywords: []string{"admin", "support", "telegram", "premium", "service", "account"},
	}
	s.rules = []rule{
		noPhotoRule,
		noUsernameRule,
		noBioRule,
		s.bioKeywordRule,
		s.nameKeywordRule,
	}
	return s
}

// Score runs every rule in order and derives the tier from the total.
func (s *Scorer) Score(u UserProfile) RiskAssessment {
	var ra RiskAssessment
	for _, r := range s.rules {
		for _, h := range r(u) {
			ra.Score += h.weight
			ra.Findings = append(ra.Findings, h.finding)
		}
	}
	ra.Tier = tierFor(ra)
	return ra
}

func tierFor(ra RiskAssessment) Tier {
	if ra.Clean() {
		return TierClean
	}
	switch {
	case ra.Score >= highThreshold:
		return TierHigh
	case ra.Score >= mediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

func noPhotoRule(u UserProfile) []hit {
	if u.PhotoCount.Known && u.PhotoCount.Value == 0 {
		return []hit{{"no profile photo", weightNoPhoto}}
	}
	return nil
}

func noUsernameRule(u UserProfile) []hit {
	if strings.TrimSpace(u.Username) == "" {
		return []hit{{"no username set", weightNoUsername}}
	}
	return nil
}

func noBioRule(u UserProfile) []hit {
	if u.Bio.Known && u.Bio.Value == "" {
		return []hit{{"no bio", weightNoBio}}
	}
	return nil
}

// bioKeywordRule reports only the first matching keyword.
func (s *Scorer) bioKeywordRule(u UserProfile) []hit {
	if !u.Bio.Known || u.Bio.Value == "" {
		return nil
	}
	bio := strings.ToLower(u.Bio.Value)
	for _, kw := range s.bioKeywords {
		if strings.Contains(bio, kw) {
			return []hit{{fmt.Sprintf("bio contains suspicious term '%s'", kw), weightBioKeyword}}
		}
	}
	return nil
}

// nameKeywordRule reports every matching keyword. It only looks at the name
// resolved by the platform; the name carried by the forward is not scored.
func (s *Scorer) nameKeywordRule(u UserProfile) []hit {
	if !u.ResolvedName.Known {
		return nil
	}
	name := strings.ToLower(u.ResolvedName.Value)
	if strings.TrimSpace(name) == "" {
		return nil
	}
	var hits []hit
	for _, kw := range s.nameKeywords {
		if strings.Contains(name, kw) {
			hits = append(hits, hit{fmt.Sprintf("name contains suspicious term '%s'", kw), weightNameKeyword})
		}
	}
	return hits
}
