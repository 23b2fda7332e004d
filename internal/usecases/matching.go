package usecases

import (
	"fmt"
	"sort"
	"strings"

	"eventlink.backend/internal/domain/entities"
)

// Scoring weights and caps. Interest overlap is worth up to 40 points,
// networking-goal overlap up to 60, so a perfect match scores 100.
const (
	interestPointsEach   = 10
	interestPointsCap    = 40
	lookingForPointsEach = 30
	lookingForPointsCap  = 60

	maxTaggedInterests = 3
	maxReasons         = 2

	// DefaultSuggestionLimit bounds ranked suggestion lists
	DefaultSuggestionLimit = 10
)

// intersect returns the elements of a that also appear in b, preserving
// a's order and dropping duplicates. Membership is exact string equality.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}

	var shared []string
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := inB[s]; ok {
			shared = append(shared, s)
		}
	}
	return shared
}

// ScoreMatch computes the compatibility result between two personas.
// Pure computation: no I/O, no error conditions; empty inputs score zero.
func ScoreMatch(user, candidate *entities.Persona) *entities.MatchResult {
	sharedInterests := intersect(user.Interests, candidate.Interests)
	sharedLookingFor := intersect(user.LookingFor, candidate.LookingFor)

	interestScore := len(sharedInterests) * interestPointsEach
	if interestScore > interestPointsCap {
		interestScore = interestPointsCap
	}

	lookingForScore := len(sharedLookingFor) * lookingForPointsEach
	if lookingForScore > lookingForPointsCap {
		lookingForScore = lookingForPointsCap
	}

	score := interestScore + lookingForScore

	// The caps already bound score to 100; clamp anyway so a future cap
	// change cannot push percentage out of range.
	percentage := score
	if percentage > 100 {
		percentage = 100
	}

	var reasons []string
	if len(sharedInterests) > 0 {
		reasons = append(reasons, interestsReason(sharedInterests))
	}
	if len(sharedLookingFor) > 0 {
		reasons = append(reasons, lookingForReason(sharedLookingFor))
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return &entities.MatchResult{
		Attendee:         candidate,
		Score:            score,
		Percentage:       percentage,
		Reasons:          reasons,
		SharedInterests:  sharedInterests,
		SharedLookingFor: sharedLookingFor,
		Quality:          QualityLabel(percentage),
	}
}

func interestsReason(shared []string) string {
	tagged := make([]string, 0, maxTaggedInterests)
	for i, s := range shared {
		if i == maxTaggedInterests {
			break
		}
		tagged = append(tagged, "#"+s)
	}

	list := strings.Join(tagged, ", ")
	if extra := len(shared) - maxTaggedInterests; extra > 0 {
		return fmt.Sprintf("You share %d interests: %s and %d more", len(shared), list, extra)
	}
	return fmt.Sprintf("You share %d interest(s): %s", len(shared), list)
}

func lookingForReason(shared []string) string {
	return fmt.Sprintf("You're both looking for: %s", strings.Join(shared, ", "))
}

// RankCandidates scores every candidate against the user, drops the user's
// own wallet and zero-score results, and returns the top entries sorted by
// descending score. Ties keep the candidate pool's original order.
func RankCandidates(user *entities.Persona, candidates []*entities.Persona, limit int) []*entities.MatchResult {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	results := make([]*entities.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.WalletAddress == user.WalletAddress {
			continue
		}
		result := ScoreMatch(user, candidate)
		if result.Score == 0 {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// QualityLabel maps a match percentage to a display label. Band lower
// bounds are inclusive.
func QualityLabel(percentage int) entities.MatchQuality {
	switch {
	case percentage >= 80:
		return entities.MatchQuality{Label: "Excellent Match", Tier: "excellent"}
	case percentage >= 60:
		return entities.MatchQuality{Label: "Great Match", Tier: "great"}
	case percentage >= 40:
		return entities.MatchQuality{Label: "Good Match", Tier: "good"}
	case percentage >= 20:
		return entities.MatchQuality{Label: "Potential Match", Tier: "potential"}
	default:
		return entities.MatchQuality{Label: "Low Match", Tier: "low"}
	}
}
