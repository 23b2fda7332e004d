package entities

// MatchQuality labels a match percentage for display
type MatchQuality struct {
	Label string `json:"label"`
	Tier  string `json:"tier"`
}

// MatchResult is the derived compatibility result between two personas.
// It is computed on demand and never persisted.
type MatchResult struct {
	Attendee         *Persona     `json:"attendee"`
	Score            int          `json:"score"`
	Percentage       int          `json:"percentage"`
	Reasons          []string     `json:"reasons"`
	SharedInterests  []string     `json:"sharedInterests"`
	SharedLookingFor []string     `json:"sharedLookingFor"`
	Quality          MatchQuality `json:"quality"`
}
