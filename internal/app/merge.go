package app

// MergeContributions returns contributions that should be stored for a project.
//
// Latest batch replaces everything stored before: contributions missing from the batch are dropped.
// The batch must already be filtered to the project's repositories.
func MergeContributions(existing []Contribution, batch []Contribution) []Contribution {
	merged := make([]Contribution, 0, len(batch))
	merged = append(merged, batch...)

	return merged
}
