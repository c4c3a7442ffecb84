package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeContributions(t *testing.T) {
	old := Contribution{Day: "2024-01-01", RepositoryURL: "https://github.com/acme/app"}
	fresh := Contribution{
		Day:           "2024-01-02",
		RepositoryURL: "https://github.com/acme/app",
		Extra:         map[string]json.RawMessage{"count": json.RawMessage(`3`)},
	}

	tests := []struct {
		name     string
		existing []Contribution
		batch    []Contribution
		want     []Contribution
	}{
		{
			name:     "nothing stored, nothing fetched",
			existing: nil,
			batch:    nil,
			want:     []Contribution{},
		},
		{
			name:     "nothing stored",
			existing: nil,
			batch:    []Contribution{fresh},
			want:     []Contribution{fresh},
		},
		{
			name:     "stored contributions missing from batch are dropped",
			existing: []Contribution{old},
			batch:    []Contribution{fresh},
			want:     []Contribution{fresh},
		},
		{
			name:     "empty batch clears contributions",
			existing: []Contribution{old, fresh},
			batch:    []Contribution{},
			want:     []Contribution{},
		},
		{
			name:     "batch taken verbatim, duplicates included",
			existing: []Contribution{old},
			batch:    []Contribution{old, old},
			want:     []Contribution{old, old},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeContributions(tt.existing, tt.batch)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeContributionsReturnsFreshSlice(t *testing.T) {
	batch := []Contribution{{Day: "d1", RepositoryURL: "r1"}}
	got := MergeContributions(nil, batch)

	got[0].Day = "changed"
	assert.Equal(t, "d1", batch[0].Day)
}
