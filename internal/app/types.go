package app

import (
	"encoding/json"
	"fmt"
)

// Project entity
type Project struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Visible            bool              `json:"visible"`
	OrderIndex         int               `json:"index"`
	AdditionalInfo     map[string]string `json:"additionalInformation"`
	RepositoryPatterns []string          `json:"repositories"`
	Contributions      []Contribution    `json:"contributions"`
}

// Copy returns deep copy of the project.
func (p Project) Copy() Project {
	c := p
	if p.AdditionalInfo != nil {
		c.AdditionalInfo = make(map[string]string, len(p.AdditionalInfo))
		for k, v := range p.AdditionalInfo {
			c.AdditionalInfo[k] = v
		}
	}
	if p.RepositoryPatterns != nil {
		c.RepositoryPatterns = make([]string, len(p.RepositoryPatterns))
		copy(c.RepositoryPatterns, p.RepositoryPatterns)
	}
	if p.Contributions != nil {
		c.Contributions = make([]Contribution, len(p.Contributions))
		copy(c.Contributions, p.Contributions)
	}

	return c
}

// ProjectChanges holds editable project fields.
// Nil Visible and OrderIndex leave current values untouched.
type ProjectChanges struct {
	Name               string
	Description        string
	AdditionalInfo     map[string]string
	RepositoryPatterns []string
	Visible            *bool
	OrderIndex         *int
}

// ProjectsQuery controls project listing.
type ProjectsQuery struct {
	IncludeHidden        bool
	IncludeContributions bool

	// Page is zero based. Paging is disabled when Size is 0.
	Page int
	Size int
}

const (
	contributionDayField = "day"
	contributionURLField = "repositoryUrl"
)

// Contribution is a day-stamped activity record tied to a repository url.
// Fields other than day and repository url are kept in Extra as received.
type Contribution struct {
	Day           string
	RepositoryURL string
	Extra         map[string]json.RawMessage
}

// MarshalJSON encodes contribution as one flat object.
func (c Contribution) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(c.Extra)+2)
	for k, v := range c.Extra {
		fields[k] = v
	}

	day, err := json.Marshal(c.Day)
	if err != nil {
		return nil, err
	}
	url, err := json.Marshal(c.RepositoryURL)
	if err != nil {
		return nil, err
	}
	fields[contributionDayField] = day
	fields[contributionURLField] = url

	return json.Marshal(fields)
}

// UnmarshalJSON decodes flat contribution object.
func (c *Contribution) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out Contribution
	if raw, ok := fields[contributionDayField]; ok {
		if err := json.Unmarshal(raw, &out.Day); err != nil {
			return fmt.Errorf("decoding %s: %w", contributionDayField, err)
		}
		delete(fields, contributionDayField)
	}
	if raw, ok := fields[contributionURLField]; ok {
		if err := json.Unmarshal(raw, &out.RepositoryURL); err != nil {
			return fmt.Errorf("decoding %s: %w", contributionURLField, err)
		}
		delete(fields, contributionURLField)
	}
	if len(fields) > 0 {
		out.Extra = fields
	}

	*c = out
	return nil
}

// PassResult summarizes one reconciliation pass.
type PassResult struct {
	Fetched    int `json:"fetched"`
	Assigned   int `json:"assigned"`
	Unassigned int `json:"unassigned"`
	Saved      int `json:"saved"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}
