package feed

import (
	"github.com/janne6565/projectmanager/internal/app"
)

// contributionsResponse maps day key to contributions of that day.
type contributionsResponse map[string][]app.Contribution

// ToContributions returns contributions grouped by day.
// Contributions without own day get the day key they were listed under.
func (r contributionsResponse) ToContributions() map[string][]app.Contribution {
	out := make(map[string][]app.Contribution, len(r))
	for day, cs := range r {
		list := make([]app.Contribution, 0, len(cs))
		for _, c := range cs {
			if c.Day == "" {
				c.Day = day
			}
			list = append(list, c)
		}
		out[day] = list
	}

	return out
}
