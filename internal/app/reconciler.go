package app

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// ContributionFeed returns contributions grouped by day key.
type ContributionFeed interface {
	Contributions(ctx context.Context) (map[string][]Contribution, error)
}

// Catalog stores projects.
//
//go:generate mockgen -destination mock/app.go -package mock github.com/janne6565/projectmanager/internal/app Catalog,ContributionFeed,ContributionReconciler
type Catalog interface {
	ListAll(ctx context.Context) ([]Project, error)
	// GetByID returns NotFoundError if there's no project with given id.
	GetByID(ctx context.Context, id string) (*Project, error)
	// Save inserts project when its id is empty or unknown, overwrites stored project otherwise.
	Save(ctx context.Context, project Project) (*Project, error)
	// DeleteByID returns NotFoundError if there's no project with given id.
	DeleteByID(ctx context.Context, id string) error
	// UpdateContributions atomically replaces contributions of stored project with the ones returned by assign.
	// assign receives the project as currently stored. Returns NotFoundError if there's no project with given id,
	// missing project is never created.
	UpdateContributions(ctx context.Context, id string, assign func(Project) []Contribution) error
}

// ReconcilerMetrics records reconciliation pass statistics.
type ReconcilerMetrics interface {
	ObservePass(duration time.Duration, result PassResult, err error)
}

type nopMetrics struct{}

func (nopMetrics) ObservePass(time.Duration, PassResult, error) {}

// Reconciler assigns contributions from the feed to catalog projects.
//
// Every pass fetches the whole feed once, replaces contributions of every project with the ones matching its
// repository patterns and publishes contributions matching no project as unassigned.
// Feed or catalog listing failure aborts the pass before anything is written.
// Failure to save a single project doesn't stop the pass.
type Reconciler struct {
	feed         ContributionFeed
	catalog      Catalog
	matcher      *Matcher
	interval     time.Duration
	fetchTimeout time.Duration
	metrics      ReconcilerMetrics
	l            logrus.FieldLogger

	unassigned atomic.Pointer[[]Contribution]

	// Chan receiving results of scheduled passes - only used for unit testing.
	schedulerPasses chan PassResult

	// Func for canceling scheduler loop
	stop func()
	done chan struct{}
}

// NewReconciler creates new Reconciler instance.
// matcher and metrics are optional.
func NewReconciler(
	feed ContributionFeed,
	catalog Catalog,
	matcher *Matcher,
	interval time.Duration,
	fetchTimeout time.Duration,
	metrics ReconcilerMetrics,
	l logrus.FieldLogger,
) *Reconciler {
	if matcher == nil {
		matcher = defaultMatcher
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Reconciler{
		feed:         feed,
		catalog:      catalog,
		matcher:      matcher,
		interval:     interval,
		fetchTimeout: fetchTimeout,
		metrics:      metrics,
		l:            l,
	}
}

// RunScheduler runs reconciliation passes in background goroutine.
// First pass starts immediately, every next one starts interval after previous pass finished.
// Doesn't block.
func (r *Reconciler) RunScheduler() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.stop = cancel
	r.done = done

	go func() {
		defer close(done)

		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-timer.C:
			case <-ctx.Done():
				return
			}

			res, _ := r.RunPass(ctx)

			// This is intended for observing scheduler in unit tests.
			// In standard execution this is always nil.
			if r.schedulerPasses != nil {
				select {
				case r.schedulerPasses <- res:
				case <-ctx.Done():
				}
			}

			timer.Reset(r.interval)
		}
	}()
}

// Close stops scheduler and waits for running pass to finish.
func (r *Reconciler) Close() {
	if r.stop != nil {
		r.stop()
		<-r.done
		r.stop = nil
	}
}

// UnassignedContributions returns contributions not matching any project in the last completed pass.
// Returns empty list before first successful pass.
func (r *Reconciler) UnassignedContributions() []Contribution {
	snapshot := r.unassigned.Load()
	if snapshot == nil {
		return []Contribution{}
	}

	return append(make([]Contribution, 0, len(*snapshot)), (*snapshot)...)
}

// RunPass runs single reconciliation pass.
// Safe to call concurrently with scheduler, last finished pass wins.
func (r *Reconciler) RunPass(ctx context.Context) (PassResult, error) {
	start := time.Now()
	res, err := r.runPass(ctx)
	duration := time.Since(start)
	r.metrics.ObservePass(duration, res, err)

	if err != nil {
		r.l.Errorf("reconciliation pass failed after %s: %v", duration, err)
		return res, err
	}
	r.l.Infof(
		"reconciliation pass done in %s: fetched %d, assigned %d, unassigned %d, saved %d, skipped %d, failed %d",
		duration, res.Fetched, res.Assigned, res.Unassigned, res.Saved, res.Skipped, res.Failed,
	)

	return res, nil
}

func (r *Reconciler) runPass(ctx context.Context) (PassResult, error) {
	var res PassResult

	batch, err := r.fetch(ctx)
	if err != nil {
		return res, fmt.Errorf("fetching contributions: %w", err)
	}
	res.Fetched = len(batch)

	projects, err := r.catalog.ListAll(ctx)
	if err != nil {
		return res, fmt.Errorf("listing projects: %w", err)
	}

	unassigned := make([]Contribution, 0)
	for _, c := range batch {
		if !r.matchesAnyProject(c.RepositoryURL, projects) {
			unassigned = append(unassigned, c)
		}
	}

	for _, p := range projects {
		assigned, err := r.reconcileProject(ctx, p.ID, batch)
		switch {
		case IsNotFoundError(err):
			r.l.WithField("project", p.ID).Debug("project removed during reconciliation, skipping")
			res.Skipped++
		case err != nil:
			r.l.WithField("project", p.ID).Errorf("updating project contributions: %v", err)
			res.Failed++
		default:
			res.Saved++
			res.Assigned += assigned
		}
	}

	r.unassigned.Store(&unassigned)
	res.Unassigned = len(unassigned)

	return res, nil
}

func (r *Reconciler) fetch(ctx context.Context) ([]Contribution, error) {
	if r.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.fetchTimeout)
		defer cancel()
	}

	byDay, err := r.feed.Contributions(ctx)
	if err != nil {
		return nil, err
	}

	return FlattenContributions(byDay), nil
}

func (r *Reconciler) matchesAnyProject(repositoryURL string, projects []Project) bool {
	for _, p := range projects {
		if r.matcher.Matches(repositoryURL, p.RepositoryPatterns) {
			return true
		}
	}

	return false
}

// reconcileProject replaces project contributions with the batch filtered by patterns stored at write time.
// Returns number of contributions assigned to the project.
func (r *Reconciler) reconcileProject(ctx context.Context, id string, batch []Contribution) (int, error) {
	var assigned int
	err := r.catalog.UpdateContributions(ctx, id, func(project Project) []Contribution {
		filtered := r.filter(batch, project.RepositoryPatterns)
		assigned = len(filtered)
		return MergeContributions(project.Contributions, filtered)
	})
	if err != nil {
		return 0, fmt.Errorf("updating project: %w", err)
	}

	return assigned, nil
}

func (r *Reconciler) filter(batch []Contribution, patterns []string) []Contribution {
	filtered := make([]Contribution, 0)
	for _, c := range batch {
		if r.matcher.Matches(c.RepositoryURL, patterns) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

// FlattenContributions joins contributions of all days into one list, ordered by day key.
func FlattenContributions(byDay map[string][]Contribution) []Contribution {
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var flat []Contribution
	for _, day := range days {
		flat = append(flat, byDay[day]...)
	}

	return flat
}
