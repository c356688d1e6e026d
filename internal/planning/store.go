// Package planning implements the application-layer state store for the
// negotiation preparation wizard. A single Store owns the one live aggregate,
// serialises every operation behind a mutex, and writes a snapshot through to
// the configured SnapshotStore after each successful mutation.
package planning

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

// Metrics receives store-level counters. The prometheus implementation lives
// in internal/metrics; the zero-dependency default is a no-op.
type Metrics interface {
	// Mutation is called once per successful mutating operation.
	Mutation(op string)
	// PersistFailure is called when a write-through snapshot save fails.
	PersistFailure()
}

type nopMetrics struct{}

func (nopMetrics) Mutation(string) {}
func (nopMetrics) PersistFailure() {}

// Store holds the single negotiation aggregate. All methods are safe for
// concurrent use. Reads hand out deep copies, so callers can never alias the
// internal state.
//
// Persistence is write-through and best-effort: a failed snapshot save is
// logged and counted but never fails the mutation — the in-memory state is
// the source of truth while the process lives.
type Store struct {
	mu      sync.Mutex
	data    *negotiation.NegotiationData
	snap    SnapshotStore
	log     logging.Logger
	metrics Metrics
	clock   func() time.Time
	newID   func() string
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source. Tests use a fixed clock to assert
// timestamp behaviour.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator overrides the entity identifier generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// NewStore builds a Store backed by snap and hydrates it from the latest
// snapshot. A missing snapshot starts fresh; a corrupt, version-incompatible,
// or unreadable one is logged and discarded in favour of defaults, so startup
// never fails on bad persisted state.
func NewStore(ctx context.Context, snap SnapshotStore, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		snap:    snap,
		log:     log,
		metrics: nopMetrics{},
		clock:   time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.data = s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) *negotiation.NegotiationData {
	payload, err := s.snap.Load(ctx)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			s.log.Warn("failed to load snapshot, starting with defaults", logging.Err(err))
		}
		return negotiation.NewDefaultData(s.clock())
	}

	data, err := DecodeSnapshot(payload)
	if err != nil {
		s.log.Warn("discarding unusable snapshot, starting with defaults",
			logging.Err(err),
			logging.String("code", apperrors.GetCode(err).String()),
		)
		return negotiation.NewDefaultData(s.clock())
	}

	s.log.Info("hydrated negotiation data from snapshot",
		logging.Int("currentStep", data.Metadata.CurrentStep),
		logging.Int("issues", len(data.Issues)),
	)
	return data
}

// mutate runs fn under the lock. When fn reports a change, the aggregate's
// UpdatedAt is refreshed and the new state is persisted write-through. When
// fn reports no change (a no-op on a missing identifier), neither timestamp
// nor snapshot is touched.
func (s *Store) mutate(ctx context.Context, op string, fn func(d *negotiation.NegotiationData) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fn(s.data) {
		return false
	}

	s.data.Metadata.UpdatedAt = s.clock()
	s.metrics.Mutation(op)
	s.persistLocked(ctx, op)
	return true
}

func (s *Store) persistLocked(ctx context.Context, op string) {
	payload, err := EncodeSnapshot(s.data)
	if err == nil {
		err = s.snap.Save(ctx, payload)
	}
	if err != nil {
		s.metrics.PersistFailure()
		s.log.Warn("failed to persist snapshot", logging.String("op", op), logging.Err(err))
	}
}

// Get returns a deep copy of the current aggregate.
func (s *Store) Get() *negotiation.NegotiationData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Completion derives the per-step completion status.
func (s *Store) Completion() negotiation.CompletionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Completion()
}

// UpdateGoals patches the step-1 goals.
func (s *Store) UpdateGoals(ctx context.Context, in GoalsInput) {
	s.mutate(ctx, "update_goals", func(d *negotiation.NegotiationData) bool {
		in.apply(&d.Goals)
		return true
	})
}

// AddIssue appends a new issue with a generated identifier and returns it.
func (s *Store) AddIssue(ctx context.Context, in IssueInput) negotiation.Issue {
	issue := negotiation.Issue{
		ID:              s.newID(),
		Name:            in.Name,
		Importance:      in.Importance,
		IdealValue:      in.IdealValue,
		AcceptableValue: in.AcceptableValue,
		BottomLine:      in.BottomLine,
		Unit:            in.Unit,
		Description:     in.Description,
	}
	s.mutate(ctx, "add_issue", func(d *negotiation.NegotiationData) bool {
		d.Issues = append(d.Issues, issue)
		return true
	})
	return issue
}

// UpdateIssue patches the issue with the given identifier. Returns false
// without touching any state when the identifier is unknown.
func (s *Store) UpdateIssue(ctx context.Context, id string, in IssueUpdateInput) bool {
	return s.mutate(ctx, "update_issue", func(d *negotiation.NegotiationData) bool {
		issue := d.IssueByID(id)
		if issue == nil {
			return false
		}
		in.apply(issue)
		return true
	})
}

// RemoveIssue deletes the issue with the given identifier. Anchor first-offer
// entries referencing the issue are deliberately left in place; the report
// renderer skips them. Returns false when the identifier is unknown.
func (s *Store) RemoveIssue(ctx context.Context, id string) bool {
	return s.mutate(ctx, "remove_issue", func(d *negotiation.NegotiationData) bool {
		for i := range d.Issues {
			if d.Issues[i].ID == id {
				d.Issues = append(d.Issues[:i], d.Issues[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AddBatnaOption appends a new alternative with a derived net value.
func (s *Store) AddBatnaOption(ctx context.Context, in BatnaOptionInput) negotiation.BatnaOption {
	option := negotiation.BatnaOption{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Gain:        in.Gain,
		DirectCost:  in.DirectCost,
		RiskPenalty: in.RiskPenalty,
		SwitchCost:  in.SwitchCost,
	}
	option.NetValue = negotiation.ComputeNetValue(option)
	s.mutate(ctx, "add_batna_option", func(d *negotiation.NegotiationData) bool {
		d.BatnaOptions = append(d.BatnaOptions, option)
		return true
	})
	return option
}

// UpdateBatnaOption patches the option with the given identifier and
// recomputes its net value. The stored best-option reference is not
// revisited; callers rerun CalculateBestBatna explicitly when they want a
// fresh selection. Returns false when the identifier is unknown.
func (s *Store) UpdateBatnaOption(ctx context.Context, id string, in BatnaOptionUpdateInput) bool {
	return s.mutate(ctx, "update_batna_option", func(d *negotiation.NegotiationData) bool {
		option := d.BatnaOptionByID(id)
		if option == nil {
			return false
		}
		in.apply(option)
		option.NetValue = negotiation.ComputeNetValue(*option)
		return true
	})
}

// RemoveBatnaOption deletes the option with the given identifier. A stored
// best-option reference pointing at the removed option is left dangling and
// resolves to nil until the next CalculateBestBatna. Returns false when the
// identifier is unknown.
func (s *Store) RemoveBatnaOption(ctx context.Context, id string) bool {
	return s.mutate(ctx, "remove_batna_option", func(d *negotiation.NegotiationData) bool {
		for i := range d.BatnaOptions {
			if d.BatnaOptions[i].ID == id {
				d.BatnaOptions = append(d.BatnaOptions[:i], d.BatnaOptions[i+1:]...)
				return true
			}
		}
		return false
	})
}

// CalculateBestBatna reselects the best alternative from the current options
// and stores its identifier. With no options the reference is cleared. This
// is the only operation that writes the reference; add/update/remove never
// trigger an implicit reselection. Returns a copy of the selected option, or
// nil when none exist.
func (s *Store) CalculateBestBatna(ctx context.Context) *negotiation.BatnaOption {
	var best *negotiation.BatnaOption
	s.mutate(ctx, "calculate_best_batna", func(d *negotiation.NegotiationData) bool {
		best = negotiation.SelectBest(d.BatnaOptions)
		if best == nil {
			d.BestBatnaID = ""
		} else {
			d.BestBatnaID = best.ID
		}
		return true
	})
	return best
}

// SetBottomLineBuffer stores the safety margin subtracted from the best
// alternative's net value when deriving the negotiation floor.
func (s *Store) SetBottomLineBuffer(ctx context.Context, buffer float64) {
	s.mutate(ctx, "set_bottom_line_buffer", func(d *negotiation.NegotiationData) bool {
		d.BottomLineBuffer = buffer
		return true
	})
}

// AddStakeholder appends a new stakeholder with a generated identifier.
func (s *Store) AddStakeholder(ctx context.Context, in StakeholderInput) negotiation.Stakeholder {
	st := negotiation.Stakeholder{
		ID:         s.newID(),
		Name:       in.Name,
		Role:       in.Role,
		Influence:  in.Influence,
		Support:    in.Support,
		PainPoints: append([]string(nil), in.PainPoints...),
		Interests:  append([]string(nil), in.Interests...),
	}
	s.mutate(ctx, "add_stakeholder", func(d *negotiation.NegotiationData) bool {
		d.Stakeholders = append(d.Stakeholders, st)
		return true
	})
	return st
}

// UpdateStakeholder patches the stakeholder with the given identifier.
// Returns false when the identifier is unknown.
func (s *Store) UpdateStakeholder(ctx context.Context, id string, in StakeholderUpdateInput) bool {
	return s.mutate(ctx, "update_stakeholder", func(d *negotiation.NegotiationData) bool {
		st := d.StakeholderByID(id)
		if st == nil {
			return false
		}
		in.apply(st)
		return true
	})
}

// RemoveStakeholder deletes the stakeholder with the given identifier.
// Returns false when the identifier is unknown.
func (s *Store) RemoveStakeholder(ctx context.Context, id string) bool {
	return s.mutate(ctx, "remove_stakeholder", func(d *negotiation.NegotiationData) bool {
		for i := range d.Stakeholders {
			if d.Stakeholders[i].ID == id {
				d.Stakeholders = append(d.Stakeholders[:i], d.Stakeholders[i+1:]...)
				return true
			}
		}
		return false
	})
}

// UpdateStrategy patches the step-6 strategy selections.
func (s *Store) UpdateStrategy(ctx context.Context, in StrategyInput) {
	s.mutate(ctx, "update_strategy", func(d *negotiation.NegotiationData) bool {
		in.apply(&d.Strategy)
		return true
	})
}

// UpdateAnchorStrategy patches the step-7 opening-offer plan.
func (s *Store) UpdateAnchorStrategy(ctx context.Context, in AnchorInput) {
	s.mutate(ctx, "update_anchor_strategy", func(d *negotiation.NegotiationData) bool {
		in.apply(&d.AnchorStrategy)
		return true
	})
}

// UpdateReportSettings patches the export presentation settings.
func (s *Store) UpdateReportSettings(ctx context.Context, in ReportSettingsInput) {
	s.mutate(ctx, "update_report_settings", func(d *negotiation.NegotiationData) bool {
		in.apply(&d.ReportSettings)
		return true
	})
}

// SetCurrentStep records the active wizard step. Range validation belongs to
// the interface layer.
func (s *Store) SetCurrentStep(ctx context.Context, step int) {
	s.mutate(ctx, "set_current_step", func(d *negotiation.NegotiationData) bool {
		d.Metadata.CurrentStep = step
		return true
	})
}

// ResetData replaces the aggregate with the defaults. CreatedAt is reset
// along with everything else.
func (s *Store) ResetData(ctx context.Context) {
	s.mutate(ctx, "reset_data", func(d *negotiation.NegotiationData) bool {
		*d = *negotiation.NewDefaultData(s.clock())
		return true
	})
}

// LoadExample replaces the aggregate with one of the fixed example datasets.
// The current step resets to 1. State is untouched when the variant is
// unknown.
func (s *Store) LoadExample(ctx context.Context, variant negotiation.ExampleVariant) error {
	example, err := negotiation.NewExampleData(variant, s.clock())
	if err != nil {
		return err
	}
	s.mutate(ctx, "load_example", func(d *negotiation.NegotiationData) bool {
		*d = *example
		return true
	})
	return nil
}
