package roster

import "fmt"

// ChangeHook receives the full snapshot after every accepted mutation.
type ChangeHook func([]Record) error

// Controller owns the application state and runs actions through Reduce. It is
// not safe for concurrent use; the UI event loop is its only caller.
type Controller struct {
	state    State
	ids      IDGenerator
	onChange ChangeHook
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDs selects the identifier generator.
func WithIDs(ids IDGenerator) Option {
	return func(c *Controller) {
		if ids != nil {
			c.ids = ids
		}
	}
}

// WithChangeHook installs the persistence hook.
func WithChangeHook(hook ChangeHook) Option {
	return func(c *Controller) { c.onChange = hook }
}

// WithDark starts the controller in dark display mode.
func WithDark(dark bool) Option {
	return func(c *Controller) { c.state.Dark = dark }
}

// NewController hydrates a controller from previously stored records.
func NewController(records []Record, opts ...Option) *Controller {
	c := &Controller{ids: UUIDs()}
	for _, opt := range opts {
		opt(c)
	}
	c.state.Roster = New(records)
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Dispatch applies a and, when the roster changed, calls the change hook with
// the new snapshot before returning. The returned error is either the
// action's own error (a *ValidationError for a rejected submit) or the hook's.
// A hook failure does not roll the state back.
func (c *Controller) Dispatch(a Action) (Outcome, error) {
	next, outcome := Reduce(c.state, a, c.ids)
	c.state = next
	if outcome.Err != nil {
		return outcome, outcome.Err
	}
	if outcome.Mutated() && c.onChange != nil {
		if err := c.onChange(c.state.Roster.Records()); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// RepairIDs assigns fresh ids to records whose id is empty or already used
// earlier in the list. It returns the repaired slice and the positions that
// changed, or ErrIDExhausted when no unused id could be generated.
func RepairIDs(records []Record, ids IDGenerator) ([]Record, []int, error) {
	if ids == nil {
		ids = UUIDs()
	}
	seen := make(map[string]struct{}, len(records))
	out := cloneRecords(records)
	var repaired []int
	for i, rec := range out {
		if _, dup := seen[rec.ID]; rec.ID != "" && !dup {
			seen[rec.ID] = struct{}{}
			continue
		}
		id, ok := "", false
		for attempts := 0; attempts < maxIDAttempts && !ok; attempts++ {
			id = ids.NewID()
			_, taken := seen[id]
			ok = id != "" && !taken && !containsID(out[i+1:], id)
		}
		if !ok {
			return nil, nil, fmt.Errorf("repair id at position %d: %w", i, ErrIDExhausted)
		}
		out[i].ID = id
		seen[id] = struct{}{}
		repaired = append(repaired, i)
	}
	return out, repaired, nil
}

func containsID(records []Record, id string) bool {
	for _, rec := range records {
		if rec.ID == id {
			return true
		}
	}
	return false
}
