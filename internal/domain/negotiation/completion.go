package negotiation

// CompletionStatus reports which preparation steps have the data they need.
// It is derived on demand from the aggregate and never stored: the stored
// Metadata.IsComplete field exists for wire compatibility only and is never
// written true.
type CompletionStatus struct {
	Goals        bool `json:"goals"`
	Issues       bool `json:"issues"`
	Batna        bool `json:"batna"`
	Stakeholders bool `json:"stakeholders"`
	Strategy     bool `json:"strategy"`
	Anchor       bool `json:"anchor"`
}

// Complete reports whether every check passed.
func (s CompletionStatus) Complete() bool {
	return s.Goals && s.Issues && s.Batna && s.Stakeholders && s.Strategy && s.Anchor
}

// Completion evaluates the six per-step checks against the aggregate:
// goals need a primary objective and a timeline; issues, BATNA options and
// stakeholders need at least one entry; strategy needs an approach; the
// anchor plan needs a type.
func (d *NegotiationData) Completion() CompletionStatus {
	return CompletionStatus{
		Goals:        d.Goals.Primary != "" && d.Goals.Timeline != "",
		Issues:       len(d.Issues) > 0,
		Batna:        len(d.BatnaOptions) > 0,
		Stakeholders: len(d.Stakeholders) > 0,
		Strategy:     d.Strategy.Approach != "",
		Anchor:       d.AnchorStrategy.Type != "",
	}
}
