// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Stage identifiers understood by the gate.
const (
	StageTerms             = "m.login.terms"
	StageEnrollUsername    = "m.enroll.username"
	StageRegistrationToken = "m.login.registration_token"
	StageDummy             = "m.login.dummy"
)

// Keys shared between stages through the session data bag.
const (
	SessionKeyUsername          = "username"
	SessionKeyVerifiedEmail     = "m.enroll.email.submit_token.email"
	SessionKeyRegistrationToken = "m.login.registration_token"
)

// Flow is one acceptable path through the gate: an unordered set of stages
// that must all be completed.
type Flow struct {
	Stages []string `json:"stages"` // Stage identifiers; order is informational only.
}

// SatisfiedBy reports whether every stage of the flow is in completed.
// A flow with no stages is never satisfied.
func (f Flow) SatisfiedBy(completed map[string]struct{}) bool {
	if len(f.Stages) == 0 {
		return false
	}
	for _, stage := range f.Stages {
		if _, ok := completed[stage]; !ok {
			return false
		}
	}

	return true
}

// Route is a gated endpoint together with the flows that unlock it.
type Route struct {
	Method string
	Path   string
	Flows  []Flow
}

// Key identifies the route in logs and lookups, e.g. "POST /register".
func (r Route) Key() string {
	return r.Method + " " + r.Path
}

// Stages returns every stage that appears in at least one flow, each once,
// in order of first appearance.
func (r Route) Stages() []string {
	seen := make(map[string]struct{})
	stages := make([]string, 0)
	for _, flow := range r.Flows {
		for _, stage := range flow.Stages {
			if _, dup := seen[stage]; dup {
				continue
			}
			seen[stage] = struct{}{}
			stages = append(stages, stage)
		}
	}

	return stages
}

// Advertises reports whether stage belongs to any configured flow.
func (r Route) Advertises(stage string) bool {
	for _, flow := range r.Flows {
		for _, s := range flow.Stages {
			if s == stage {
				return true
			}
		}
	}

	return false
}

// FirstSatisfied walks flows in configured order and returns the first one
// covered by completed.
func (r Route) FirstSatisfied(completed []string) (Flow, bool) {
	set := make(map[string]struct{}, len(completed))
	for _, stage := range completed {
		set[stage] = struct{}{}
	}

	for _, flow := range r.Flows {
		if flow.SatisfiedBy(set) {
			return flow, true
		}
	}

	return Flow{}, false
}

// Challenge is the body of the 401 response that tells a client which flows
// are available and what each stage needs.
type Challenge struct {
	Flows     []Flow                    `json:"flows"`
	Completed []string                  `json:"completed,omitempty"`
	Params    map[string]map[string]any `json:"params,omitempty"`
	Session   string                    `json:"session"`
}
