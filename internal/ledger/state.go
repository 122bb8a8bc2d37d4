package ledger

import (
	"fmt"
	"strings"
)

// Approval is the admin gating decision, independent of fulfillment status.
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

// Blocks reports whether a booking with this approval reserves its slot.
func (a Approval) Blocks() bool {
	return a == ApprovalPending || a == ApprovalApproved
}

// approvalTransitions lists the decisions an admin may apply from each state.
// Nothing returns to pending once decided.
var approvalTransitions = map[Approval]map[Approval]bool{
	ApprovalPending:  {ApprovalApproved: true, ApprovalRejected: true},
	ApprovalApproved: {ApprovalApproved: true, ApprovalRejected: true},
	ApprovalRejected: {ApprovalApproved: true, ApprovalRejected: true},
}

func CanDecide(from, to Approval) bool {
	return approvalTransitions[from][to]
}

// Status is a fulfillment state. Valid values depend on the record kind.
type Status string

// StatusPending is the initial fulfillment state of every record kind.
const StatusPending Status = "pending"

// StatusMachine is a fulfillment transition table for one record kind.
type StatusMachine struct {
	kind        string
	states      []Status
	transitions map[Status]map[Status]bool
}

// NewFreeStatusMachine builds a table where every state can move to every
// other state, including itself.
func NewFreeStatusMachine(kind string, states ...Status) StatusMachine {
	t := make(map[Status]map[Status]bool, len(states))
	for _, from := range states {
		t[from] = make(map[Status]bool, len(states))
		for _, to := range states {
			t[from][to] = true
		}
	}
	return StatusMachine{kind: kind, states: states, transitions: t}
}

func (m StatusMachine) Valid(s Status) bool {
	_, ok := m.transitions[s]
	return ok
}

func (m StatusMachine) CanTransition(from, to Status) bool {
	return m.transitions[from][to]
}

func (m StatusMachine) States() []Status {
	out := make([]Status, len(m.states))
	copy(out, m.states)
	return out
}

func (m StatusMachine) describeStates() string {
	names := make([]string, 0, len(m.states))
	for _, st := range m.States() {
		names = append(names, string(st))
	}
	return strings.Join(names, ", ")
}

// Update is an admin change request on either state axis.
type Update struct {
	Status        *Status   `json:"status,omitempty"`
	AdminApproval *Approval `json:"adminApproval,omitempty"`
}

func (u Update) Empty() bool {
	return u.Status == nil && u.AdminApproval == nil
}

// Describe renders the change for the customer notification, e.g.
// "approved", "status updated to preparing".
func (u Update) Describe() string {
	var parts []string
	if u.AdminApproval != nil {
		parts = append(parts, string(*u.AdminApproval))
	}
	if u.Status != nil {
		parts = append(parts, "status updated to "+string(*u.Status))
	}
	if len(parts) == 0 {
		return "status updated"
	}
	return strings.Join(parts, ", ")
}

// Apply validates the update against the tables and mutates l. It checks both
// axes before writing either, so a rejected update leaves l untouched.
func (u Update) Apply(l *Lifecycle, m StatusMachine) error {
	if u.Empty() {
		return fmt.Errorf("%w: status or adminApproval is required", ErrValidation)
	}
	if u.Status != nil {
		if !m.Valid(*u.Status) {
			return fmt.Errorf("%w: unknown %s status %q (one of %s)", ErrValidation, m.kind, *u.Status, m.describeStates())
		}
		if !m.CanTransition(l.Status, *u.Status) {
			return fmt.Errorf("%w: %s status cannot move from %q to %q", ErrValidation, m.kind, l.Status, *u.Status)
		}
	}
	if u.AdminApproval != nil && !CanDecide(l.AdminApproval, *u.AdminApproval) {
		return fmt.Errorf("%w: approval cannot move from %q to %q", ErrValidation, l.AdminApproval, *u.AdminApproval)
	}

	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.AdminApproval != nil {
		l.AdminApproval = *u.AdminApproval
	}
	return nil
}
