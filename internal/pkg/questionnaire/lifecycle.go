package questionnaire

import (
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
)

// Survey lifecycle statuses.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusVerified  Status = "VERIFIED"
	StatusRejected  Status = "REJECTED"
)

// Lifecycle actions.
type Action string

const (
	ActionSaveProgress Action = "SAVE_PROGRESS"
	ActionSubmit       Action = "SUBMIT"
	ActionVerify       Action = "VERIFY"
	ActionReject       Action = "REJECT"
	ActionResubmit     Action = "RESUBMIT"
)

// ResubmitPolicy decides where an edited rejected survey goes: back to draft
// for another review pass by the surveyor, or straight to submitted.
type ResubmitPolicy string

const (
	ResubmitToDraft     ResubmitPolicy = "draft"
	ResubmitToSubmitted ResubmitPolicy = "submitted"
)

func (p ResubmitPolicy) Destination() Status {
	if p == ResubmitToSubmitted {
		return StatusSubmitted
	}
	return StatusDraft
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusSubmitted, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// allowedFrom is the legal transition table: which prior status each action
// requires. Verified is terminal; nothing leaves it.
var allowedFrom = map[Action]Status{
	ActionSaveProgress: StatusDraft,
	ActionSubmit:       StatusDraft,
	ActionVerify:       StatusSubmitted,
	ActionReject:       StatusSubmitted,
	ActionResubmit:     StatusRejected,
}

// actorRoles lists the roles permitted to trigger each action. Ownership of
// the survey (surveyor actions apply to own surveys only) is checked by the
// caller against the persisted record; admins pass every gate.
var actorRoles = map[Action][]string{
	ActionSaveProgress: {constvars.RoleSurveyor},
	ActionSubmit:       {constvars.RoleSurveyor},
	ActionVerify:       {constvars.RoleVerifier},
	ActionReject:       {constvars.RoleVerifier},
	ActionResubmit:     {constvars.RoleSurveyor},
}

// CanTransition reports whether the action is legal from the current status
// for an actor holding the given role. It never mutates anything; callers
// must re-read the persisted status before authorizing the transition, and
// the persistence layer enforces the expected prior state on write.
func CanTransition(current Status, action Action, role string) bool {
	from, ok := allowedFrom[action]
	if !ok || current != from {
		return false
	}
	if role == constvars.RoleAdmin {
		return true
	}
	for _, allowed := range actorRoles[action] {
		if role == allowed {
			return true
		}
	}
	return false
}

// NextStatus returns the status the action leads to. For ActionResubmit the
// destination depends on the configured policy.
func NextStatus(action Action, policy ResubmitPolicy) Status {
	switch action {
	case ActionSaveProgress:
		return StatusDraft
	case ActionSubmit:
		return StatusSubmitted
	case ActionVerify:
		return StatusVerified
	case ActionReject:
		return StatusRejected
	case ActionResubmit:
		return policy.Destination()
	}
	return ""
}

// Transition validates the action against the current status and actor role
// and returns the resulting status. Illegal transitions are always surfaced
// as errors, never silently ignored.
func Transition(current Status, action Action, role string, policy ResubmitPolicy) (Status, error) {
	if !CanTransition(current, action, role) {
		if from, ok := allowedFrom[action]; ok && current == from {
			return "", exceptions.ErrNotMatchRoleType(nil)
		}
		return "", exceptions.ErrSurveyInvalidTransition(string(current), string(action))
	}
	return NextStatus(action, policy), nil
}
