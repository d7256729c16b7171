package questionnaire

import (
	"testing"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		action  Action
		role    string
		want    bool
	}{
		{"surveyor submits draft", StatusDraft, ActionSubmit, constvars.RoleSurveyor, true},
		{"surveyor saves draft progress", StatusDraft, ActionSaveProgress, constvars.RoleSurveyor, true},
		{"submit from verified is terminal", StatusVerified, ActionSubmit, constvars.RoleSurveyor, false},
		{"verifier verifies submitted", StatusSubmitted, ActionVerify, constvars.RoleVerifier, true},
		{"surveyor cannot verify", StatusSubmitted, ActionVerify, constvars.RoleSurveyor, false},
		{"verifier rejects submitted", StatusSubmitted, ActionReject, constvars.RoleVerifier, true},
		{"admin passes every gate", StatusSubmitted, ActionReject, constvars.RoleAdmin, true},
		{"viewer triggers nothing", StatusDraft, ActionSubmit, constvars.RoleViewer, false},
		{"save progress on submitted fails", StatusSubmitted, ActionSaveProgress, constvars.RoleSurveyor, false},
		{"save progress on rejected fails", StatusRejected, ActionSaveProgress, constvars.RoleSurveyor, false},
		{"surveyor resubmits rejected", StatusRejected, ActionResubmit, constvars.RoleSurveyor, true},
		{"verify on draft fails", StatusDraft, ActionVerify, constvars.RoleVerifier, false},
		{"verify on verified fails", StatusVerified, ActionVerify, constvars.RoleVerifier, false},
		{"reject on rejected fails", StatusRejected, ActionReject, constvars.RoleVerifier, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.current, tc.action, tc.role))
		})
	}
}

func TestTransition(t *testing.T) {
	t.Run("legal transition returns next status", func(t *testing.T) {
		next, err := Transition(StatusDraft, ActionSubmit, constvars.RoleSurveyor, ResubmitToDraft)
		assert.NoError(t, err)
		assert.Equal(t, StatusSubmitted, next)
	})

	t.Run("illegal prior state surfaces invalid transition", func(t *testing.T) {
		_, err := Transition(StatusVerified, ActionSubmit, constvars.RoleSurveyor, ResubmitToDraft)
		if assert.Error(t, err) {
			customErr, ok := err.(*exceptions.CustomError)
			if assert.True(t, ok) {
				assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
			}
		}
	})

	t.Run("role without permission surfaces forbidden", func(t *testing.T) {
		_, err := Transition(StatusSubmitted, ActionVerify, constvars.RoleSurveyor, ResubmitToDraft)
		if assert.Error(t, err) {
			customErr, ok := err.(*exceptions.CustomError)
			if assert.True(t, ok) {
				assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
			}
		}
	})
}

func TestResubmitPolicy(t *testing.T) {
	t.Run("default policy returns to draft", func(t *testing.T) {
		next, err := Transition(StatusRejected, ActionResubmit, constvars.RoleSurveyor, ResubmitToDraft)
		assert.NoError(t, err)
		assert.Equal(t, StatusDraft, next)
	})

	t.Run("submitted policy skips the draft pass", func(t *testing.T) {
		next, err := Transition(StatusRejected, ActionResubmit, constvars.RoleSurveyor, ResubmitToSubmitted)
		assert.NoError(t, err)
		assert.Equal(t, StatusSubmitted, next)
	})

	t.Run("unknown policy falls back to draft", func(t *testing.T) {
		assert.Equal(t, StatusDraft, ResubmitPolicy("whatever").Destination())
	})
}
