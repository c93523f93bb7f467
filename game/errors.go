package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownQuest    = errors.New("unknown quest")
	ErrQuestIncomplete = errors.New("quest not complete")
	ErrQuestClaimed    = errors.New("quest reward already claimed")
	ErrUnknownRegion   = errors.New("unknown region")
)

// ValidationError rejects caller input before anything is written.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

// State is a step of the check-in state machine.
type State string

const (
	StateReceived              State = "RECEIVED"
	StateLogged                State = "LOGGED"
	StatePlaceMarked           State = "PLACE_MARKED"
	StateStatsComputed         State = "STATS_COMPUTED"
	StateAchievementsEvaluated State = "ACHIEVEMENTS_EVALUATED"
	StateSettled               State = "SETTLED"
	StateFailed                State = "FAILED"
)

// CheckinError reports a check-in that reached FAILED. State is the last state
// reached before the failure and Logged tells whether the log entry was written.
type CheckinError struct {
	State  State
	Logged bool
	Err    error
}

func (e *CheckinError) Error() string {
	return fmt.Sprintf("check-in failed after %s (logged=%t): %v", e.State, e.Logged, e.Err)
}

func (e *CheckinError) Unwrap() error { return e.Err }
