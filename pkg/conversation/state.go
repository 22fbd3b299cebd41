package conversation

import (
	"github.com/kasuboski/serialz/pkg/machine"
	"github.com/kasuboski/serialz/pkg/storage"
)

// State is the step of the add/update wizard a chat is in
type State string

const (
	StateIdle             State = "idle"
	StateSelectingSeries  State = "selecting_series"
	StateManualName       State = "manual_name"
	StateManualYear       State = "manual_year"
	StateManualSeasons    State = "manual_seasons"
	StateSelectingSeason  State = "selecting_season"
	StateManualSeason     State = "manual_season"
	StateSelectingEpisode State = "selecting_episode"
	StateManualEpisode    State = "manual_episode"
)

// Leaving the wizard is not a transition, the session is dropped instead.
var transitions = []machine.Allowable[State]{
	machine.From(StateIdle).To(StateSelectingSeries, StateSelectingSeason),
	machine.From(StateSelectingSeries).To(StateManualName, StateSelectingSeason),
	machine.From(StateManualName).To(StateManualYear),
	machine.From(StateManualYear).To(StateManualSeasons),
	machine.From(StateManualSeasons).To(StateSelectingSeason),
	machine.From(StateSelectingSeason).To(StateManualSeason, StateSelectingEpisode),
	machine.From(StateManualSeason).To(StateSelectingEpisode),
	machine.From(StateSelectingEpisode).To(StateManualEpisode),
}

// Session is the transient state of one chat's conversation
type Session struct {
	machine *machine.StateMachine[State]

	// Flow is the list a series being added ends up in
	Flow     storage.ListKind
	SeriesID int32
	Season   int32

	// TmdbID is the search result picked in this conversation
	TmdbID int32

	ManualName string
	ManualYear *int32
}

func newSession(flow storage.ListKind) *Session {
	return &Session{
		machine: machine.New(StateIdle, transitions...),
		Flow:    flow,
	}
}

func (s *Session) State() State {
	return s.machine.Current()
}

func (s *Session) transition(to State) error {
	return s.machine.Transition(to)
}
