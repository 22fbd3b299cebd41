package conversation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCallback = errors.New("malformed callback data")

// Action is the verb of an inline button payload
type Action string

const (
	ActionSeries        Action = "series"
	ActionManualAdd     Action = "manual_add"
	ActionSeason        Action = "season"
	ActionManualSeason  Action = "manual_season"
	ActionEpisode       Action = "episode"
	ActionManualEpisode Action = "manual_episode"
	ActionUpdate        Action = "update"
	ActionMoveWatching  Action = "move_watching"
	ActionMoveWatchlist Action = "move_watchlist"
	ActionMarkWatched   Action = "mark_watched"
	ActionRemoveSeries  Action = "remove_series"
	ActionCommand       Action = "command"
	ActionCancel        Action = "cancel"
)

// arity is the number of integer arguments each action carries. Prefixes that are
// themselves prefixed by another action are listed first.
var arity = []struct {
	action Action
	args   int
}{
	{ActionManualSeason, 1},
	{ActionManualEpisode, 2},
	{ActionManualAdd, 0},
	{ActionMoveWatching, 1},
	{ActionMoveWatchlist, 1},
	{ActionMarkWatched, 1},
	{ActionRemoveSeries, 1},
	{ActionSeries, 1},
	{ActionSeason, 2},
	{ActionEpisode, 3},
	{ActionUpdate, 1},
	{ActionCancel, 0},
}

// Callback is a parsed inline button payload of the form action_<int>[_<int>...]
type Callback struct {
	Action Action
	Args   []int32
	// Command is set for command_<name> payloads
	Command string
}

// Data encodes an action and its arguments into a button payload
func Data(action Action, args ...int32) string {
	var b strings.Builder
	b.WriteString(string(action))
	for _, a := range args {
		b.WriteByte('_')
		b.WriteString(strconv.FormatInt(int64(a), 10))
	}
	return b.String()
}

func CommandData(command string) string {
	return string(ActionCommand) + "_" + command
}

// ParseCallback decodes a button payload, rejecting unknown actions, wrong argument counts
// and arguments that are not non-negative integers.
func ParseCallback(data string) (Callback, error) {
	if rest, ok := strings.CutPrefix(data, string(ActionCommand)+"_"); ok {
		if _, known := commands[rest]; !known {
			return Callback{}, fmt.Errorf("%w: unknown command %q", ErrMalformedCallback, rest)
		}
		return Callback{Action: ActionCommand, Command: rest}, nil
	}

	for _, a := range arity {
		name := string(a.action)
		if data != name && !strings.HasPrefix(data, name+"_") {
			continue
		}

		var parts []string
		if data != name {
			parts = strings.Split(data[len(name)+1:], "_")
		}
		if len(parts) != a.args {
			return Callback{}, fmt.Errorf("%w: %s expects %d arguments, got %q", ErrMalformedCallback, name, a.args, data)
		}

		args := make([]int32, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.ParseInt(p, 10, 32)
			if err != nil || n < 0 {
				return Callback{}, fmt.Errorf("%w: bad argument %q in %q", ErrMalformedCallback, p, data)
			}
			args = append(args, int32(n))
		}

		return Callback{Action: a.action, Args: args}, nil
	}

	return Callback{}, fmt.Errorf("%w: unknown action in %q", ErrMalformedCallback, data)
}
