// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command loop
// centralizes stopwatch state changes so they happen one at a time.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdResume
	CmdReset
	CmdLap
)

func (c CommandType) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdReset:
		return "reset"
	case CmdLap:
		return "lap"
	}
	return "unknown"
}

// Command is the message sent from UI to AppManager.commandLoop. The
// optional Reply channel receives whether the command took effect, which
// lets the UI refresh its controls after the state changed.
type Command struct {
	Type  CommandType
	Reply chan bool // optional reply channel
}
