package driver

import "time"

// Stage describes where a file is in the run.
type Stage string

const (
	StageRead     Stage = "read"
	StageFormat   Stage = "format"
	StageValidate Stage = "validate"
	StageWrite    Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	// StatusDone means the file is finished and needed no changes.
	StatusDone Status = "done"
	// StatusChanged means the file was (or would be) rewritten.
	StatusChanged Status = "changed"
	// StatusCached means the cache proved the file already formatted.
	StatusCached Status = "cached"
	StatusError  Status = "error"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: workers report from their own goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
