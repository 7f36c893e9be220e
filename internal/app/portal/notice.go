package portal

import "innoevent/internal/pkg/errs"

// Level is the severity of a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice is a short message shown to the user after an operation.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// Notifier receives the notices a portal raises.
type Notifier interface {
	Notify(n Notice)
}

// Queue is a Notifier that buffers notices until they are drained.
type Queue struct {
	pending []Notice
}

// Notify implements Notifier.
func (q *Queue) Notify(n Notice) {
	q.pending = append(q.pending, n)
}

// Drain returns the buffered notices and empties the queue.
func (q *Queue) Drain() []Notice {
	out := q.pending
	q.pending = nil
	if out == nil {
		return []Notice{}
	}
	return out
}

func errorNotice(err error) Notice {
	customErr := errs.From(err)
	return Notice{Level: LevelError, Message: customErr.Message, Code: customErr.Code}
}
