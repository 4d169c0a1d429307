package navmesh

import (
	"fmt"
	"time"
)

// LogCategory classifies a BuildContext log entry.
type LogCategory int

const (
	LogProgress LogCategory = iota
	LogWarning
	LogError
)

// Phase names the eight ordered stages of Generate, used as timer and log
// keys (spec §4.9, §5).
type Phase string

const (
	PhaseRasterize  Phase = "rasterize"
	PhaseCompress   Phase = "compress"
	PhaseOrthogonal Phase = "orthogonal-neighbors"
	PhaseCorner     Phase = "corner-neighbors"
	PhaseLabel      Phase = "label"
	PhasePrecompute Phase = "precompute"
	PhaseBind       Phase = "bind-markers"
	PhaseCull       Phase = "cull"
)

type logEntry struct {
	category LogCategory
	text     string
}

// BuildContext accumulates per-phase timings and log messages across one
// Generate call. It does not print anything on its own until DumpLog is
// called; this mirrors the teacher library's recast.BuildContext, adapted
// from a fixed timer-id array to the phases of this module's pipeline.
type BuildContext struct {
	logEnabled   bool
	timerEnabled bool

	start map[Phase]time.Time
	acc   map[Phase]time.Duration

	messages []logEntry
}

// NewBuildContext returns a BuildContext with logging and timers enabled or
// disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{
		logEnabled:   state,
		timerEnabled: state,
		start:        make(map[Phase]time.Time),
		acc:          make(map[Phase]time.Duration),
	}
}

// ResetLog clears all log entries.
func (c *BuildContext) ResetLog() {
	if c.logEnabled {
		c.messages = c.messages[:0]
	}
}

// ResetTimers clears all accumulated phase durations.
func (c *BuildContext) ResetTimers() {
	if c.timerEnabled {
		c.acc = make(map[Phase]time.Duration)
	}
}

// StartTimer starts (or resumes) the timer for phase p.
func (c *BuildContext) StartTimer(p Phase) {
	if c.timerEnabled {
		c.start[p] = time.Now()
	}
}

// StopTimer stops the timer for phase p and accumulates the elapsed time.
func (c *BuildContext) StopTimer(p Phase) {
	if c.timerEnabled {
		c.acc[p] += time.Since(c.start[p])
	}
}

// AccumulatedTime returns the total time spent in phase p across every
// Start/Stop pair.
func (c *BuildContext) AccumulatedTime(p Phase) time.Duration {
	return c.acc[p]
}

// Progressf logs a progress message.
func (c *BuildContext) Progressf(format string, v ...interface{}) {
	c.log(LogProgress, format, v...)
}

// Warningf logs a warning message.
func (c *BuildContext) Warningf(format string, v ...interface{}) {
	c.log(LogWarning, format, v...)
}

// Errorf logs an error message.
func (c *BuildContext) Errorf(format string, v ...interface{}) {
	c.log(LogError, format, v...)
}

func (c *BuildContext) log(category LogCategory, format string, v ...interface{}) {
	if !c.logEnabled {
		return
	}
	c.messages = append(c.messages, logEntry{category: category, text: fmt.Sprintf(format, v...)})
}

// LogCount returns the number of accumulated log messages.
func (c *BuildContext) LogCount() int {
	return len(c.messages)
}

// DumpLog prints header (formatted like fmt.Printf) followed by every
// accumulated log message, one per line, prefixed by its category.
func (c *BuildContext) DumpLog(header string, args ...interface{}) {
	fmt.Printf(header+"\n", args...)
	for _, m := range c.messages {
		fmt.Println(prefixFor(m.category) + m.text)
	}
}

func prefixFor(c LogCategory) string {
	switch c {
	case LogProgress:
		return "PROG "
	case LogWarning:
		return "WARN "
	case LogError:
		return "ERR "
	default:
		return ""
	}
}
