package executor

import (
	"fmt"
	"io"
	"sync"
)

// Completion is the final status of a background child.
type Completion struct {
	PID      int
	Name     string
	ExitCode int
	// Signal is non-empty when the child was killed rather than exiting.
	Signal string
}

// Jobs tracks background children until the owning loop reaps them. Each
// completion is reported exactly once. Children that exit before the next
// reap are held by the OS until then, which is the accepted cost of the
// polling design.
type Jobs struct {
	mu   sync.Mutex
	live map[int]string

	done chan Completion
}

// NewJobs creates an empty tracker.
func NewJobs() *Jobs {
	return &Jobs{
		live: make(map[int]string),
		done: make(chan Completion, 64),
	}
}

// Track registers a started child and collects its status in the
// background. wait must block until the child exits and return its exit
// code plus the killing signal's name, if any.
func (j *Jobs) Track(pid int, name string, wait func() (int, string)) {
	j.mu.Lock()
	j.live[pid] = name
	j.mu.Unlock()

	go func() {
		code, signal := wait()

		// Publish before dropping the job so a Count of zero means the
		// completion is already reapable.
		j.done <- Completion{PID: pid, Name: name, ExitCode: code, Signal: signal}

		j.mu.Lock()
		delete(j.live, pid)
		j.mu.Unlock()
	}()
}

// Count returns the number of tracked children that haven't exited yet.
func (j *Jobs) Count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.live)
}

// Reap reports every completed child without blocking, each exactly once.
func (j *Jobs) Reap(w io.Writer) {
	for {
		select {
		case c := <-j.done:
			if c.Signal != "" {
				fmt.Fprintf(w, "[%d] killed by %s\t%s\n", c.PID, c.Signal, c.Name)
			} else {
				fmt.Fprintf(w, "[%d] exit %d\t%s\n", c.PID, c.ExitCode, c.Name)
			}
		default:
			return
		}
	}
}
