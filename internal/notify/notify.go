// Package notify carries short user-facing feedback (the console's toasts).
package notify

import (
	"log"
	"sync"
)

type Notifier interface {
	Success(message string)
	Failure(message string, err error)
}

// Log writes notifications through the standard logger.
type Log struct{}

func (Log) Success(message string) {
	log.Printf("[ok] %s", message)
}

func (Log) Failure(message string, err error) {
	if err != nil {
		log.Printf("[error] %s: %v", message, err)
		return
	}
	log.Printf("[error] %s", message)
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
)

type Entry struct {
	Level   Level
	Message string
	Err     error
}

// Recorder keeps notifications in memory, in arrival order. It is safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Success(message string) {
	r.add(Entry{Level: LevelSuccess, Message: message})
}

func (r *Recorder) Failure(message string, err error) {
	r.add(Entry{Level: LevelFailure, Message: message, Err: err})
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the messages recorded at the given level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
