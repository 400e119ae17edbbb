// Package statuslog keeps an append-only status history per subject. The
// whole log is persisted as one map of subject id to entry list. Current
// state is the last appended entry; append order wins even if timestamps
// arrive out of chronological order, so entries are never re-sorted.
package statuslog

import (
	"time"

	"feriavirtual/internal/infrastructure/localstore"
)

type Entry struct {
	State  string    `json:"state"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
}

type Log struct {
	store *localstore.Store
	key   string
}

func New(store *localstore.Store, key string) *Log {
	return &Log{store: store, key: key}
}

// Append adds an entry to the subject's history, creating the history if the
// subject was never logged before.
func (l *Log) Append(subjectID string, entry Entry) error {
	return localstore.Mutate(l.store, l.key, func(m map[string][]Entry) (map[string][]Entry, error) {
		if m == nil {
			m = make(map[string][]Entry)
		}
		m[subjectID] = append(m[subjectID], entry)
		return m, nil
	})
}

// Current returns the state of the last entry for subjectID, or defaultState
// if the subject has no history.
func (l *Log) Current(subjectID, defaultState string) (string, error) {
	m, err := localstore.Read[map[string][]Entry](l.store, l.key)
	if err != nil {
		return "", err
	}
	entries := m[subjectID]
	if len(entries) == 0 {
		return defaultState, nil
	}
	return entries[len(entries)-1].State, nil
}

// History returns the full entry list for subjectID in append order.
func (l *Log) History(subjectID string) ([]Entry, error) {
	m, err := localstore.Read[map[string][]Entry](l.store, l.key)
	if err != nil {
		return nil, err
	}
	return m[subjectID], nil
}

// Snapshot returns the current state of every logged subject, applying
// defaultState semantics only to subjects that actually appear in the log.
// Callers that need defaults for unlogged subjects use Current per subject or
// consult the snapshot with the default on miss.
func (l *Log) Snapshot() (map[string]string, error) {
	m, err := localstore.Read[map[string][]Entry](l.store, l.key)
	if err != nil {
		return nil, err
	}
	states := make(map[string]string, len(m))
	for id, entries := range m {
		if len(entries) > 0 {
			states[id] = entries[len(entries)-1].State
		}
	}
	return states, nil
}
