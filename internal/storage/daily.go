package storage

import "time"

// DateLayout is the local calendar date form embedded in daily-scoped
// records.
const DateLayout = "2006-01-02"

// Clock supplies the current time. Injectable so tests can walk across
// day boundaries deterministically.
type Clock func() time.Time

// Today returns the local calendar date. Local time, not UTC, so the
// user's day does not roll over at a timezone-dependent hour.
func (c Clock) Today() string {
	return c().Local().Format(DateLayout)
}

type DailyRecord[T any] struct {
	Date    string `json:"date"`
	Payload T      `json:"payload"`
}

// LoadDaily returns the payload stored under key if it was written
// today, else def. A stale record is shadowed, not deleted; the next
// SaveDaily supersedes it. Today is computed per call, so a session
// spanning midnight rolls over naturally on the next read.
func LoadDaily[T any](kv KV, clock Clock, key string, def T) T {
	rec := Load(kv, key, DailyRecord[T]{})
	if rec.Date != clock.Today() {
		return def
	}
	if v, ok := any(rec.Payload).(Validator); ok {
		if err := v.Validate(); err != nil {
			return def
		}
	}
	return rec.Payload
}

// SaveDaily stores payload under today's date, overwriting whatever was
// present regardless of its date.
func SaveDaily[T any](kv KV, clock Clock, key string, payload T) {
	Save(kv, key, DailyRecord[T]{Date: clock.Today(), Payload: payload})
}
