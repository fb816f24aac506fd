package storage

import (
	"encoding/json"

	"github.com/charmbracelet/log"
)

// Validator lets persisted records reject shapes that decode but make
// no sense (negative balances, missing ids).
type Validator interface {
	Validate() error
}

// Load reads and decodes the record at key. A missing key, malformed
// JSON, or a value failing validation all yield def; Load never
// returns an error because every caller has a sensible default and
// stored state is untrusted.
func Load[T any](kv KV, key string, def T) T {
	raw, ok := kv.Get(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn("stored value is not valid JSON, using default", "key", key, "err", err)
		return def
	}
	if v, ok := any(out).(Validator); ok {
		if err := v.Validate(); err != nil {
			log.Warn("stored value failed validation, using default", "key", key, "err", err)
			return def
		}
	}
	return out
}

// Save encodes and writes value under key. Write failures are logged
// and swallowed: the update is simply lost and the next Load returns
// whatever the store last accepted.
func Save[T any](kv KV, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error("encode record", "key", key, "err", err)
		return
	}
	if err := kv.Set(key, string(raw)); err != nil {
		log.Warn("persist record", "key", key, "err", err)
	}
}
