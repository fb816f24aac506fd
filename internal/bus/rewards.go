package bus

import "sync/atomic"

// RewardEvent is a one-shot animation trigger fired when currency is
// earned. It is separate from key-change publishes: widgets that only
// mirror state do not care, and the animation must not re-fire when a
// widget re-reads storage.
type RewardEvent struct {
	Coins  int
	Gems   int
	Source string
}

// RewardFeed buffers reward events for a single consumer (the TUI).
// Sends never block; events overflowing the buffer are dropped and
// counted, which is acceptable for a cosmetic trigger.
type RewardFeed struct {
	out     chan RewardEvent
	dropped uint64
}

func NewRewardFeed(buffer int) *RewardFeed {
	if buffer <= 0 {
		buffer = 1
	}
	return &RewardFeed{out: make(chan RewardEvent, buffer)}
}

func (f *RewardFeed) C() <-chan RewardEvent {
	return f.out
}

func (f *RewardFeed) Emit(ev RewardEvent) {
	select {
	case f.out <- ev:
	default:
		atomic.AddUint64(&f.dropped, 1)
	}
}

func (f *RewardFeed) Dropped() uint64 {
	return atomic.LoadUint64(&f.dropped)
}
