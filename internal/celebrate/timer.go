package celebrate

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidDismissTime = errors.New("celebrate: invalid dismiss time")

// Expiry announces that the celebration with the given ID should be
// taken off screen.
type Expiry struct {
	ID        string
	DismissAt time.Time
}

type queueItem struct {
	expiry Expiry
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].expiry.DismissAt.Before(pq[j].expiry.DismissAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// Timer delivers celebration expiries at their dismiss time. Delivery
// is best-effort: if the consumer is not draining the channel the
// expiry is dropped and counted, and the overlay is cleared by the
// next celebration instead.
type Timer struct {
	mu      sync.Mutex
	queue   priorityQueue
	out     chan Expiry
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewTimer(bufferSize int) *Timer {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Timer{
		queue:  make(priorityQueue, 0),
		out:    make(chan Expiry, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (t *Timer) C() <-chan Expiry {
	return t.out
}

func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true
	heap.Init(&t.queue)
	go t.loop()
}

// Stop tears the timer down; pending expiries are discarded so nothing
// fires after the owning UI is gone.
func (t *Timer) Stop() {
	t.mu.Lock()
	if !t.started || t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	close(t.stopCh)
	t.mu.Unlock()
	<-t.doneCh
}

func (t *Timer) Schedule(e Expiry) error {
	if e.DismissAt.IsZero() {
		return ErrInvalidDismissTime
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return errors.New("celebrate: timer stopped")
	}

	heap.Push(&t.queue, queueItem{expiry: e})
	t.signalWakeup()
	return nil
}

func (t *Timer) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

func (t *Timer) loop() {
	defer close(t.doneCh)
	defer close(t.out)

	var timer *time.Timer
	for {
		next, hasNext := t.peek()
		if !hasNext {
			select {
			case <-t.wakeup:
				continue
			case <-t.stopCh:
				return
			}
		}

		wait := time.Until(next.DismissAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := t.popDue(time.Now())
			for _, e := range due {
				select {
				case t.out <- e:
				default:
					atomic.AddUint64(&t.dropped, 1)
				}
			}
		case <-t.wakeup:
			continue
		case <-t.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (t *Timer) signalWakeup() {
	select {
	case t.wakeup <- struct{}{}:
	default:
	}
}

func (t *Timer) peek() (Expiry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.queue) == 0 {
		return Expiry{}, false
	}
	return t.queue[0].expiry, true
}

func (t *Timer) popDue(now time.Time) []Expiry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Expiry, 0)
	for len(t.queue) > 0 {
		next := t.queue[0].expiry
		if next.DismissAt.After(now) {
			break
		}
		item := heap.Pop(&t.queue).(queueItem)
		out = append(out, item.expiry)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
