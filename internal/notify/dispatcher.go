package notify

import (
	"context"
	"log"
	"time"
)

// Dispatcher decouples request handling from the queue: Dispatch never
// blocks the caller, and a full buffer or an unreachable Redis only
// costs the notification, never the booking.
type Dispatcher struct {
	queue Enqueuer
	ch    chan Event
}

func NewDispatcher(queue Enqueuer) *Dispatcher {
	d := &Dispatcher{
		queue: queue,
		ch:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.ch {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.queue.Enqueue(ctx, ev); err != nil {
			log.Println("notify enqueue error:", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.ch <- ev:
	default:
		log.Println("notify buffer full, dropping event")
	}
}
