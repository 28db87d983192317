package notify

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Worker drains the queue and turns events into email. Runs until the
// context is cancelled. Failed sends are logged and dropped; retry
// policy belongs to the queue's consumer deployment, not the API.
type Worker struct {
	queue  *RedisQueue
	sender Sender
}

func NewWorker(queue *RedisQueue, sender Sender) *Worker {
	return &Worker{queue: queue, sender: sender}
}

func (w *Worker) Run(ctx context.Context) {
	for {
		ev, err := w.queue.Dequeue(ctx, 5*time.Second)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Println("notify dequeue error:", err)
			time.Sleep(time.Second)
			continue
		}
		if ev == nil {
			continue
		}

		if err := w.deliver(ev); err != nil {
			log.Printf("notify send failed for booking %s: %v", ev.BookingID, err)
		}
	}
}

func (w *Worker) deliver(ev *Event) error {
	var subject string
	switch ev.Type {
	case EventBookingConfirmation:
		subject = fmt.Sprintf("Booking confirmed: %s", ev.ServiceName)
	case EventBookingCancellation:
		subject = fmt.Sprintf("Booking cancelled: %s", ev.ServiceName)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking with %s for %s\nfrom %s to %s (UTC) is %s.\n\nBooking reference: %s\n",
		ev.ClientName,
		ev.BusinessName,
		ev.ServiceName,
		ev.StartTime.UTC().Format(time.RFC3339),
		ev.EndTime.UTC().Format(time.RFC3339),
		statusWord(ev.Type),
		ev.BookingID,
	)

	return w.sender.Send(ev.RecipientEmail, subject, body)
}

func statusWord(t EventType) string {
	if t == EventBookingCancellation {
		return "cancelled"
	}
	return "confirmed"
}
