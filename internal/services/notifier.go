package services

import (
	"log/slog"
	"sync"
	"time"
)

// Sender delivers one notification to one user. Implementations may block for
// the duration of the delivery; they run on dispatcher workers, never on the
// caller's goroutine.
type Sender interface {
	SendNotification(userID int64, message string) bool
}

// LogSender is the default delivery backend: it writes the notification to the
// structured log after a simulated provider latency.
type LogSender struct {
	delay time.Duration
}

func NewLogSender(delay time.Duration) *LogSender {
	return &LogSender{delay: delay}
}

func (s *LogSender) SendNotification(userID int64, message string) bool {
	time.Sleep(s.delay)
	slog.Info("notification sent", "user_id", userID, "message", message)
	return true
}

type notification struct {
	userID  int64
	message string
}

// Dispatcher fans notifications out to a fixed worker pool through a bounded
// queue. Notify never blocks: a full queue drops the notification with a
// warning. There is no ordering between notifications, no retry and no
// cancellation; delivery failures are logged and dropped.
type Dispatcher struct {
	sender Sender
	queue  chan notification
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, queueSize, workers int) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan notification, queueSize),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *Dispatcher) Notify(userID int64, message string) {
	select {
	case d.queue <- notification{userID: userID, message: message}:
	default:
		slog.Warn("notification queue full, dropping", "user_id", userID)
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.queue {
		if !d.sender.SendNotification(n.userID, n.message) {
			slog.Warn("notification delivery failed", "user_id", n.userID)
		}
	}
}

// Stop closes the intake and waits for already-queued notifications to drain.
// Notify must not be called after Stop.
func (d *Dispatcher) Stop() {
	close(d.queue)
	d.wg.Wait()
}
