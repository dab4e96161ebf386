package mail

import (
	"context"
	"log/slog"
	"time"
)

// Dispatcher queues messages for background delivery so request handlers
// never block on (or observe failures of) the SMTP round trip. Failures are
// logged and dropped; already-committed state such as reset codes stays
// committed regardless.
type Dispatcher struct {
	mailer Mailer
	logger *slog.Logger

	queue  chan message
	stopCh chan struct{}
	doneCh chan struct{}
}

type message struct {
	to       string
	subject  string
	htmlBody string
}

const (
	queueDepth  = 64
	sendTimeout = 30 * time.Second
)

func NewDispatcher(mailer Mailer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		mailer: mailer,
		logger: logger,
		queue:  make(chan message, queueDepth),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start begins the background delivery worker.
func (d *Dispatcher) Start() {
	go d.run()
}

// Stop drains nothing: queued but unsent messages are dropped. Blocks until
// the worker exits.
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	<-d.doneCh
}

// Enqueue submits a message for delivery. Never blocks; when the queue is
// full the message is dropped with a log line, matching the best-effort
// contract.
func (d *Dispatcher) Enqueue(to, subject, htmlBody string) {
	select {
	case d.queue <- message{to: to, subject: subject, htmlBody: htmlBody}:
	default:
		d.logger.Warn("mail queue full, dropping message", "to", to, "subject", subject)
	}
}

func (d *Dispatcher) run() {
	defer close(d.doneCh)

	for {
		select {
		case msg := <-d.queue:
			d.deliver(msg)
		case <-d.stopCh:
			return
		}
	}
}

func (d *Dispatcher) deliver(msg message) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.mailer.Send(ctx, msg.to, msg.subject, msg.htmlBody); err != nil {
		d.logger.Error("mail delivery failed", "to", msg.to, "err", err)
		return
	}
	d.logger.Info("mail delivered", "to", msg.to, "subject", msg.subject)
}
