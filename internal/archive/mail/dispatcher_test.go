package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("relay down")
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcherDelivers(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, discardLogger())
	d.Start()

	d.Enqueue("a@example.com", "hi", "<p>hi</p>")
	d.Enqueue("b@example.com", "hi", "<p>hi</p>")

	require.Eventually(t, func() bool {
		return len(mailer.delivered()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	d.Stop()
}

func TestDispatcherSwallowsFailures(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{fail: true}
	d := NewDispatcher(mailer, discardLogger())
	d.Start()

	// Enqueue never blocks and a failing relay never panics the worker.
	for range 10 {
		d.Enqueue("x@example.com", "s", "b")
	}
	time.Sleep(50 * time.Millisecond)
	d.Stop()

	require.Empty(t, mailer.delivered())
}
