package bot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"securitybot/pkg/logger"
	"securitybot/service"
)

type outbox struct {
	mu    sync.Mutex
	texts []string
	chats []int64
}

func (o *outbox) send(chatID int64, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.chats = append(o.chats, chatID)
	o.texts = append(o.texts, text)
	return nil
}

func (o *outbox) sent() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.texts...)
}

func newTestBot(o *outbox) *Bot {
	return &Bot{
		Log:      logger.NewNop(),
		Sessions: newSessionStore(),
		ctx:      context.Background(),
		deliver:  o.send,
	}
}

func TestRunPendingDelivers(t *testing.T) {
	o := &outbox{}
	b := newTestBot(o)
	sess := b.Sessions.get(7)

	sess.Lock()
	sess.State = StateRequestForm
	sess.Step = 2
	b.runPending(7, sess, func(ctx context.Context) (string, error) {
		return "done", nil
	})
	sess.Unlock()
	b.pending.Wait()

	if diff := cmp.Diff([]string{"done"}, o.sent()); diff != "" {
		t.Fatalf("delivered mismatch (-want +got):\n%s", diff)
	}
	if o.chats[0] != 7 {
		t.Fatalf("delivered to chat %d, want 7", o.chats[0])
	}
	if sess.State != StateIdle || sess.Step != 0 || sess.hasPending() {
		t.Fatalf("session not released: %+v", sess)
	}
}

func TestRunPendingCancelledMidDelay(t *testing.T) {
	o := &outbox{}
	b := newTestBot(o)
	sess := b.Sessions.get(7)

	started := make(chan struct{})
	sess.Lock()
	sess.State = StateReportConfirm
	b.runPending(7, sess, func(ctx context.Context) (string, error) {
		close(started)
		err := service.Simulate(ctx, time.Hour)
		return "late", err
	})
	sess.Unlock()

	<-started
	sess.Lock()
	sess.reset(StateServiceSearch)
	sess.Unlock()
	b.pending.Wait()

	if got := o.sent(); len(got) != 0 {
		t.Fatalf("cancelled submission delivered %q", got)
	}
	if sess.State != StateServiceSearch {
		t.Fatalf("abandoned submission changed state to %q", sess.State)
	}
}

func TestRunPendingReplaced(t *testing.T) {
	o := &outbox{}
	b := newTestBot(o)
	sess := b.Sessions.get(7)

	sess.Lock()
	b.runPending(7, sess, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "first", nil
	})
	b.runPending(7, sess, func(ctx context.Context) (string, error) {
		return "second", nil
	})
	sess.Unlock()
	b.pending.Wait()

	if diff := cmp.Diff([]string{"second"}, o.sent()); diff != "" {
		t.Fatalf("delivered mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPendingValidationError(t *testing.T) {
	o := &outbox{}
	b := newTestBot(o)
	sess := b.Sessions.get(7)

	sess.Lock()
	sess.State = StateReportConfirm
	b.runPending(7, sess, func(ctx context.Context) (string, error) {
		return "", service.ValidateLogin("", "")
	})
	sess.Unlock()
	b.pending.Wait()

	want := []string{"⚠️ " + service.ErrMissingFields.Error()}
	if diff := cmp.Diff(want, o.sent()); diff != "" {
		t.Fatalf("delivered mismatch (-want +got):\n%s", diff)
	}
	if sess.State != StateIdle {
		t.Fatalf("state = %q, want idle", sess.State)
	}
}

func TestRunPendingShutdown(t *testing.T) {
	o := &outbox{}
	b := newTestBot(o)
	ctx, cancel := context.WithCancel(context.Background())
	b.ctx = ctx
	sess := b.Sessions.get(7)

	sess.Lock()
	b.runPending(7, sess, func(ctx context.Context) (string, error) {
		return "late", service.Simulate(ctx, time.Hour)
	})
	sess.Unlock()

	cancel()
	b.pending.Wait()
	if got := o.sent(); len(got) != 0 {
		t.Fatalf("shutdown delivered %q", got)
	}
}
