// Package hooks bridges session compaction events to an externally supplied
// plugin hook runner. The host agent runtime constructs the Bridge around
// its own compaction passes; nothing in this server's request path drives
// it.
package hooks

import (
	"context"

	"go.uber.org/zap"
)

// Hook points the bridge forwards to.
const (
	BeforeCompaction = "before_compaction"
	AfterCompaction  = "after_compaction"
)

// Message is an opaque conversation entry handed through to plugins.
type Message map[string]interface{}

// CompactionPrep is the host runtime's pre-compaction payload: the batch
// about to be summarized and its token count.
type CompactionPrep struct {
	Messages   []Message
	TokenCount int
}

// CompactionDone is the host runtime's post-compaction payload.
type CompactionDone struct {
	MessageCount   int
	CompactedCount int
}

// BeforeCompactionEvent is the payload delivered to before_compaction hooks.
type BeforeCompactionEvent struct {
	SessionKey   string
	MessageCount int
	TokenCount   int
	Messages     []Message
}

// AfterCompactionEvent is the payload delivered to after_compaction hooks.
type AfterCompactionEvent struct {
	SessionKey     string
	MessageCount   int
	CompactedCount int
}

// HookResult is a plugin hook's verdict. Cancel aborts the pending
// compaction.
type HookResult struct {
	Cancel bool
}

// Runner executes registered plugin hooks. It is an external collaborator;
// retry, timeout and multi-plugin scheduling policy live on its side of the
// boundary.
type Runner interface {
	Has(hook string) bool
	BeforeCompaction(ctx context.Context, ev BeforeCompactionEvent) (*HookResult, error)
	AfterCompaction(ctx context.Context, ev AfterCompactionEvent) error
}

// Bridge forwards two session lifecycle events from the host runtime into
// the plugin hook runner. The runner and session key are injected at
// construction, so there is no shared state between sessions.
type Bridge struct {
	runner     Runner
	sessionKey string
	logger     *zap.Logger
}

func NewBridge(runner Runner, sessionKey string, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{runner: runner, sessionKey: sessionKey, logger: logger}
}

// SessionBeforeCompact runs before_compaction hooks for the prepared batch.
// It returns true when a hook vetoes the compaction. Hook cancellation is a
// control signal, not an error.
func (b *Bridge) SessionBeforeCompact(ctx context.Context, prep CompactionPrep) (bool, error) {
	if b.runner == nil || !b.runner.Has(BeforeCompaction) {
		return false, nil
	}

	result, err := b.runner.BeforeCompaction(ctx, BeforeCompactionEvent{
		SessionKey:   b.sessionKey,
		MessageCount: len(prep.Messages),
		TokenCount:   prep.TokenCount,
		Messages:     prep.Messages,
	})
	if err != nil {
		return false, err
	}

	if result != nil && result.Cancel {
		b.logger.Info("compaction vetoed by plugin hook",
			zap.String("session", b.sessionKey),
			zap.Int("messages", len(prep.Messages)),
		)
		return true, nil
	}
	return false, nil
}

// SessionCompact notifies after_compaction hooks once compaction finished.
// The counts the event carries are forwarded as-is.
func (b *Bridge) SessionCompact(ctx context.Context, done CompactionDone) error {
	if b.runner == nil || !b.runner.Has(AfterCompaction) {
		return nil
	}

	return b.runner.AfterCompaction(ctx, AfterCompactionEvent{
		SessionKey:     b.sessionKey,
		MessageCount:   done.MessageCount,
		CompactedCount: done.CompactedCount,
	})
}
