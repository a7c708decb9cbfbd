package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	olderThan time.Duration
	deleted   int64
	err       error
}

func (p *fakePurger) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	p.olderThan = olderThan
	return p.deleted, p.err
}

type fakePruner struct {
	deleted int64
	err     error
}

func (p *fakePruner) PruneExpiredSessions(ctx context.Context) (int64, error) {
	return p.deleted, p.err
}

type countingMetrics struct {
	counts map[string]int
}

func (m *countingMetrics) CountJob(task, outcome string) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[task+"/"+outcome]++
}

func TestAuditRetentionJob(t *testing.T) {
	purger := &fakePurger{deleted: 12}
	metrics := &countingMetrics{}
	job := NewAuditRetentionJob(purger, slog.Default(), metrics)

	task, err := NewAuditRetentionTask(90 * 24 * time.Hour)
	require.NoError(t, err)

	require.NoError(t, job.Handle(context.Background(), task))
	assert.Equal(t, 90*24*time.Hour, purger.olderThan)
	assert.Equal(t, 1, metrics.counts["audit:retention/ok"])
}

func TestAuditRetentionJobPropagatesErrors(t *testing.T) {
	purger := &fakePurger{err: errors.New("db down")}
	metrics := &countingMetrics{}
	job := NewAuditRetentionJob(purger, slog.Default(), metrics)

	task, err := NewAuditRetentionTask(time.Hour)
	require.NoError(t, err)

	assert.Error(t, job.Handle(context.Background(), task))
	assert.Equal(t, 1, metrics.counts["audit:retention/error"])
}

func TestAuditRetentionJobSkipsBadPayload(t *testing.T) {
	job := NewAuditRetentionJob(&fakePurger{}, slog.Default(), nil)

	bad := asynq.NewTask(TaskAuditRetention, []byte(`{"older_than":"soon"}`))
	assert.ErrorIs(t, job.Handle(context.Background(), bad), asynq.SkipRetry)

	negative := asynq.NewTask(TaskAuditRetention, []byte(`{"older_than":"-1h"}`))
	assert.ErrorIs(t, job.Handle(context.Background(), negative), asynq.SkipRetry)
}

func TestSessionPruneJob(t *testing.T) {
	metrics := &countingMetrics{}
	job := NewSessionPruneJob(&fakePruner{deleted: 3}, slog.Default(), metrics)

	task, err := NewSessionPruneTask()
	require.NoError(t, err)

	require.NoError(t, job.Handle(context.Background(), task))
	assert.Equal(t, 1, metrics.counts["sessions:prune/ok"])

	failing := NewSessionPruneJob(&fakePruner{err: errors.New("db down")}, slog.Default(), metrics)
	assert.Error(t, failing.Handle(context.Background(), task))
	assert.Equal(t, 1, metrics.counts["sessions:prune/error"])
}
