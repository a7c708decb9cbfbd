package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskAuditRetention is the task type for trimming old audit rows.
	TaskAuditRetention = "audit:retention"
	// TaskSessionPrune is the task type for deleting expired login sessions.
	TaskSessionPrune = "sessions:prune"
)

// AuditRetentionPayload carries the retention window for an audit trim run.
type AuditRetentionPayload struct {
	OlderThan string `json:"older_than"`
}

// NewAuditRetentionTask constructs an audit retention task.
func NewAuditRetentionTask(olderThan time.Duration) (*asynq.Task, error) {
	data, err := json.Marshal(AuditRetentionPayload{OlderThan: olderThan.String()})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAuditRetention, data), nil
}

// NewSessionPruneTask constructs a session prune task.
func NewSessionPruneTask() (*asynq.Task, error) {
	return asynq.NewTask(TaskSessionPrune, nil), nil
}

// AuditPurger deletes audit rows older than the given window.
type AuditPurger interface {
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
}

// SessionPruner deletes expired login sessions.
type SessionPruner interface {
	PruneExpiredSessions(ctx context.Context) (int64, error)
}

// JobMetrics records per-task outcomes.
type JobMetrics interface {
	CountJob(task, outcome string)
}

// AuditRetentionJob trims audit rows past the configured retention window.
type AuditRetentionJob struct {
	purger  AuditPurger
	logger  *slog.Logger
	metrics JobMetrics
}

// NewAuditRetentionJob constructs an AuditRetentionJob.
func NewAuditRetentionJob(purger AuditPurger, logger *slog.Logger, metrics JobMetrics) *AuditRetentionJob {
	return &AuditRetentionJob{purger: purger, logger: logger, metrics: metrics}
}

// Handle processes TaskAuditRetention tasks.
func (j *AuditRetentionJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload AuditRetentionPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		j.count("invalid")
		return asynq.SkipRetry
	}
	olderThan, err := time.ParseDuration(payload.OlderThan)
	if err != nil || olderThan <= 0 {
		j.count("invalid")
		return asynq.SkipRetry
	}
	deleted, err := j.purger.Purge(ctx, olderThan)
	if err != nil {
		j.count("error")
		return err
	}
	j.count("ok")
	j.logger.Info("audit retention pass", slog.Int64("deleted", deleted), slog.String("older_than", payload.OlderThan))
	return nil
}

func (j *AuditRetentionJob) count(outcome string) {
	if j.metrics != nil {
		j.metrics.CountJob(TaskAuditRetention, outcome)
	}
}

// SessionPruneJob removes expired login sessions from storage.
type SessionPruneJob struct {
	pruner  SessionPruner
	logger  *slog.Logger
	metrics JobMetrics
}

// NewSessionPruneJob constructs a SessionPruneJob.
func NewSessionPruneJob(pruner SessionPruner, logger *slog.Logger, metrics JobMetrics) *SessionPruneJob {
	return &SessionPruneJob{pruner: pruner, logger: logger, metrics: metrics}
}

// Handle processes TaskSessionPrune tasks.
func (j *SessionPruneJob) Handle(ctx context.Context, t *asynq.Task) error {
	deleted, err := j.pruner.PruneExpiredSessions(ctx)
	if err != nil {
		j.count("error")
		return err
	}
	j.count("ok")
	j.logger.Info("session prune pass", slog.Int64("deleted", deleted))
	return nil
}

func (j *SessionPruneJob) count(outcome string) {
	if j.metrics != nil {
		j.metrics.CountJob(TaskSessionPrune, outcome)
	}
}
