// Package intake consumes job requests from a Pub/Sub subscription and hands
// them to the job runner. Malformed messages are acked and dropped so they do
// not redeliver forever; runner failures nack for retry.
package intake

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

// Runner executes one decoded job request.
type Runner interface {
	Run(ctx context.Context, req enrich.JobRequest) (enrich.JobMetrics, error)
}

// Subscriber pulls job requests from one subscription.
type Subscriber struct {
	sub    *pubsub.Subscription
	runner Runner
	logger *zap.Logger
}

// NewSubscriber dials Pub/Sub and binds the named subscription.
func NewSubscriber(ctx context.Context, projectID, subscription string, runner Runner, logger *zap.Logger) (*Subscriber, error) {
	if projectID == "" || subscription == "" {
		return nil, fmt.Errorf("pubsub project_id and subscription are required")
	}
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}
	sub := client.Subscription(subscription)
	// Jobs are long-running; one at a time per instance.
	sub.ReceiveSettings.MaxOutstandingMessages = 1
	return &Subscriber{sub: sub, runner: runner, logger: logger}, nil
}

// Listen blocks, processing messages until ctx is canceled.
func (s *Subscriber) Listen(ctx context.Context) error {
	s.logger.Info("listening for job requests", zap.String("subscription", s.sub.String()))
	err := s.sub.Receive(ctx, s.handle)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("receive loop: %w", err)
	}
	return nil
}

func (s *Subscriber) handle(ctx context.Context, msg *pubsub.Message) {
	req, err := DecodeJobRequest(msg.Data)
	if err != nil {
		s.logger.Warn("dropping malformed job message", zap.Error(err), zap.String("message_id", msg.ID))
		msg.Ack()
		return
	}
	s.logger.Info("job request received", zap.String("job_id", req.JobID), zap.String("message_id", msg.ID))

	jm, err := s.runner.Run(ctx, req)
	if err != nil {
		s.logger.Error("job run failed", zap.String("job_id", req.JobID), zap.Error(err))
		msg.Nack()
		return
	}
	s.logger.Info("job request done",
		zap.String("job_id", req.JobID),
		zap.Int("processed", jm.Processed),
		zap.Int("failed", jm.Failed))
	msg.Ack()
}

// DecodeJobRequest parses and validates one job message payload.
func DecodeJobRequest(data []byte) (enrich.JobRequest, error) {
	var req enrich.JobRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return enrich.JobRequest{}, fmt.Errorf("decode job request: %w", err)
	}
	if req.MaxPagesPerSite < 0 || req.Concurrency < 0 {
		return enrich.JobRequest{}, fmt.Errorf("job request has negative limits")
	}
	for _, rule := range req.FilterRules {
		switch rule.Operator {
		case enrich.OpExists, enrich.OpNotExists, enrich.OpEquals, enrich.OpNotEquals:
		default:
			return enrich.JobRequest{}, fmt.Errorf("unknown filter operator %q", rule.Operator)
		}
		if rule.Field == "" {
			return enrich.JobRequest{}, fmt.Errorf("filter rule missing field")
		}
	}
	return req, nil
}
