// Package publisher announces pipeline stage results on a Redis stream.
package publisher

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// DefaultStream is used when no stream name is configured.
const DefaultStream = "rb70.pipeline.stages"

// Stage statuses.
const (
	StatusStarted   = "started"
	StatusOutput    = "output"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StageEvent describes one step of a pipeline run.
type StageEvent struct {
	RunID  string    `json:"run_id"`
	Stage  string    `json:"stage"`
	Status string    `json:"status"`
	Output string    `json:"output,omitempty"`
	Rows   int       `json:"rows,omitempty"`
	Cols   int       `json:"cols,omitempty"`
	Error  string    `json:"error,omitempty"`
	At     time.Time `json:"at"`
}

// StreamPublisher publishes events to Redis streams
type StreamPublisher struct {
	client *redis.Client
	stream string
}

// NewStreamPublisher creates a publisher from an existing client.
func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamPublisher{client: client, stream: stream}
}

// Dial connects to redisURL and pings it.
func Dial(redisURL, stream string) (*StreamPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}

	return NewStreamPublisher(client, stream), nil
}

// Close closes the Redis connection
func (p *StreamPublisher) Close() error {
	return p.client.Close()
}

func (p *StreamPublisher) Stream() string { return p.stream }

// PublishStage appends the event to the stream.
func (p *StreamPublisher) PublishStage(ctx context.Context, ev StageEvent) error {
	values, err := Values(ev)
	if err != nil {
		return err
	}
	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err()
	return errors.Wrapf(err, "xadd %s", p.stream)
}

// Values builds the stream entry fields for an event.
func Values(ev StageEvent) (map[string]interface{}, error) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := sonic.Marshal(ev)
	if err != nil {
		return nil, errors.Wrap(err, "encode stage event")
	}
	return map[string]interface{}{
		"stage":     ev.Stage,
		"status":    ev.Status,
		"data":      string(data),
		"timestamp": ev.At.Unix(),
	}, nil
}
