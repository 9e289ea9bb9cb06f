package pipeline

import (
	"context"
	"time"

	"github.com/fortuna/rb70/internal/platform/logging"
	"github.com/fortuna/rb70/internal/publisher"
)

// ConsoleReporter logs every callback.
type ConsoleReporter struct {
	logger *logging.Logger
}

func NewConsoleReporter(logger *logging.Logger) *ConsoleReporter {
	if logger == nil {
		logger = logging.Default()
	}
	return &ConsoleReporter{logger: logger}
}

func (c *ConsoleReporter) OnStageStart(stage Stage) {
	c.logger.Info("stage started", "stage", stage)
}

func (c *ConsoleReporter) OnStageProgress(stage Stage, message string) {
	c.logger.Info(message, "stage", stage)
}

func (c *ConsoleReporter) OnStageOutput(stage Stage, path string, rows, cols int) {
	c.logger.Info("saved", "stage", stage, "path", path, "rows", rows, "cols", cols)
}

func (c *ConsoleReporter) OnStageComplete(stage Stage) {
	c.logger.Info("stage complete", "stage", stage)
}

func (c *ConsoleReporter) OnStageError(stage Stage, err error) {
	c.logger.Error("stage failed", "stage", stage, "error", err)
}

// StagePublisher delivers stage events.
type StagePublisher interface {
	PublishStage(ctx context.Context, ev publisher.StageEvent) error
}

// PublishingReporter turns callbacks into stage events. Publish failures are
// logged and never fail the stage.
type PublishingReporter struct {
	ctx    context.Context
	pub    StagePublisher
	runID  string
	logger *logging.Logger
	now    func() time.Time
}

func NewPublishingReporter(ctx context.Context, pub StagePublisher, runID string, logger *logging.Logger) *PublishingReporter {
	if logger == nil {
		logger = logging.Default()
	}
	return &PublishingReporter{ctx: ctx, pub: pub, runID: runID, logger: logger, now: time.Now}
}

func (p *PublishingReporter) OnStageStart(stage Stage) {
	p.publish(publisher.StageEvent{Stage: string(stage), Status: publisher.StatusStarted})
}

// OnStageProgress is not published.
func (p *PublishingReporter) OnStageProgress(Stage, string) {}

func (p *PublishingReporter) OnStageOutput(stage Stage, path string, rows, cols int) {
	p.publish(publisher.StageEvent{
		Stage:  string(stage),
		Status: publisher.StatusOutput,
		Output: path,
		Rows:   rows,
		Cols:   cols,
	})
}

func (p *PublishingReporter) OnStageComplete(stage Stage) {
	p.publish(publisher.StageEvent{Stage: string(stage), Status: publisher.StatusCompleted})
}

func (p *PublishingReporter) OnStageError(stage Stage, err error) {
	p.publish(publisher.StageEvent{Stage: string(stage), Status: publisher.StatusFailed, Error: err.Error()})
}

func (p *PublishingReporter) publish(ev publisher.StageEvent) {
	ev.RunID = p.runID
	ev.At = p.now().UTC()
	if err := p.pub.PublishStage(p.ctx, ev); err != nil {
		p.logger.Warn("publish stage event failed", "stage", ev.Stage, "status", ev.Status, "error", err)
	}
}

// MultiReporter fans callbacks out in order.
type MultiReporter []Reporter

func (m MultiReporter) OnStageStart(stage Stage) {
	for _, r := range m {
		r.OnStageStart(stage)
	}
}

func (m MultiReporter) OnStageProgress(stage Stage, message string) {
	for _, r := range m {
		r.OnStageProgress(stage, message)
	}
}

func (m MultiReporter) OnStageOutput(stage Stage, path string, rows, cols int) {
	for _, r := range m {
		r.OnStageOutput(stage, path, rows, cols)
	}
}

func (m MultiReporter) OnStageComplete(stage Stage) {
	for _, r := range m {
		r.OnStageComplete(stage)
	}
}

func (m MultiReporter) OnStageError(stage Stage, err error) {
	for _, r := range m {
		r.OnStageError(stage, err)
	}
}
