package notify

import (
	"context"
	"fmt"

	"github.com/slipway-ci/slipway/logging"
	"github.com/slipway-ci/slipway/pipeline"
)

// Dispatcher is the post-run notification hook. It is a no-op when the run
// was started with notifications disabled or no mailer is configured. Its
// error never changes a finalized run status: the runner logs and swallows
// it.
type Dispatcher struct {
	Mailer Mailer
	Log    logging.Logger
}

func (d *Dispatcher) logger() logging.Logger {
	if d.Log == nil {
		return logging.Nop{}
	}
	return d.Log
}

// Notify renders and sends the notification for a finalized run.
func (d *Dispatcher) Notify(ctx context.Context, run *pipeline.Run) error {
	log := d.logger()

	if !run.Params.SendEmail {
		log.Debug("notifications disabled for this run", map[string]any{"run": run.ID})
		return nil
	}
	if d.Mailer == nil {
		log.Info("no mail transport configured; skipping notification", map[string]any{"run": run.ID})
		return nil
	}

	status := string(run.FinalStatus())
	body, err := RenderBody(Context{
		Project:     run.Project,
		BuildNumber: run.Params.BuildNumber,
		Branch:      run.Params.Branch,
		Environment: string(run.Params.Environment),
		Version:     run.Params.ReleaseVersion,
		BuildURL:    run.Params.BuildURL,
		RunID:       run.ID,
		Status:      status,
		ReportURL:   run.ReportURL,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("[slipway] %s #%s %s", run.Project, run.Params.BuildNumber, status)
	if err := d.Mailer.Send(ctx, subject, body); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	log.Info("notification sent", map[string]any{"run": run.ID, "status": status})
	return nil
}
