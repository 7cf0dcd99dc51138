// Package artifact archives run reports and produces browsable links to them.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/slipway-ci/slipway/logging"
	"github.com/slipway-ci/slipway/pipeline"
)

// Store archives report files under a run-scoped key and returns a browsable
// link to the stored copy.
type Store interface {
	Archive(ctx context.Context, path, key string) (string, error)
}

// Publisher is the post-run report hook. When the run produced a report file
// it archives it and attaches the link to the run; when no report exists it
// records a skip notice. Its error never changes a finalized run status: the
// runner logs and swallows it.
type Publisher struct {
	Store Store
	Log   logging.Logger
}

func (p *Publisher) logger() logging.Logger {
	if p.Log == nil {
		return logging.Nop{}
	}
	return p.Log
}

// Publish archives the run's report, if any, and sets run.ReportURL.
func (p *Publisher) Publish(ctx context.Context, run *pipeline.Run) error {
	log := p.logger()

	if run.ReportPath == "" {
		log.Info("no report produced; skipping publication", map[string]any{"run": run.ID})
		return nil
	}
	if _, err := os.Stat(run.ReportPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("report file absent; skipping publication", map[string]any{"run": run.ID, "path": run.ReportPath})
			return nil
		}
		return fmt.Errorf("checking report: %w", err)
	}

	key := path.Join(run.Project, run.ID, filepath.Base(run.ReportPath))
	link, err := p.Store.Archive(ctx, run.ReportPath, key)
	if err != nil {
		return fmt.Errorf("archiving report: %w", err)
	}

	run.ReportURL = link
	log.Info("report published", map[string]any{"run": run.ID, "url": link})
	return nil
}
