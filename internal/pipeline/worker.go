package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/lostandfound/tcy"
	"github.com/lostandfound/tcy/internal/parser"
)

// Worker runs one conversion job: parse the manuscript into display
// HTML, then apply the vertical-text transform.
type Worker struct {
	log *slog.Logger
}

func NewWorker(log *slog.Logger) *Worker {
	return &Worker{log: log}
}

// Process runs the full convert + transform pipeline for a job.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusConverting)
	title, html, err := parser.Convert(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("convert failed", "error", err)
		job.Fail(fmt.Sprintf("convert: %s", err))
		return
	}

	job.SetStatus(StatusTransforming)
	engine := tcy.New(tcy.Config{
		TCYDigit:            job.TCYDigit,
		AutoTextOrientation: job.AutoTextOrientation,
	}, w.log)
	out := engine.Transform(html)

	job.SetResult(title, out)
	log.Info("job complete", "bytes_in", len(job.FileData()), "bytes_out", len(out))
}
