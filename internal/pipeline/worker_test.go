package pipeline

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestWorkerProcessText(t *testing.T) {
	job := &Job{
		ID:                  "j1",
		Filename:            "notes.txt",
		Status:              StatusQueued,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
		TCYDigit:            2,
		AutoTextOrientation: true,
	}
	job.SetFileData([]byte("12日目の記録。\n\nあ!?い"))

	w := NewWorker(slog.New(slog.DiscardHandler))
	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("status = %s, error = %q", snap.Status, snap.Error)
	}
	if !strings.Contains(snap.HTML, `<span class="tcy">12</span>`) {
		t.Errorf("digit run not wrapped: %q", snap.HTML)
	}
	if !strings.Contains(snap.HTML, `<span class="tcy">!?</span>`) {
		t.Errorf("punctuation pair not wrapped: %q", snap.HTML)
	}
}

func TestWorkerProcessUnsupported(t *testing.T) {
	job := &Job{ID: "j2", Filename: "file.xyz", Status: StatusQueued}
	job.SetFileData([]byte("x"))

	w := NewWorker(slog.New(slog.DiscardHandler))
	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", snap.Status)
	}
	if !strings.Contains(snap.Error, "unsupported") {
		t.Errorf("error = %q", snap.Error)
	}
}
