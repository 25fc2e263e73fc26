package downloads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"grabarr/internal/domain/enums"
	"grabarr/internal/models"
)

// writeFakeYtdlp drops an executable shell script standing in for the
// extraction executable.
func writeFakeYtdlp(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yt-dlp")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("writing fake executable: %v", err)
	}
	return path
}

func testRequest(mode enums.Mode) *models.DownloadRequest {
	return models.NewDownloadRequest(
		"https://example.com/watch?v=abc123",
		mode,
		enums.Quality720p,
		enums.CompressionNone,
		0,
		"5",
		os.TempDir(),
		"",
	)
}

func TestExecute_SuccessWithDestination(t *testing.T) {
	script := `echo "[youtube] abc123: Downloading webpage"
echo "[download] Destination: /out/clip.mp4"
echo "[download]  50.0% of unknown"
echo "[download] 100% of unknown"
exit 0
`
	d := NewVideoDownload(testRequest(enums.ModeVideoAudio), writeFakeYtdlp(t, script))

	var samples []models.ProgressSample
	d.OnProgress = func(s models.ProgressSample) { samples = append(samples, s) }

	out := d.Execute(context.Background())
	if out.Status != models.OutcomeSuccess {
		t.Fatalf("status = %v (%v: %s), want success", out.Status, out.Kind, out.UserMessage)
	}
	if out.SavedFileName != "clip.mp4" {
		t.Errorf("saved file = %q, want clip.mp4", out.SavedFileName)
	}
	if len(samples) != 2 {
		t.Errorf("progress samples = %d, want 2", len(samples))
	}
	if h := d.Handle(); h == nil || h.State() != HandleExited {
		t.Errorf("handle should be exited after completion")
	}
}

func TestExecute_LiveStreamEndedFailure(t *testing.T) {
	script := `echo "ERROR: This live event has ended." 1>&2
exit 1
`
	d := NewVideoDownload(testRequest(enums.ModeVideoAudio), writeFakeYtdlp(t, script))

	out := d.Execute(context.Background())
	if out.Status != models.OutcomeFailed || out.Kind != models.ErrLiveStreamEnded {
		t.Fatalf("got %v/%v, want failed/live stream ended", out.Status, out.Kind)
	}
	if out.RawDiagnostics == "" {
		t.Error("raw diagnostics should be retained on failure")
	}
}

func TestExecute_ExecutableNotFound(t *testing.T) {
	d := NewVideoDownload(testRequest(enums.ModeVideoAudio),
		filepath.Join(t.TempDir(), "definitely-missing"))

	out := d.Execute(context.Background())
	if out.Status != models.OutcomeFailed || out.Kind != models.ErrExecutableNotFound {
		t.Fatalf("got %v/%v, want failed/executable not found", out.Status, out.Kind)
	}
}

func TestExecute_TimeoutKillsProcess(t *testing.T) {
	script := `echo "[download]   1.0% of unknown"
sleep 30
exit 0
`
	d := NewVideoDownload(testRequest(enums.ModeVideoAudio), writeFakeYtdlp(t, script))
	d.Timeout = 500 * time.Millisecond

	start := time.Now()
	out := d.Execute(context.Background())

	if out.Status != models.OutcomeFailed || out.Kind != models.ErrTimeout {
		t.Fatalf("got %v/%v, want failed/timeout", out.Status, out.Kind)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("process not terminated promptly on timeout (%v)", elapsed)
	}
}

func TestExecute_CancelYieldsCancelled(t *testing.T) {
	// Success-shaped output before the cancel must not matter.
	script := `echo "[download] Destination: /out/clip.mp4"
echo "[download]  99.0% of unknown"
sleep 30
exit 0
`
	d := NewVideoDownload(testRequest(enums.ModeVideoAudio), writeFakeYtdlp(t, script))

	outcomeCh := make(chan models.Outcome, 1)
	go func() { outcomeCh <- d.Execute(context.Background()) }()

	deadline := time.After(10 * time.Second)
	for d.Handle() == nil {
		select {
		case <-deadline:
			t.Fatal("process never spawned")
		case <-time.After(10 * time.Millisecond):
		}
	}
	d.Cancel()
	d.Cancel() // idempotent

	select {
	case <-d.Handle().Done():
	case <-time.After(15 * time.Second):
		t.Fatal("process did not exit after cancel")
	}

	select {
	case out := <-outcomeCh:
		if out.Status != models.OutcomeCancelled {
			t.Fatalf("status = %v, want cancelled", out.Status)
		}
		if out.RawDiagnostics != "" {
			t.Error("cancelled outcome must not carry diagnostics")
		}
	case <-time.After(15 * time.Second):
		t.Fatal("cancel did not terminate the download")
	}
}

func TestExecute_CancelBeforeSpawn(t *testing.T) {
	script := `sleep 30
exit 0
`
	d := NewVideoDownload(testRequest(enums.ModeVideoAudio), writeFakeYtdlp(t, script))
	d.Cancel()

	done := make(chan models.Outcome, 1)
	go func() { done <- d.Execute(context.Background()) }()

	select {
	case out := <-done:
		if out.Status != models.OutcomeCancelled {
			t.Fatalf("status = %v, want cancelled", out.Status)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("pre-spawn cancel did not take effect")
	}
}

func TestBuildVideoCommand_ArgAssembly(t *testing.T) {
	req := models.NewDownloadRequest(
		"https://example.com/watch?v=abc123",
		enums.ModeVideoAudio,
		enums.Quality1080p,
		enums.CompressionMedium,
		0,
		"0",
		"/videos",
		"",
	)
	d := NewVideoDownload(req, "yt-dlp")
	d.CookieArgs = []string{"--cookies", "/tmp/cookies.txt"}

	cmd, err := d.buildVideoCommand(context.Background())
	if err != nil {
		t.Fatalf("build error: %v", err)
	}

	joined := cmd.String()
	for _, want := range []string{
		"--restrict-filenames",
		"-o /videos/%(title)s.%(ext)s",
		"--print after_move:%(filepath)s",
		"--no-playlist",
		"-f bv*[height<=1080][ext=mp4]+ba[ext=m4a]/",
		"--merge-output-format mp4",
		"--postprocessor-args ffmpeg:-c:v libx264",
		"--cookies /tmp/cookies.txt",
		"--retries 3",
		"--fragment-retries 5",
		"--retry-sleep 3",
		"--extractor-args",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("command %q missing %q", joined, want)
		}
	}

	args := cmd.Args
	if args[len(args)-1] != req.URL {
		t.Errorf("target URL must go last, got %q", args[len(args)-1])
	}
}

func TestBuildVideoCommand_AudioExtraction(t *testing.T) {
	req := models.NewDownloadRequest(
		"https://example.com/watch?v=abc123",
		enums.ModeMp3Audio,
		enums.QualityBest,
		enums.CompressionNone,
		0,
		"320K",
		"/music",
		"",
	)
	d := NewVideoDownload(req, "yt-dlp")

	cmd, err := d.buildVideoCommand(context.Background())
	if err != nil {
		t.Fatalf("build error: %v", err)
	}

	joined := cmd.String()
	for _, want := range []string{
		"-f ba/b",
		"-x",
		"--audio-format mp3",
		"--audio-quality 320K",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("command %q missing %q", joined, want)
		}
	}
	if strings.Contains(joined, "--merge-output-format") {
		t.Error("audio extraction should not request a merge container")
	}
	if strings.Contains(joined, "--postprocessor-args") {
		t.Error("audio extraction should not carry video postprocessor args")
	}
}

