package downloads

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"grabarr/internal/domain/command"
	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/enums"
	"grabarr/internal/domain/errconsts"
	"grabarr/internal/encode"
	"grabarr/internal/format"
	"grabarr/internal/models"
	"grabarr/internal/parsing"
	"grabarr/internal/utils/logging"
)

// VideoDownload supervises one extraction subprocess for one request.
// Each instance owns exactly one process and one accumulation buffer;
// nothing is shared across concurrent requests.
type VideoDownload struct {
	Request *models.DownloadRequest

	// YtdlpPath is the resolved executable path or invocation name.
	YtdlpPath string

	// CookieArgs are optional cookie arguments appended to the argv.
	CookieArgs []string

	// Timeout is the hard wall-clock ceiling for the whole invocation.
	Timeout time.Duration

	// Retries bounds whole-download retry attempts inside the single
	// invocation.
	Retries int

	// OnProgress receives parsed samples as output arrives. Samples are
	// not monotonic; display the latest, not a running maximum.
	OnProgress func(models.ProgressSample)

	mu              sync.Mutex
	handle          *ProcessHandle
	cancelRequested bool
	savedPath       string

	// buf accumulates combined subprocess output for the lifetime of
	// this one request. Classification reads it exactly once at exit.
	buf strings.Builder
}

// NewVideoDownload builds a supervisor for one request.
func NewVideoDownload(req *models.DownloadRequest, ytdlpPath string) *VideoDownload {
	return &VideoDownload{
		Request:   req,
		YtdlpPath: ytdlpPath,
		Timeout:   consts.DownloadTimeout,
		Retries:   consts.DefaultDLRetries,
	}
}

// Handle returns the process handle, or nil before spawn.
func (d *VideoDownload) Handle() *ProcessHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handle
}

// Cancel requests cooperative termination. Safe to call at any point,
// including before the process has spawned, and idempotent throughout.
func (d *VideoDownload) Cancel() {
	d.mu.Lock()
	d.cancelRequested = true
	h := d.handle
	d.mu.Unlock()

	if h != nil {
		h.Kill()
	}
}

// SavedPath returns the absolute output path when the subprocess printed
// one, or "" when only a synthesized name is known.
func (d *VideoDownload) SavedPath() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.savedPath
}

// buildVideoCommand assembles the yt-dlp argument list for the request.
func (d *VideoDownload) buildVideoCommand(ctx context.Context) (*exec.Cmd, error) {
	args := make([]string, 0, 32)

	// Restrict filenames
	args = append(args, command.RestrictFilenames)

	// Output location + filename syntax
	outputSyntax := d.Request.FilenameTemplate
	if outputSyntax == "" {
		outputSyntax = command.FilenameSyntax
	}
	args = append(args, command.Output, filepath.Join(d.Request.OutputDir, outputSyntax))

	// Print filename to console upon completion
	args = append(args, command.Print, command.AfterMove)

	// One progress line per reading, single URL only
	args = append(args, command.Newline, command.NoPlaylist)

	// Format selection
	expr := format.BuildExpression(d.Request.Mode, d.Request.Quality)
	args = append(args, command.Format, expr.String())

	if d.Request.Mode.IsAudioOnly() {
		args = append(args,
			command.ExtractAudio,
			command.AudioFormat, d.Request.OutputExtension(),
			command.AudioQuality, d.Request.AudioQuality)
	} else if d.Request.Mode == enums.ModeVideoAudio {
		// Merge separate video/audio streams into a single container.
		args = append(args, command.YtDLPOutputExt, consts.PreferredVideoExt)
	}

	// Encoder post-processing for compression targets
	ffmpegArgs, active, err := encode.Plan(d.Request.Compression, d.Request.CustomCRF, d.Request.Mode)
	if err != nil {
		return nil, err
	}
	if active {
		args = append(args, command.PostprocessorArgs, ffmpegArgs)
	}

	// Cookies
	args = append(args, d.CookieArgs...)

	// Bounded retries with a short sleep between attempts
	args = append(args,
		command.Retries, strconv.Itoa(d.Retries),
		command.FragmentRetries, strconv.Itoa(consts.FragmentRetries),
		command.RetrySleep, strconv.Itoa(consts.RetrySleepSecs))

	// Rotate client identities (avoid upstream restriction failures)
	args = append(args, command.ClientRotation...)

	// Add target URL [ MUST GO LAST !! ]
	args = append(args, d.Request.URL)

	cmd := exec.CommandContext(ctx, d.YtdlpPath, args...)
	logging.D(1, "Built download command for URL %q:\n%v", d.Request.URL, cmd.String())

	return cmd, nil
}

// Execute spawns the extraction subprocess, streams its combined output
// through the progress parser and accumulation buffer, and classifies
// the terminal outcome. Exactly one process per request; no pooling, no
// respawn. Format fallback lives inside the single invocation's argument.
func (d *VideoDownload) Execute(ctx context.Context) models.Outcome {
	ext := d.Request.OutputExtension()

	// Fail fast when the executable cannot be invoked at all.
	if _, err := exec.LookPath(d.YtdlpPath); err != nil {
		wrapped := fmt.Errorf(errconsts.YTDLPNotFound, d.YtdlpPath, err)
		logging.E("%v", wrapped)
		return classify(nil, exitStatus{notFound: true}, wrapped.Error(), ext)
	}

	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	cmd, err := d.buildVideoCommand(ctx)
	if err != nil {
		return models.FailedOutcome(models.ErrUnknown, err.Error(), "")
	}

	// Process group lets a kill reach helper children (e.g. ffmpeg).
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = 5 * time.Second

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return models.FailedOutcome(models.ErrUnknown, err.Error(), "")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return models.FailedOutcome(models.ErrUnknown, err.Error(), "")
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return classify(nil, exitStatus{notFound: true}, err.Error(), ext)
		}
		return models.FailedOutcome(models.ErrUnknown,
			fmt.Errorf(errconsts.YTDLPFailure, err).Error(), "")
	}

	handle := newProcessHandle(cmd)
	d.mu.Lock()
	d.handle = handle
	pendingCancel := d.cancelRequested
	d.mu.Unlock()
	if pendingCancel {
		handle.Kill()
	}

	// Merge stdout and stderr into a line channel. Interleaving across
	// the two streams is best-effort; each chunk stands alone.
	lineChan := make(chan string, 100)
	go func() {
		defer close(lineChan)
		scanner := bufio.NewScanner(io.MultiReader(stdout, stderr))
		for scanner.Scan() {
			lineChan <- scanner.Text()
		}
	}()

	for line := range lineChan {
		d.consumeLine(line)
	}

	waitErr := cmd.Wait()
	handle.markExited()

	timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded) && !handle.CancelRequested()
	outcome := classify(handle, exitStatus{exitErr: waitErr, timedOut: timedOut}, d.buf.String(), ext)

	logging.D(1, "Download for URL %q classified as %s", d.Request.URL, outcome.Status)
	return outcome
}

// consumeLine appends one output line to the accumulation buffer and
// feeds the progress parser.
func (d *VideoDownload) consumeLine(line string) {
	d.buf.WriteString(line)
	d.buf.WriteByte('\n')

	if line != "" {
		logging.D(4, "Download terminal output: %q", line)
	}

	// Remember the after-move path for verification on success.
	if strings.HasPrefix(line, string(filepath.Separator)) {
		if e := filepath.Ext(line); slices.Contains(consts.AllVidExtensions, e) ||
			slices.Contains(consts.AllAudioExtensions, e) {
			d.mu.Lock()
			d.savedPath = strings.TrimSpace(line)
			d.mu.Unlock()
		}
	}

	if sample, ok := parsing.ParseProgress(line); ok && d.OnProgress != nil {
		d.OnProgress(sample)
	}
}
