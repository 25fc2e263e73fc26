package downloads

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"grabarr/internal/domain/command"
	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/errconsts"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"

	"github.com/araddon/dateparse"
)

// ytdlpMetadata mirrors the fields of interest in yt-dlp's -J output.
type ytdlpMetadata struct {
	Title          string  `json:"title"`
	Duration       float64 `json:"duration"`
	FilesizeApprox int64   `json:"filesize_approx"`
	UploadDate     string  `json:"upload_date"`
}

// FetchMetadata runs the metadata-only invocation (JSON output, no
// download) ahead of the main flow. It is lower priority: a failure here
// must only suppress the size estimate, never block the download, so
// callers log and continue on error.
func FetchMetadata(ctx context.Context, ytdlpPath, url string, cookieArgs []string) (*models.VideoMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.MetadataTimeout)
	defer cancel()

	args := make([]string, 0, 8)
	args = append(args, command.OutputJSON, command.SkipVideo, command.NoPlaylist)
	args = append(args, cookieArgs...)
	args = append(args, url)

	cmd := exec.CommandContext(ctx, ytdlpPath, args...)
	logging.D(2, "Built metadata command for URL %q:\n%v", url, cmd.String())

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf(errconsts.MetadataFailure, url, err)
	}

	var raw ytdlpMetadata
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf(errconsts.MetadataFailure, url, err)
	}

	meta := &models.VideoMetadata{
		Title:          raw.Title,
		DurationSecs:   raw.Duration,
		FilesizeApprox: raw.FilesizeApprox,
	}

	if raw.UploadDate != "" {
		if t, err := dateparse.ParseAny(raw.UploadDate); err == nil {
			meta.UploadDate = t
		} else {
			logging.D(2, "Could not parse upload date %q: %v", raw.UploadDate, err)
		}
	}

	return meta, nil
}
