package downloads

import (
	"context"
	"testing"
	"time"
)

func TestFetchMetadata_ParsesFields(t *testing.T) {
	script := `cat <<'EOF'
{"title":"My Clip","duration":125.0,"filesize_approx":2000000,"upload_date":"20240131"}
EOF
exit 0
`
	meta, err := FetchMetadata(context.Background(), writeFakeYtdlp(t, script),
		"https://example.com/watch?v=abc123", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta.Title != "My Clip" {
		t.Errorf("title = %q, want My Clip", meta.Title)
	}
	if meta.DurationSecs != 125.0 {
		t.Errorf("duration = %v, want 125", meta.DurationSecs)
	}
	if meta.FilesizeApprox != 2000000 {
		t.Errorf("filesize = %d, want 2000000", meta.FilesizeApprox)
	}
	y, m, day := meta.UploadDate.Date()
	if y != 2024 || m != time.January || day != 31 {
		t.Errorf("upload date = %v, want 2024-01-31", meta.UploadDate)
	}
}

func TestFetchMetadata_FailureDoesNotPanic(t *testing.T) {
	script := `echo "ERROR: Video unavailable" 1>&2
exit 1
`
	meta, err := FetchMetadata(context.Background(), writeFakeYtdlp(t, script),
		"https://example.com/watch?v=abc123", nil)
	if err == nil {
		t.Fatal("expected error from failing metadata call")
	}
	if meta != nil {
		t.Error("metadata should be nil on failure")
	}
}

func TestFetchMetadata_BadJSON(t *testing.T) {
	script := `echo "this is not json"
exit 0
`
	if _, err := FetchMetadata(context.Background(), writeFakeYtdlp(t, script),
		"https://example.com/watch?v=abc123", nil); err == nil {
		t.Fatal("expected error from malformed JSON")
	}
}
