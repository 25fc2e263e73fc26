package cookies

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBaseDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc", "youtube.com"},
		{"https://media.example.co.uk/clip", "example.co.uk"},
		{"http://localhost:8080/x", "localhost"},
	}
	for _, c := range cases {
		got, err := baseDomain(c.in)
		if err != nil {
			t.Fatalf("baseDomain(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("baseDomain(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := baseDomain("::::not-a-url"); err == nil {
		t.Error("expected error for unparseable URL")
	}
}

func TestWriteNetscapeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")
	cookies := []*http.Cookie{
		{
			Name:    "session",
			Value:   "abc123",
			Path:    "/",
			Domain:  "media.example.com",
			Secure:  true,
			Expires: time.Unix(1900000000, 0),
		},
	}

	got, err := WriteNetscapeFile(cookies, path)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	if got != path {
		t.Fatalf("returned path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "# Netscape HTTP Cookie File") {
		t.Error("missing Netscape header")
	}
	if !strings.Contains(content, ".media.example.com\tFALSE\t/\tTRUE\t1900000000\tsession\tabc123") {
		t.Errorf("cookie line malformed:\n%s", content)
	}
}

func TestNetscapeFilePath_PerRequest(t *testing.T) {
	a := NetscapeFilePath("req-a")
	b := NetscapeFilePath("req-b")
	if a == b {
		t.Errorf("paths for distinct requests must differ, both %q", a)
	}
	if filepath.Dir(a) != os.TempDir() {
		t.Errorf("path %q not under the temp directory", a)
	}
	if !strings.Contains(filepath.Base(a), "req-a") {
		t.Errorf("path %q does not embed the request ID", a)
	}
}

func TestWriteNetscapeFile_NoCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")
	got, err := WriteNetscapeFile(nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("path = %q, want empty for no cookies", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created when there are no cookies")
	}
}
