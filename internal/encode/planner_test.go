package encode_test

import (
	"strings"
	"testing"

	"grabarr/internal/domain/enums"
	"grabarr/internal/encode"
)

func TestCRF_LevelMapping(t *testing.T) {
	cases := []struct {
		level  enums.CompressionLevel
		custom int
		want   int
	}{
		{enums.CompressionLight, 0, 20},
		{enums.CompressionMedium, 0, 23},
		{enums.CompressionHigh, 0, 28},
		{enums.CompressionCustom, 18, 18},
		{enums.CompressionCustom, 30, 30},
	}

	for _, c := range cases {
		got, err := encode.CRF(c.level, c.custom)
		if err != nil {
			t.Fatalf("CRF(%v, %d) error: %v", c.level, c.custom, err)
		}
		if got != c.want {
			t.Errorf("CRF(%v, %d) = %d, want %d", c.level, c.custom, got, c.want)
		}
	}
}

func TestCRF_CustomOutOfRangeIsError(t *testing.T) {
	for _, crf := range []int{17, 31, 0, -5} {
		if _, err := encode.CRF(enums.CompressionCustom, crf); err == nil {
			t.Errorf("CRF(custom, %d): expected error, got nil", crf)
		}
	}
}

func TestPlan_NoneIsStreamCopy(t *testing.T) {
	args, ok, err := encode.Plan(enums.CompressionNone, 0, enums.ModeVideoAudio)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || args != "" {
		t.Errorf("expected no re-encode for none, got ok=%v args=%q", ok, args)
	}
}

func TestPlan_VideoAudioReencodesAudio(t *testing.T) {
	args, ok, err := encode.Plan(enums.CompressionMedium, 0, enums.ModeVideoAudio)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected active plan")
	}
	for _, want := range []string{"ffmpeg:", "-c:v libx264", "-crf 23", "-b:a 128k"} {
		if !strings.Contains(args, want) {
			t.Errorf("plan %q missing %q", args, want)
		}
	}
}

func TestPlan_VideoOnlySkipsAudioArgs(t *testing.T) {
	args, ok, err := encode.Plan(enums.CompressionHigh, 0, enums.ModeVideoOnly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected active plan")
	}
	if !strings.Contains(args, "-crf 28") {
		t.Errorf("plan %q missing video crf", args)
	}
	if strings.Contains(args, "-b:a") || strings.Contains(args, "-c:a") {
		t.Errorf("video-only plan %q should not touch audio", args)
	}
}

func TestPlan_AudioOnlyModesInactive(t *testing.T) {
	for _, m := range []enums.Mode{enums.ModeMp3Audio, enums.ModeM4aAudio} {
		_, ok, err := encode.Plan(enums.CompressionHigh, 0, m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Errorf("mode %v: compression plan should be inactive", m)
		}
	}
}

func TestPlan_CustomOutOfRangePropagates(t *testing.T) {
	if _, _, err := encode.Plan(enums.CompressionCustom, 99, enums.ModeVideoAudio); err == nil {
		t.Error("expected out-of-range custom crf to error")
	}
}
