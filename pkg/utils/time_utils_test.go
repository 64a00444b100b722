package utils

import (
	"testing"
	"time"
)

func TestRelativeLabel(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "agora"},
		{5 * time.Minute, "5min"},
		{59 * time.Minute, "59min"},
		{3 * time.Hour, "3h"},
		{2 * 24 * time.Hour, "2d"},
		{6 * 24 * time.Hour, "6d"},
		{8 * 24 * time.Hour, "07/03/2025"},
	}
	for _, c := range cases {
		if got := RelativeLabel(now.Add(-c.age), now); got != c.want {
			t.Errorf("RelativeLabel(now-%v) = %q, want %q", c.age, got, c.want)
		}
	}
}

func TestFromUnixSeconds(t *testing.T) {
	if !FromUnixSeconds(0).IsZero() {
		t.Error("expected zero time for 0")
	}
	got := FromUnixSeconds(1700000000)
	if got.Unix() != 1700000000 {
		t.Errorf("round trip mismatch: %v", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}
