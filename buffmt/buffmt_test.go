package buffmt

import (
	"strings"
	"testing"
)

func TestFormatFits(t *testing.T) {
	buf := make([]byte, 32)
	n := Format(buf, "hi %d", 7)
	if n != 4 {
		t.Fatalf("Format returned %d, want 4", n)
	}
	if string(buf[:n]) != "hi 7" {
		t.Errorf("buffer holds %q", buf[:n])
	}
}

func TestFormatExactFit(t *testing.T) {
	buf := make([]byte, 4)
	n := Format(buf, "%s", "abcd")
	if n != 4 || string(buf) != "abcd" {
		t.Errorf("n=%d buf=%q", n, buf)
	}
}

func TestFormatTruncates(t *testing.T) {
	long := strings.Repeat("x", 100)
	buf := make([]byte, 10)
	n := Format(buf, "%s", long)
	if n != 100 {
		t.Fatalf("Format returned %d, want the full size 100", n)
	}
	if string(buf) != long[:10] {
		t.Errorf("buffer holds %q, want the leading prefix", buf)
	}
}
