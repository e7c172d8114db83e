package cli

import (
	"io"
	"testing"
)

func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		isTTY      bool
		expectLive bool
		wantWarn   bool
		wantErr    bool
	}{
		{name: "empty means auto", mode: "", isTTY: true, expectLive: true},
		{name: "auto tty", mode: "auto", isTTY: true, expectLive: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, expectLive: false},
		{name: "plain", mode: "plain", isTTY: true, expectLive: false},
		{name: "live tty", mode: " LIVE ", isTTY: true, expectLive: true},
		{name: "live non-tty warning", mode: "live", isTTY: false, expectLive: false, wantWarn: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			decision, err := ResolveUIMode(tc.mode, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.UseLive != tc.expectLive {
				t.Fatalf("expected UseLive=%v, got %v", tc.expectLive, decision.UseLive)
			}
			if tc.wantWarn != (decision.Warning != "") {
				t.Fatalf("unexpected warning %q", decision.Warning)
			}
		})
	}
}

func TestDefaultIsTerminalRejectsPlainWriters(t *testing.T) {
	if defaultIsTerminal(nil) {
		t.Fatalf("nil writer is not a terminal")
	}
	if defaultIsTerminal(io.Discard) {
		t.Fatalf("io.Discard is not a terminal")
	}
}
