package util

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{input: "SELECT 1;", n: 80, want: "SELECT 1;"},
		{input: "SELECT 1;", n: 9, want: "SELECT 1;"},
		{input: "SELECT 1;", n: 6, want: "SELECT..."},
		{input: "SELECT 1;", n: 0, want: "SELECT 1;"},
		{input: "INSERT INTO t VALUES ('日本語');", n: 24, want: "INSERT INTO t VALUES ('日..."},
	}
	for _, tt := range tests {
		got := Truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("Truncate(%q, %d): want %q; got %q", tt.input, tt.n, tt.want, got)
		}
	}
}

func TestBackquote(t *testing.T) {
	if got := Backquote("hoge"); got != "`hoge`" {
		t.Errorf("want %q; got %q", "`hoge`", got)
	}
}
