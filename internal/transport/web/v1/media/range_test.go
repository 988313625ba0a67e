package media

import "testing"

func TestParseRange(t *testing.T) {
	const size = 1000

	tests := []struct {
		name  string
		spec  string
		start int64
		end   int64
		ok    bool
	}{
		{name: "closed range", spec: "bytes=200-299", start: 200, end: 299, ok: true},
		{name: "open end", spec: "bytes=950-", start: 950, end: 999, ok: true},
		{name: "zero start", spec: "bytes=0-0", start: 0, end: 0, ok: true},
		{name: "start beyond size parses fine", spec: "bytes=1000-1100", start: 1000, end: 1100, ok: true},
		{name: "end beyond size parses fine", spec: "bytes=0-999999", start: 0, end: 999999, ok: true},

		{name: "empty header", spec: "", ok: false},
		{name: "missing prefix", spec: "200-299", ok: false},
		{name: "bare bytes=", spec: "bytes=", ok: false},
		{name: "no separator", spec: "bytes=200", ok: false},
		{name: "garbage start", spec: "bytes=abc-10", ok: false},
		{name: "garbage end", spec: "bytes=0-xyz", ok: false},
		{name: "suffix range unsupported", spec: "bytes=-500", ok: false},
		{name: "negative end", spec: "bytes=0--5", ok: false},
		{name: "multi range unsupported", spec: "bytes=0-10,20-30", ok: false},
		{name: "spaces not tolerated", spec: "bytes= 0-10", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := parseRange(tt.spec, size)
			if ok != tt.ok {
				t.Fatalf("parseRange(%q): ok = %v, want %v", tt.spec, ok, tt.ok)
			}
			if !ok {
				return
			}
			if start != tt.start || end != tt.end {
				t.Fatalf("parseRange(%q) = (%d, %d), want (%d, %d)", tt.spec, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestParseRangeOpenEndUsesSize(t *testing.T) {
	start, end, ok := parseRange("bytes=10-", 42)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if start != 10 || end != 41 {
		t.Fatalf("got (%d, %d), want (10, 41)", start, end)
	}
}
