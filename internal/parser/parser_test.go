package parser

import (
	"strings"
	"testing"
)

func TestCodeRegions(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		inside  []string // 应落在代码区间内的子串
		outside []string // 应落在代码区间外的子串
	}{
		{
			name:    "inline code",
			source:  "use `$x$` then $y$",
			inside:  []string{"$x$"},
			outside: []string{"$y$"},
		},
		{
			name:    "fenced code",
			source:  "before $a$\n\n```tex\n\\(b\\)\n```\n\nafter $c$\n",
			inside:  []string{`\(b\)`},
			outside: []string{"$a$", "$c$"},
		},
		{
			name:    "indented code",
			source:  "para\n\n    $$z$$\n\ntail\n",
			inside:  []string{"$$z$$"},
			outside: []string{"tail"},
		},
		{
			name:    "no code",
			source:  "plain $x$ text",
			outside: []string{"$x$"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := CodeRegions([]byte(tt.source))
			for _, s := range tt.inside {
				pos := strings.Index(tt.source, s)
				if !regions.Contains(pos) || !regions.Contains(pos+len(s)-1) {
					t.Errorf("CodeRegions() = %v, %q at %d should be inside", regions, s, pos)
				}
			}
			for _, s := range tt.outside {
				pos := strings.Index(tt.source, s)
				if regions.Contains(pos) {
					t.Errorf("CodeRegions() = %v, %q at %d should be outside", regions, s, pos)
				}
			}
		})
	}
}

func TestCodeRegions_Empty(t *testing.T) {
	if got := CodeRegions(nil); got != nil {
		t.Errorf("CodeRegions(nil) = %v, want nil", got)
	}
}

func TestRegions_Contains(t *testing.T) {
	rs := Regions{{Start: 2, End: 5}, {Start: 10, End: 12}}
	tests := []struct {
		pos  int
		want bool
	}{
		{0, false}, {2, true}, {4, true}, {5, false}, {9, false}, {10, true}, {11, true}, {12, false},
	}
	for _, tt := range tests {
		if got := rs.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := normalize(Regions{{Start: 8, End: 9}, {Start: 1, End: 4}, {Start: 3, End: 6}})
	want := Regions{{Start: 1, End: 6}, {Start: 8, End: 9}}
	if len(got) != len(want) {
		t.Fatalf("normalize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("normalize()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
