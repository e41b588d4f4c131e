package detector

import (
	"testing"

	"github.com/riverfjs/mathnorm-go/internal/types"
)

// TestDetect 测试各定界符族的检测
func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []types.FormulaSpan
	}{
		{
			name: "inline dollar",
			text: "这是一个公式 $x^2 + y^2 = z^2$ 的示例",
			want: []types.FormulaSpan{{
				FullMatch: "$x^2 + y^2 = z^2$",
				Latex:     "x^2 + y^2 = z^2",
				Family:    types.FamilyInlineDollar,
			}},
		},
		{
			name: "display dollar wins over inline",
			text: "$$x$$",
			want: []types.FormulaSpan{{
				FullMatch: "$$x$$",
				Latex:     "x",
				Family:    types.FamilyDisplayDollar,
			}},
		},
		{
			name: "display dollar with inner dollar",
			text: "$$a$ b$$",
			want: []types.FormulaSpan{{
				FullMatch: "$$a$ b$$",
				Latex:     "a$ b",
				Family:    types.FamilyDisplayDollar,
			}},
		},
		{
			name: "paren and bracket",
			text: `LaTeX 格式：\(x = 1\) 和 \[y = 2\]`,
			want: []types.FormulaSpan{
				{FullMatch: `\(x = 1\)`, Latex: "x = 1", Family: types.FamilyParen},
				{FullMatch: `\[y = 2\]`, Latex: "y = 2", Family: types.FamilyBracket},
			},
		},
		{
			name: "paren payload trimmed",
			text: `\(  a+b  \)`,
			want: []types.FormulaSpan{{FullMatch: `\(  a+b  \)`, Latex: "a+b", Family: types.FamilyParen}},
		},
		{
			name: "bracket keeps raw payload",
			text: "\\[ a\nb \\]",
			want: []types.FormulaSpan{{FullMatch: "\\[ a\nb \\]", Latex: " a\nb ", Family: types.FamilyBracket}},
		},
		{
			name: "mixed families",
			text: `混合格式：$x^2$ 和 $$y^2$$ 以及 \(z^2\)`,
			want: []types.FormulaSpan{
				{FullMatch: "$x^2$", Latex: "x^2", Family: types.FamilyInlineDollar},
				{FullMatch: "$$y^2$$", Latex: "y^2", Family: types.FamilyDisplayDollar},
				{FullMatch: `\(z^2\)`, Latex: "z^2", Family: types.FamilyParen},
			},
		},
		{
			name: "first closer terminates",
			text: `$a \(b$ c\)`,
			want: []types.FormulaSpan{{FullMatch: `$a \(b$`, Latex: `a \(b`, Family: types.FamilyInlineDollar}},
		},
		{
			name: "single byte backtracking after empty candidates",
			text: "空公式：$$$$ 和 $ $ 应该被忽略",
			want: []types.FormulaSpan{{FullMatch: "$ 和 $", Latex: "和", Family: types.FamilyInlineDollar}},
		},
		{
			name: "multiline inline dollar",
			text: "跨行测试：$x = 1\n+ 2$ 结束",
			want: []types.FormulaSpan{{FullMatch: "$x = 1\n+ 2$", Latex: "x = 1\n+ 2", Family: types.FamilyInlineDollar}},
		},
		{name: "whitespace display", text: "$$ $$", want: nil},
		{name: "whitespace inline", text: "$ $", want: nil},
		{name: "unterminated paren", text: `\(x^2`, want: nil},
		{name: "unterminated bracket", text: `\[x^2\)`, want: nil},
		{name: "no formula", text: "没有公式的普通文本", want: nil},
		{name: "empty", text: "", want: nil},
		{name: "lone backslash at end", text: `abc\`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Detect(%q) returned %d spans, want %d: %+v", tt.text, len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				g := got[i]
				if g.FullMatch != want.FullMatch {
					t.Errorf("span[%d].FullMatch = %q, want %q", i, g.FullMatch, want.FullMatch)
				}
				if g.Latex != want.Latex {
					t.Errorf("span[%d].Latex = %q, want %q", i, g.Latex, want.Latex)
				}
				if g.Family != want.Family {
					t.Errorf("span[%d].Family = %v, want %v", i, g.Family, want.Family)
				}
				if g.Kind != types.KindInline {
					t.Errorf("span[%d].Kind = %q, want %q", i, g.Kind, types.KindInline)
				}
				if g.Presentation != types.PresentationOf(g.Family) {
					t.Errorf("span[%d].Presentation = %v, want %v", i, g.Presentation, types.PresentationOf(g.Family))
				}
				if tt.text[g.Start:g.End] != g.FullMatch {
					t.Errorf("text[%d:%d] = %q, want FullMatch %q", g.Start, g.End, tt.text[g.Start:g.End], g.FullMatch)
				}
			}
		})
	}
}

// TestDetect_Ordering 测试结果有序且互不重叠
func TestDetect_Ordering(t *testing.T) {
	text := `a $1$ b $$2$$ c \(3\) d \[4\] e $5$`
	spans := Detect(text)
	if len(spans) != 5 {
		t.Fatalf("Detect() returned %d spans, want 5", len(spans))
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].End {
			t.Errorf("span[%d] starts at %d before span[%d] ends at %d", i, spans[i].Start, i-1, spans[i-1].End)
		}
	}
}

// TestFindNext 测试从指定位置开始查找
func TestFindNext(t *testing.T) {
	text := "$a$ and $b$"

	span, ok := New(nil).FindNext(text, 1)
	if !ok {
		t.Fatal("FindNext() should find a formula")
	}
	// 从位置 1 开始，$a$ 的开始定界符已被跳过；"$ and $" 是合法候选
	if span.FullMatch != "$ and $" {
		t.Errorf("FindNext() = %q, want %q", span.FullMatch, "$ and $")
	}

	if _, ok := New(nil).FindNext(text, len(text)); ok {
		t.Error("FindNext() at end of text should find nothing")
	}
}

// TestDetector_Acceptor 测试被拒绝的候选按失败处理
func TestDetector_Acceptor(t *testing.T) {
	d := New(func(start, end int) bool { return start != 0 })
	spans := d.Detect("$a$ $b$")
	if len(spans) != 1 {
		t.Fatalf("Detect() returned %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].FullMatch != "$b$" || spans[0].Start != 4 {
		t.Errorf("Detect() = %q at %d, want %q at 4", spans[0].FullMatch, spans[0].Start, "$b$")
	}
}

// TestDetector_ZeroValue 测试零值检测器可用
func TestDetector_ZeroValue(t *testing.T) {
	var d Detector
	if got := d.Detect(`\(x\)`); len(got) != 1 {
		t.Errorf("zero Detector found %d spans, want 1", len(got))
	}
}
