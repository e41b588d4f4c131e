package mathnorm

import (
	"strings"

	"github.com/riverfjs/mathnorm-go/internal/converter"
)

// Stats 文本中各定界符族的公式数量
type Stats struct {
	DisplayDollar int // $$...$$
	InlineDollar  int // $...$
	Paren         int // \(...\)
	Bracket       int // \[...\]

	// MultilineBracket 内容含换行的 \[...\]，在表格外会渲染为块级
	MultilineBracket int
}

// Total 公式总数
func (s Stats) Total() int {
	return s.DisplayDollar + s.InlineDollar + s.Paren + s.Bracket
}

// Block 表格外会渲染为块级公式的数量
func (s Stats) Block() int {
	return s.DisplayDollar + s.MultilineBracket
}

// Inline 表格外会渲染为行内公式的数量
func (s Stats) Inline() int {
	return s.Total() - s.Block()
}

// CountFormulas 统计 text 中检测到的公式
func CountFormulas(text string, opts ...Option) Stats {
	options := applyOptions(opts...)
	_, spans := converter.Detect(text, options.Config)

	var stats Stats
	for _, span := range spans {
		switch span.Family {
		case FamilyDisplayDollar:
			stats.DisplayDollar++
		case FamilyInlineDollar:
			stats.InlineDollar++
		case FamilyParen:
			stats.Paren++
		case FamilyBracket:
			stats.Bracket++
			if strings.Contains(strings.TrimSpace(span.Latex), "\n") {
				stats.MultilineBracket++
			}
		}
	}
	return stats
}
