// Package detector 使用单游标扫描检测文本中的数学公式
//
// 支持四种定界符族，按固定优先级尝试：$$...$$、$...$、\(...\)、\[...\]。
// 较长的开始定界符必须先于作为其前缀的较短定界符检查，
// 否则 $$x$$ 会被误识别为两个空的 $...$。
package detector

import (
	"strings"

	"github.com/riverfjs/mathnorm-go/internal/types"
)

// priority 定界符族的尝试顺序
var priority = []types.Family{
	types.FamilyDisplayDollar,
	types.FamilyInlineDollar,
	types.FamilyParen,
	types.FamilyBracket,
}

// Acceptor 对已闭合的候选公式做额外筛选，返回 false 时视为该次尝试失败
type Acceptor func(start, end int) bool

// Detector 公式检测器，零值可用
type Detector struct {
	accept Acceptor
}

// New 创建检测器，accept 为 nil 时接受所有候选
func New(accept Acceptor) *Detector {
	return &Detector{accept: accept}
}

// Detect 使用默认检测器检测 text 中的所有公式
func Detect(text string) []types.FormulaSpan {
	return New(nil).Detect(text)
}

// Detect 返回按位置排序、互不重叠的公式列表
//
// 每找到一个公式，游标跳到其结束位置继续扫描；
// 失败的尝试只让游标前进一个字节（见 FindNext）。
func (d *Detector) Detect(text string) []types.FormulaSpan {
	var spans []types.FormulaSpan
	i := 0
	for i < len(text) {
		span, ok := d.FindNext(text, i)
		if !ok {
			break
		}
		spans = append(spans, span)
		i = span.End
	}
	return spans
}

// FindNext 从 from 开始查找下一个公式
//
// 定界符都是 ASCII，不会出现在 UTF-8 多字节序列内部，所以可以按字节扫描。
func (d *Detector) FindNext(text string, from int) (types.FormulaSpan, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(text); i++ {
		if c := text[i]; c != '$' && c != '\\' {
			continue
		}
		if span, ok := d.matchAt(text, i); ok {
			return span, true
		}
	}
	return types.FormulaSpan{}, false
}

// matchAt 在位置 i 依优先级尝试各定界符族
func (d *Detector) matchAt(text string, i int) (types.FormulaSpan, bool) {
	rest := text[i:]
	for _, family := range priority {
		if !strings.HasPrefix(rest, family.Opener()) {
			continue
		}
		span, ok := scan(text, i, family)
		if !ok {
			continue
		}
		if d.accept != nil && !d.accept(span.Start, span.End) {
			continue
		}
		return span, true
	}
	return types.FormulaSpan{}, false
}

// scan 从 start 处的开始定界符向后查找第一个结束定界符
func scan(text string, start int, family types.Family) (types.FormulaSpan, bool) {
	body := start + len(family.Opener())
	closer := family.Closer()

	rel := strings.Index(text[body:], closer)
	if rel < 0 {
		return types.FormulaSpan{}, false // 没有找到结束定界符
	}

	payload := text[body : body+rel]
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return types.FormulaSpan{}, false // 空公式不算
	}

	// \[...\] 保留原始内容（包括换行），格式化阶段据此选择块级或行内
	latex := trimmed
	if family == types.FamilyBracket {
		latex = payload
	}

	end := body + rel + len(closer)
	return types.FormulaSpan{
		FullMatch:    text[start:end],
		Latex:        latex,
		Start:        start,
		End:          end,
		Kind:         types.KindInline,
		Family:       family,
		Presentation: types.PresentationOf(family),
	}, true
}
