package converter

import (
	"strings"

	"github.com/riverfjs/mathnorm-go/internal/buffer"
	"github.com/riverfjs/mathnorm-go/internal/types"
)

// Formatter 从左到右消费片段并生成规范格式的文本
//
// 每个公式的输出只依赖已输出的内容和紧随其后的第一个文本片段。
type Formatter struct {
	buf      *buffer.TextBuffer
	segments []types.TextSegment
}

// NewFormatter 创建 Formatter
func NewFormatter(segments []types.TextSegment) *Formatter {
	return &Formatter{
		buf:      buffer.New(),
		segments: segments,
	}
}

// Format 将片段格式化为规范文本
func Format(segments []types.TextSegment) string {
	return NewFormatter(segments).Result()
}

// Result 遍历所有片段并返回结果
func (f *Formatter) Result() string {
	f.buf.Reset()
	size := 0
	for _, seg := range f.segments {
		size += len(seg.Content)
	}
	f.buf.Grow(size + 8*len(f.segments))

	for i, seg := range f.segments {
		if seg.IsFormula() {
			f.onFormula(i, seg.Formula)
		} else {
			f.buf.Write(seg.Content)
		}
	}
	return f.buf.String()
}

func (f *Formatter) onFormula(index int, span *types.FormulaSpan) {
	if f.inTable(index) {
		// 表格内强制压缩为单行
		f.buf.Write("$" + flatten(span.Latex) + "$")
		return
	}

	switch span.Presentation {
	case types.ForcedBlock:
		f.writeBlock(index, strings.TrimSpace(span.Latex))

	case types.ContentDependent:
		latex := strings.TrimSpace(span.Latex)
		if strings.Contains(latex, "\n") {
			f.writeBlock(index, latex)
		} else {
			f.buf.Write("$" + latex + "$")
		}

	default:
		// $...$ 已是规范格式，原样保留
		if span.Family == types.FamilyInlineDollar {
			f.buf.Write(span.FullMatch)
			return
		}
		f.buf.Write("$" + span.Latex + "$")
	}
}

// inTable 判断公式是否处于表格行中
//
// 当前行已输出部分含 '|'，或后面最近一个文本片段的第一行含 '|'。
// 只检查最近的一个文本片段。
func (f *Formatter) inTable(index int) bool {
	if strings.Contains(f.buf.CurrentLine(), "|") {
		return true
	}
	if next, ok := f.nextText(index); ok {
		firstLine, _, _ := strings.Cut(next.Content, "\n")
		return strings.Contains(firstLine, "|")
	}
	return false
}

func (f *Formatter) nextText(index int) (types.TextSegment, bool) {
	for j := index + 1; j < len(f.segments); j++ {
		if !f.segments[j].IsFormula() {
			return f.segments[j], true
		}
	}
	return types.TextSegment{}, false
}

// writeBlock 写入块级公式，保证其独占行
func (f *Formatter) writeBlock(index int, latex string) {
	if f.buf.Len() > 0 && !f.buf.EndsWithNewline() {
		f.buf.Write("\n")
	}
	f.buf.Write("$$\n" + latex + "\n$$")
	if !f.nextStartsWithNewline(index) {
		f.buf.Write("\n")
	}
}

// nextStartsWithNewline 紧随其后的片段是否已经以换行开头
func (f *Formatter) nextStartsWithNewline(index int) bool {
	if index+1 >= len(f.segments) {
		return false
	}
	next := f.segments[index+1]
	return !next.IsFormula() && strings.HasPrefix(next.Content, "\n")
}

// flatten 将所有空白（包括换行）压缩为单个空格并去掉首尾空白
func flatten(latex string) string {
	return strings.Join(strings.Fields(latex), " ")
}
