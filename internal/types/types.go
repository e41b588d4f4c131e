package types

import "runtime"

// Family 公式定界符族
type Family int

const (
	// FamilyDisplayDollar $$...$$
	FamilyDisplayDollar Family = iota
	// FamilyInlineDollar $...$
	FamilyInlineDollar
	// FamilyParen \(...\)
	FamilyParen
	// FamilyBracket \[...\]
	FamilyBracket
)

// String returns the delimiter pair of the family, e.g. "$$...$$".
func (f Family) String() string {
	switch f {
	case FamilyDisplayDollar:
		return "$$...$$"
	case FamilyInlineDollar:
		return "$...$"
	case FamilyParen:
		return `\(...\)`
	case FamilyBracket:
		return `\[...\]`
	default:
		return "unknown"
	}
}

// Opener 返回开始定界符
func (f Family) Opener() string {
	switch f {
	case FamilyDisplayDollar:
		return "$$"
	case FamilyInlineDollar:
		return "$"
	case FamilyParen:
		return `\(`
	case FamilyBracket:
		return `\[`
	}
	return ""
}

// Closer 返回结束定界符
func (f Family) Closer() string {
	switch f {
	case FamilyDisplayDollar:
		return "$$"
	case FamilyInlineDollar:
		return "$"
	case FamilyParen:
		return `\)`
	case FamilyBracket:
		return `\]`
	}
	return ""
}

// Presentation 公式的呈现方式，检测时确定一次
type Presentation int

const (
	// ForcedInline 总是行内：\(...\) 与 $...$
	ForcedInline Presentation = iota
	// ForcedBlock 总是块级：$$...$$
	ForcedBlock
	// ContentDependent 内容含换行时为块级，否则行内：\[...\]
	ContentDependent
)

// String returns the presentation name.
func (p Presentation) String() string {
	switch p {
	case ForcedInline:
		return "forced-inline"
	case ForcedBlock:
		return "forced-block"
	case ContentDependent:
		return "content-dependent"
	default:
		return "unknown"
	}
}

// PresentationOf 返回定界符族对应的呈现方式
func PresentationOf(f Family) Presentation {
	switch f {
	case FamilyDisplayDollar:
		return ForcedBlock
	case FamilyBracket:
		return ContentDependent
	default:
		return ForcedInline
	}
}

// KindInline 检测阶段所有公式统一使用的类型标记
const KindInline = "inline"

// FormulaSpan 表示文本中一个带定界符的公式
type FormulaSpan struct {
	FullMatch    string       `json:"full_match"` // 含定界符的原文
	Latex        string       `json:"latex"`      // 去掉定界符后的内容
	Start        int          `json:"start"`      // 字节偏移（含）
	End          int          `json:"end"`        // 字节偏移（不含）
	Kind         string       `json:"kind"`
	Family       Family       `json:"family"`
	Presentation Presentation `json:"presentation"`
}

// SegmentKind 片段类型
type SegmentKind string

const (
	SegmentText    SegmentKind = "text"
	SegmentFormula SegmentKind = "formula"
)

// TextSegment 文本或公式片段，所有片段按顺序拼接后等于原文
type TextSegment struct {
	Kind       SegmentKind  `json:"kind"`
	Content    string       `json:"content"`
	Start      int          `json:"start"`
	End        int          `json:"end"`
	UTF16Start int          `json:"utf16_start"`
	UTF16End   int          `json:"utf16_end"`
	Formula    *FormulaSpan `json:"formula,omitempty"`
}

// IsFormula 是否为公式片段
func (s TextSegment) IsFormula() bool {
	return s.Kind == SegmentFormula && s.Formula != nil
}

// Config 预处理配置
type Config struct {
	// SkipCode 忽略 Markdown 代码块和行内代码中的定界符
	SkipCode bool
	// FoldFullwidth 将全角定界符（＄ ＼（ ＼） ＼［ ＼］）视为 ASCII 定界符
	FoldFullwidth bool
	// Workers 批量处理的并发上限
	Workers int
}

// DefaultConfig 返回默认配置：与参考行为完全一致
func DefaultConfig() *Config {
	return &Config{
		SkipCode:      false,
		FoldFullwidth: false,
		Workers:       runtime.GOMAXPROCS(0),
	}
}
