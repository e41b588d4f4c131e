package mathnorm

import (
	"github.com/riverfjs/mathnorm-go/internal/converter"
)

// PreprocessWithSegments 类似 Preprocess()，但还返回输入的切分结果
//
// 没有检测到公式时 segments 为 nil。启用 WithFoldFullwidth 时，
// segments 的偏移量对应折叠后的文本。
func PreprocessWithSegments(text string, opts ...Option) (string, []TextSegment) {
	options := applyOptions(opts...)
	return converter.Preprocess(text, options.Config)
}

// DetectFormulas 返回 text 中按位置排序、互不重叠的公式
func DetectFormulas(text string, opts ...Option) []FormulaSpan {
	options := applyOptions(opts...)
	_, spans := converter.Detect(text, options.Config)
	return spans
}

// SplitFormulas 将 text 切分为文本和公式片段，拼接所有片段的 Content 可还原输入
//
// 没有公式时返回覆盖整个输入的单个文本片段。
func SplitFormulas(text string, opts ...Option) []TextSegment {
	options := applyOptions(opts...)
	scanned, spans := converter.Detect(text, options.Config)
	return converter.Split(scanned, spans)
}
