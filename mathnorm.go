// Package mathnorm 将文本中多种写法的数学公式统一为规范格式
//
// 这个包识别文本中以四种定界符书写的公式，并改写为下游公式渲染阶段
// 可直接消费的单一约定：行内公式 $...$，块级公式 $$\n...\n$$\n。
//
// 支持的定界符：
//   - $$...$$  总是块级
//   - $...$    已是规范格式，原样保留
//   - \(...\)  总是行内
//   - \[...\]  内容含换行时块级，否则行内
//
// 表格行（含 '|' 的行）中的公式一律压缩为单行 $...$。
//
// 主要 API：
//   - Preprocess(): 单个文本
//   - PreprocessBatch(): 多个文本，逐个独立处理
//   - PreprocessBatchContext(): 有并发上限、可取消的批量处理
//
// 示例：
//
//	out := mathnorm.Preprocess(`公式 \(x^2\) 结束`)
//	// out == "公式 $x^2$ 结束"
//
//	outs, err := mathnorm.PreprocessBatchContext(ctx, docs, mathnorm.WithWorkers(4))
package mathnorm

import (
	"github.com/riverfjs/mathnorm-go/internal/converter"
)

// Preprocess rewrites every formula in text into the canonical convention.
//
// Text without any recognised formula is returned unchanged. Delimiters that never
// close, or that enclose only whitespace, are left as literal text.
func Preprocess(text string, opts ...Option) string {
	options := applyOptions(opts...)
	out, _ := converter.Preprocess(text, options.Config)
	return out
}

// PreprocessBatch applies Preprocess to each element independently.
// The result has the same length and order as texts.
func PreprocessBatch(texts []string, opts ...Option) []string {
	options := applyOptions(opts...)
	results := make([]string, len(texts))
	for i, text := range texts {
		results[i], _ = converter.Preprocess(text, options.Config)
	}
	return results
}
