package converter

import (
	"sort"

	"github.com/riverfjs/mathnorm-go/internal/types"
	"github.com/riverfjs/mathnorm-go/internal/util"
)

// Split 按公式位置将文本切分为有序、连续、互不重叠的片段
//
// 不做任何 trim：所有片段的 Content 按顺序拼接后与 text 完全相同。
func Split(text string, spans []types.FormulaSpan) []types.TextSegment {
	offsets := util.UTF16Offsets(text)

	if len(spans) == 0 {
		return []types.TextSegment{textSegment(text, 0, len(text), offsets)}
	}

	// 检测器已按位置排序，这里再稳定排序一次
	sorted := make([]types.FormulaSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	segments := make([]types.TextSegment, 0, 2*len(sorted)+1)
	cursor := 0
	for i := range sorted {
		span := &sorted[i]

		// 公式前的文本
		if cursor < span.Start {
			segments = append(segments, textSegment(text, cursor, span.Start, offsets))
		}

		segments = append(segments, types.TextSegment{
			Kind:       types.SegmentFormula,
			Content:    span.FullMatch,
			Start:      span.Start,
			End:        span.End,
			UTF16Start: offsets[span.Start],
			UTF16End:   offsets[span.End],
			Formula:    span,
		})
		cursor = span.End
	}

	// 最后一个公式后的文本
	if cursor < len(text) {
		segments = append(segments, textSegment(text, cursor, len(text), offsets))
	}

	return segments
}

func textSegment(text string, start, end int, offsets []int) types.TextSegment {
	return types.TextSegment{
		Kind:       types.SegmentText,
		Content:    text[start:end],
		Start:      start,
		End:        end,
		UTF16Start: offsets[start],
		UTF16End:   offsets[end],
	}
}
