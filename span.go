package mathnorm

import (
	"github.com/riverfjs/mathnorm-go/internal/types"
	"github.com/riverfjs/mathnorm-go/internal/util"
)

// 导出类型别名
type (
	FormulaSpan  = types.FormulaSpan
	TextSegment  = types.TextSegment
	Family       = types.Family
	Presentation = types.Presentation
	SegmentKind  = types.SegmentKind
)

const (
	FamilyDisplayDollar = types.FamilyDisplayDollar
	FamilyInlineDollar  = types.FamilyInlineDollar
	FamilyParen         = types.FamilyParen
	FamilyBracket       = types.FamilyBracket

	ForcedInline     = types.ForcedInline
	ForcedBlock      = types.ForcedBlock
	ContentDependent = types.ContentDependent

	SegmentText    = types.SegmentText
	SegmentFormula = types.SegmentFormula
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// TextSegment carries UTF-16 bounds next to its byte offsets for hosts that index
// text in UTF-16. Characters outside the BMP take 2 code units; all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}
