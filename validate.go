package mathnorm

import (
	"fmt"
	"strings"

	"github.com/riverfjs/mathnorm-go/internal/converter"
)

// IssueKind 校验问题类型
type IssueKind int

const (
	// IssueLostText 原文中的非公式文本在结果中丢失
	IssueLostText IssueKind = iota
	// IssueFailedConversion 需要转换的公式没有以任何规范形式出现在结果中
	IssueFailedConversion
)

// String returns the string representation of IssueKind.
func (k IssueKind) String() string {
	switch k {
	case IssueLostText:
		return "lost_text"
	case IssueFailedConversion:
		return "failed_conversion"
	default:
		return "unknown"
	}
}

// Issue 单个校验问题
type Issue struct {
	Kind     IssueKind
	Fragment string // 原文片段
	Offset   int    // 片段在（可能已折叠的）原文中的字节偏移
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueLostText:
		return fmt.Sprintf("lost text fragment %q at %d", i.Fragment, i.Offset)
	case IssueFailedConversion:
		return fmt.Sprintf("formula %q at %d was not converted", i.Fragment, i.Offset)
	default:
		return fmt.Sprintf("%s: %q at %d", i.Kind, i.Fragment, i.Offset)
	}
}

// Report 校验结果
type Report struct {
	Issues []Issue
}

// Valid 没有任何问题时返回 true
func (r Report) Valid() bool {
	return len(r.Issues) == 0
}

// Validate 检查 processed 是否是 original 的正确预处理结果
//
// 原文中每个非空白文本片段必须原样出现在结果中；
// 每个 $$...$$、\(...\)、\[...\] 公式必须以某种规范形式出现在结果中。
// opts 应与生成 processed 时使用的选项一致。
func Validate(original, processed string, opts ...Option) Report {
	options := applyOptions(opts...)
	scanned, spans := converter.Detect(original, options.Config)

	var report Report
	for _, seg := range converter.Split(scanned, spans) {
		if seg.IsFormula() {
			span := seg.Formula
			if span.Family == FamilyInlineDollar {
				continue
			}
			if !containsAny(processed, canonicalForms(span)) {
				report.Issues = append(report.Issues, Issue{
					Kind:     IssueFailedConversion,
					Fragment: span.FullMatch,
					Offset:   span.Start,
				})
			}
			continue
		}
		if strings.TrimSpace(seg.Content) != "" && !strings.Contains(processed, seg.Content) {
			report.Issues = append(report.Issues, Issue{
				Kind:     IssueLostText,
				Fragment: seg.Content,
				Offset:   seg.Start,
			})
		}
	}

	if !report.Valid() {
		Logger.Debug().
			Int("issues", len(report.Issues)).
			Str("first", report.Issues[0].String()).
			Msg("preprocessing validation failed")
	}
	return report
}

// canonicalForms 公式可能的规范输出形式
func canonicalForms(span *FormulaSpan) []string {
	trimmed := strings.TrimSpace(span.Latex)
	flat := strings.Join(strings.Fields(span.Latex), " ")
	return []string{
		"$" + trimmed + "$",
		"$" + flat + "$",
		"$$\n" + trimmed + "\n$$",
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
