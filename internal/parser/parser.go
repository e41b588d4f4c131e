package parser

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// Region 源文本中的半开字节区间 [Start, End)
type Region struct {
	Start int
	End   int
}

// Regions 按 Start 排序、互不重叠的区间列表
type Regions []Region

// Contains 判断 pos 是否落在某个区间内
func (rs Regions) Contains(pos int) bool {
	i := sort.Search(len(rs), func(i int) bool { return rs[i].End > pos })
	return i < len(rs) && rs[i].Start <= pos
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	reader := text.NewReader(source)
	return md.Parser().Parse(reader)
}

// CodeRegions 返回 Markdown 中代码块和行内代码内容所占的字节区间
func CodeRegions(source []byte) Regions {
	if len(source) == 0 {
		return nil
	}
	node := ParseAST(source)

	var regions Regions
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if r, ok := linesRegion(n.Lines()); ok {
				regions = append(regions, r)
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeSpan:
			if r, ok := codeSpanRegion(n); ok {
				regions = append(regions, r)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return normalize(regions)
}

func linesRegion(lines *text.Segments) (Region, bool) {
	if lines == nil || lines.Len() == 0 {
		return Region{}, false
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	if last.Stop <= first.Start {
		return Region{}, false
	}
	return Region{Start: first.Start, End: last.Stop}, true
}

func codeSpanRegion(n *ast.CodeSpan) (Region, bool) {
	r := Region{Start: -1}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		if r.Start < 0 || t.Segment.Start < r.Start {
			r.Start = t.Segment.Start
		}
		if t.Segment.Stop > r.End {
			r.End = t.Segment.Stop
		}
	}
	if r.Start < 0 || r.End <= r.Start {
		return Region{}, false
	}
	return r, true
}

// normalize 排序并合并重叠区间
func normalize(regions Regions) Regions {
	if len(regions) < 2 {
		return regions
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })
	merged := regions[:1]
	for _, r := range regions[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
