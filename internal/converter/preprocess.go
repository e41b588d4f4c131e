package converter

import (
	"github.com/riverfjs/mathnorm-go/internal/detector"
	"github.com/riverfjs/mathnorm-go/internal/parser"
	"github.com/riverfjs/mathnorm-go/internal/types"
	"github.com/riverfjs/mathnorm-go/internal/util"
)

// Preprocess 将文本中的公式转换为规范格式，并返回切分结果
//
// 没有检测到公式时原样返回输入，segments 为 nil。
func Preprocess(text string, config *types.Config) (string, []types.TextSegment) {
	if text == "" {
		return text, nil
	}

	scanned, spans := Detect(text, config)
	if len(spans) == 0 {
		return text, nil
	}

	segments := Split(scanned, spans)
	return Format(segments), segments
}

// Detect 按配置检测公式，返回被扫描的文本（可能已折叠全角定界符）和公式列表
func Detect(text string, config *types.Config) (string, []types.FormulaSpan) {
	if config == nil {
		config = types.DefaultConfig()
	}
	if config.FoldFullwidth {
		text = util.FoldDelimiters(text)
	}
	return text, newDetector(text, config).Detect(text)
}

func newDetector(text string, config *types.Config) *detector.Detector {
	if !config.SkipCode {
		return detector.New(nil)
	}
	regions := parser.CodeRegions([]byte(text))
	if len(regions) == 0 {
		return detector.New(nil)
	}
	return detector.New(func(start, end int) bool {
		// 开始或结束定界符落在代码中时不视为公式
		return !regions.Contains(start) && !regions.Contains(end-1)
	})
}
