package util

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// UTF16Offsets builds a cumulative UTF-16 offset table for each byte position.
// result[i] is the UTF-16 offset of byte i; bytes inside a multi-byte rune share
// the offset of the rune's first byte. result[len(text)] is the total length.
func UTF16Offsets(text string) []int {
	offsets := make([]int, len(text)+1)
	cum := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		for j := i; j < i+size; j++ {
			offsets[j] = cum
		}
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
		i += size
	}
	offsets[len(text)] = cum
	return offsets
}

// 全角定界符字符
const fullwidthDelimiters = "＄＼（）［］"

// foldRune 将全角 ＄ 和 ＼ 映射为 ASCII
func foldRune(r rune) rune {
	switch r {
	case '＄', '＼':
		return width.LookupRune(r).Narrow()
	}
	return r
}

// 括号只在紧跟反斜杠时才是定界符，正文中的全角括号保持不变
var bracketFold = strings.NewReplacer(
	`\（`, `\`+string(width.LookupRune('（').Narrow()),
	`\）`, `\`+string(width.LookupRune('）').Narrow()),
	`\［`, `\`+string(width.LookupRune('［').Narrow()),
	`\］`, `\`+string(width.LookupRune('］').Narrow()),
)

// FoldDelimiters 将全角定界符（＄ ＼（ ＼） ＼［ ＼］）折叠为 ASCII 形式
//
// 其他全角字符（包括正文中的（）和［］）不受影响。
func FoldDelimiters(text string) string {
	if !strings.ContainsAny(text, fullwidthDelimiters) {
		return text
	}
	folded, _, err := transform.String(runes.Map(foldRune), text)
	if err != nil {
		return text
	}
	return bracketFold.Replace(folded)
}
