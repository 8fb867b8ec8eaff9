package measure

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

func block(lo, hi uint16) *unicode.RangeTable {
	return &unicode.RangeTable{R16: []unicode.Range16{{Lo: lo, Hi: hi, Stride: 1}}}
}

// cjkTable 合并了按全角宽度估算的 Unicode 区段。
var cjkTable = rangetable.Merge(
	block(0x1100, 0x11FF), // Hangul Jamo
	block(0x2E80, 0x2EFF), // CJK Radicals Supplement
	block(0x3000, 0x303F), // CJK Symbols and Punctuation
	block(0x3040, 0x309F), // Hiragana
	block(0x30A0, 0x30FF), // Katakana
	block(0x3100, 0x312F), // Bopomofo
	block(0x3130, 0x318F), // Hangul Compatibility Jamo
	block(0x31A0, 0x31BF), // Bopomofo Extended
	block(0x31F0, 0x31FF), // Katakana Phonetic Extensions
	block(0x3400, 0x4DBF), // CJK Unified Ideographs Extension A
	block(0x4E00, 0x9FFF), // CJK Unified Ideographs
	block(0xAC00, 0xD7AF), // Hangul Syllables
	block(0xF900, 0xFAFF), // CJK Compatibility Ideographs
	block(0xFF00, 0xFFEF), // Halfwidth and Fullwidth Forms
)

// IsCJK 判断字符是否属于中日韩全角区段。
func IsCJK(r rune) bool {
	return unicode.Is(cjkTable, r)
}
