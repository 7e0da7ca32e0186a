// Package jpnum formats Japanese problem numbering for exam documents.
package jpnum

import "strconv"

// kanjiNumbers covers the ordinals conventionally written in kanji on
// Japanese exam papers. Positions beyond ten fall back to Arabic numerals.
var kanjiNumbers = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}

// Ordinal returns the Japanese ordinal for a 1-based position:
// kanji for 1-10, Arabic numerals beyond.
func Ordinal(n int) string {
	if n >= 1 && n <= len(kanjiNumbers) {
		return kanjiNumbers[n-1]
	}
	return strconv.Itoa(n)
}

// ProblemLabel returns the exam heading for the n-th problem,
// e.g. 1 -> 第一問, 11 -> 第11問.
func ProblemLabel(n int) string {
	return "第" + Ordinal(n) + "問"
}
