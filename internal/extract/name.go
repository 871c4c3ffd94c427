package extract

import (
	"regexp"
	"strings"
	"unicode"

	"hirescreen/internal/types"
)

// Name extraction is a first-match-wins cascade over progressively looser
// strategies. Resume layouts vary too much for a single rule: headers, ALL
// CAPS banners, and title-case lines all occur, so each window is tried in
// turn before the whole-document regex fallback.

const (
	nameHeaderWindow   = 10
	nameDeepWindowEnd  = 40
	nameTitleWindowEnd = 30
	nameMaxWords       = 4
)

var (
	digitRunPattern = regexp.MustCompile(`\d{3,}`)

	// Capitalized 1-4 word sequences for the whole-document fallback.
	capitalizedNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3}\b`)
)

func extractName(lines []string, rawText string, skipWords []string) string {
	if name := nameFromHeader(lines, skipWords); name != "" {
		return name
	}
	if name := nameFromAllCaps(lines, skipWords); name != "" {
		return name
	}
	if name := nameFromTitleCase(lines, skipWords); name != "" {
		return name
	}
	if name := nameFromRegexFallback(rawText, skipWords); name != "" {
		return name
	}
	return types.UnknownCandidateName
}

// nameFromHeader scans the first lines for a short alphabetic line that is
// not a section header, contact detail, or vocabulary term
func nameFromHeader(lines []string, skipWords []string) string {
	limit := min(len(lines), nameHeaderWindow)
	for i := 0; i < limit; i++ {
		if isNameShaped(lines[i], skipWords) {
			return lines[i]
		}
	}
	return ""
}

// nameFromAllCaps scans a deeper window for the same shape written in caps
func nameFromAllCaps(lines []string, skipWords []string) string {
	if len(lines) <= nameHeaderWindow {
		return ""
	}
	limit := min(len(lines), nameDeepWindowEnd)
	for i := nameHeaderWindow; i < limit; i++ {
		line := lines[i]
		if line != strings.ToUpper(line) {
			continue
		}
		if isNameShaped(line, skipWords) {
			return line
		}
	}
	return ""
}

// nameFromTitleCase scans for lines where every word is Title Case
func nameFromTitleCase(lines []string, skipWords []string) string {
	if len(lines) <= nameHeaderWindow {
		return ""
	}
	limit := min(len(lines), nameTitleWindowEnd)
	for i := nameHeaderWindow; i < limit; i++ {
		line := lines[i]
		if !isTitleCase(line) {
			continue
		}
		if isNameShaped(line, skipWords) {
			return line
		}
	}
	return ""
}

// nameFromRegexFallback takes the first capitalized word sequence in the
// whole document that carries no skip-listed term
func nameFromRegexFallback(rawText string, skipWords []string) string {
	for _, candidate := range capitalizedNamePattern.FindAllString(rawText, 20) {
		if !containsSkipWord(candidate, skipWords) {
			return candidate
		}
	}
	return ""
}

// isNameShaped checks the common shape shared by all line strategies:
// 1-4 alphabetic words, no email sign, no long digit runs, no skip words
func isNameShaped(line string, skipWords []string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > nameMaxWords {
		return false
	}
	if strings.Contains(line, "@") {
		return false
	}
	if digitRunPattern.MatchString(line) {
		return false
	}
	for _, word := range words {
		if !isAlphabeticWord(word) {
			return false
		}
	}
	return !containsSkipWord(line, skipWords)
}

func isAlphabeticWord(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && r != '.' && r != '\'' {
			return false
		}
	}
	return true
}

func isTitleCase(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

func containsSkipWord(line string, skipWords []string) bool {
	lower := strings.ToLower(line)
	for _, skip := range skipWords {
		if containsTerm(lower, skip) {
			return true
		}
	}
	return false
}
