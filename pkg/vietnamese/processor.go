package vietnamese

import (
	"regexp"
	"strconv"
	"strings"
)

// diacriticMap folds Vietnamese letters onto their ASCII base characters.
// Covers both cases; everything else passes through unchanged.
var diacriticMap = map[rune]rune{
	'à': 'a', 'á': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'đ': 'd',
	'è': 'e', 'é': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	'ì': 'i', 'í': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',
	'ò': 'o', 'ó': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'ù': 'u', 'ú': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	'ỳ': 'y', 'ý': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',
	'À': 'A', 'Á': 'A', 'Ả': 'A', 'Ã': 'A', 'Ạ': 'A',
	'Ă': 'A', 'Ằ': 'A', 'Ắ': 'A', 'Ẳ': 'A', 'Ẵ': 'A', 'Ặ': 'A',
	'Â': 'A', 'Ầ': 'A', 'Ấ': 'A', 'Ẩ': 'A', 'Ẫ': 'A', 'Ậ': 'A',
	'Đ': 'D',
	'È': 'E', 'É': 'E', 'Ẻ': 'E', 'Ẽ': 'E', 'Ẹ': 'E',
	'Ê': 'E', 'Ề': 'E', 'Ế': 'E', 'Ể': 'E', 'Ễ': 'E', 'Ệ': 'E',
	'Ì': 'I', 'Í': 'I', 'Ỉ': 'I', 'Ĩ': 'I', 'Ị': 'I',
	'Ò': 'O', 'Ó': 'O', 'Ỏ': 'O', 'Õ': 'O', 'Ọ': 'O',
	'Ô': 'O', 'Ồ': 'O', 'Ố': 'O', 'Ổ': 'O', 'Ỗ': 'O', 'Ộ': 'O',
	'Ơ': 'O', 'Ờ': 'O', 'Ớ': 'O', 'Ở': 'O', 'Ỡ': 'O', 'Ợ': 'O',
	'Ù': 'U', 'Ú': 'U', 'Ủ': 'U', 'Ũ': 'U', 'Ụ': 'U',
	'Ư': 'U', 'Ừ': 'U', 'Ứ': 'U', 'Ử': 'U', 'Ữ': 'U', 'Ự': 'U',
	'Ỳ': 'Y', 'Ý': 'Y', 'Ỷ': 'Y', 'Ỹ': 'Y', 'Ỵ': 'Y',
}

// schoolAliases maps common military-academy abbreviations to their full names.
// Users frequently type the short form; retrieval and SQL filters need the long one.
var schoolAliases = []struct {
	abbrev string
	full   string
}{
	{"hvktqs", "học viện kỹ thuật quân sự"},
	{"hvqy", "học viện quân y"},
	{"hvpkkq", "học viện phòng không không quân"},
	{"hvhq", "học viện hải quân"},
	{"hvbp", "học viện biên phòng"},
	{"hvhc", "học viện hậu cần"},
	{"ktqs", "kỹ thuật quân sự"},
	{"pkkq", "phòng không không quân"},
	{"truong sq", "trường sĩ quan"},
	{"sq", "sĩ quan"},
	{"hq", "hải quân"},
	{"qđ", "quân đội"},
	{"qs", "quân sự"},
}

var (
	yearRe      = regexp.MustCompile(`\b(20[0-9]{2})\b`)
	shortYearRe = regexp.MustCompile(`\b(?:năm|nam)\s*([0-9]{2})\b`)
	numberRe    = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)?`)
	examBlockRe = regexp.MustCompile(`\b([ABCD][0-9]{2})\b`)
	wordRe      = regexp.MustCompile(`\s+`)
)

var scoreRes = []*regexp.Regexp{
	regexp.MustCompile(`([0-9]{1,2}(?:[.,][0-9]+)?)\s*điểm`),
	regexp.MustCompile(`điểm\s*(?:là|:)?\s*([0-9]{1,2}(?:[.,][0-9]+)?)`),
	regexp.MustCompile(`([0-9]{1,2}(?:[.,][0-9]+)?)\s*(?:khối|khoi)`),
}

// RemoveDiacritics strips Vietnamese tone and vowel marks.
func RemoveDiacritics(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if folded, ok := diacriticMap[r]; ok {
			b.WriteRune(folded)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize produces the canonical search form: diacritics removed, lowercased,
// whitespace collapsed. Stored names use the same form (ten_khong_dau columns),
// so normalized user input matches them with a plain ILIKE.
func Normalize(text string) string {
	text = RemoveDiacritics(text)
	text = strings.ToLower(text)
	return strings.TrimSpace(wordRe.ReplaceAllString(text, " "))
}

// ExpandAbbreviations rewrites known school abbreviations to their full names.
func ExpandAbbreviations(text string) string {
	out := strings.ToLower(text)
	for _, alias := range schoolAliases {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(alias.abbrev) + `\b`)
		out = re.ReplaceAllString(out, alias.full)
	}
	return out
}

// ExtractYear pulls an admission year from free text. Handles both "2024" and
// the short form "năm 24".
func ExtractYear(text string) (int, bool) {
	if m := yearRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year, true
	}
	if m := shortYearRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
		year, _ := strconv.Atoi(m[1])
		if year < 50 {
			return 2000 + year, true
		}
		return 1900 + year, true
	}
	return 0, false
}

// ExtractScore pulls a candidate's exam score (0..30 scale) from free text.
func ExtractScore(text string) (float64, bool) {
	lower := strings.ToLower(text)
	for _, re := range scoreRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			score, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
			if err == nil && score >= 0 && score <= 30 {
				return score, true
			}
		}
	}
	// Standalone numbers in the plausible score band
	for _, m := range numberRe.FindAllString(lower, -1) {
		score, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
		if err == nil && score >= 15 && score <= 30 {
			return score, true
		}
	}
	return 0, false
}

// ExtractExamBlock pulls an exam subject-group code (A00, A01, B00, ...).
// Falls back to the textual forms "khối A" / "khoi a".
func ExtractExamBlock(text string) (string, bool) {
	if m := examBlockRe.FindStringSubmatch(strings.ToUpper(text)); m != nil {
		return m[1], true
	}

	normalized := Normalize(text)
	textual := map[string]string{
		"khoi a": "A00",
		"khoi b": "B00",
		"khoi c": "C00",
		"khoi d": "D01",
	}
	for key, code := range textual {
		if strings.Contains(normalized, key) {
			return code, true
		}
	}
	return "", false
}
