package quiz

import (
	"strconv"
	"strings"
)

type Category string

const (
	CategorySingle            Category = "SINGLE"
	CategoryMulti             Category = "MULTI"
	CategoryBoolean           Category = "BOOLEAN"
	CategoryCollectionSingle  Category = "COLLECTION_SINGLE"
	CategoryCollectionMulti   Category = "COLLECTION_MULTI"
	CategoryCollectionBoolean Category = "COLLECTION_BOOLEAN"
	CategoryMock              Category = "MOCK"
)

const (
	TokenTrue  = "true"
	TokenFalse = "false"

	LabelTrue  = "正确"
	LabelFalse = "错误"
)

// AllCategories lists every category in menu order.
var AllCategories = []Category{
	CategorySingle,
	CategoryMulti,
	CategoryBoolean,
	CategoryCollectionSingle,
	CategoryCollectionMulti,
	CategoryCollectionBoolean,
	CategoryMock,
}

func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToUpper(strings.TrimSpace(value)))
	for _, category := range AllCategories {
		if category == normalized {
			return category, nil
		}
	}
	return "", ErrUnknownCategory
}

func (c Category) IsBase() bool {
	return c == CategorySingle || c == CategoryMulti || c == CategoryBoolean
}

func (c Category) IsCollection() bool {
	return strings.HasPrefix(string(c), "COLLECTION_")
}

// Base maps a collection category to the base category it filters.
// Base categories map to themselves; MOCK and unknown values map to "".
func (c Category) Base() Category {
	switch c {
	case CategorySingle, CategoryCollectionSingle:
		return CategorySingle
	case CategoryMulti, CategoryCollectionMulti:
		return CategoryMulti
	case CategoryBoolean, CategoryCollectionBoolean:
		return CategoryBoolean
	default:
		return ""
	}
}

func (c Category) Collection() Category {
	switch c.Base() {
	case CategorySingle:
		return CategoryCollectionSingle
	case CategoryMulti:
		return CategoryCollectionMulti
	case CategoryBoolean:
		return CategoryCollectionBoolean
	default:
		return ""
	}
}

func (c Category) Title() string {
	switch c {
	case CategorySingle:
		return "单项选择题"
	case CategoryMulti:
		return "多项选择题"
	case CategoryBoolean:
		return "判断题"
	case CategoryCollectionSingle:
		return "错题集 - 单选"
	case CategoryCollectionMulti:
		return "错题集 - 多选"
	case CategoryCollectionBoolean:
		return "错题集 - 判断"
	case CategoryMock:
		return "模拟练习"
	default:
		return ""
	}
}

// Badge is the short type marker shown next to a question.
func (c Category) Badge() string {
	switch c.Base() {
	case CategoryMulti:
		return "多选"
	case CategoryBoolean:
		return "判断"
	default:
		return "单选"
	}
}

// Question is immutable once parsed. Callers must not mutate Options or
// CorrectAnswers of a question obtained from a Catalog.
type Question struct {
	ID             string   `json:"id"`
	Category       Category `json:"category"`
	Text           string   `json:"text"`
	Options        []string `json:"options,omitempty"`
	CorrectAnswers []string `json:"correct_answers"`
	Explanation    string   `json:"explanation,omitempty"`
}

type Option struct {
	Value  string `json:"value"`
	Letter string `json:"letter"`
	Label  string `json:"label"`
}

// DisplayOptions returns the options a renderer shows for the question.
// Boolean questions store no options; they always render as a true/false pair.
func (q Question) DisplayOptions() []Option {
	if q.Category == CategoryBoolean {
		return []Option{
			{Value: TokenTrue, Letter: "✓", Label: LabelTrue},
			{Value: TokenFalse, Letter: "✗", Label: LabelFalse},
		}
	}

	options := make([]Option, 0, len(q.Options))
	for idx, text := range q.Options {
		options = append(options, Option{
			Value:  strconv.Itoa(idx),
			Letter: string(rune('A' + idx)),
			Label:  text,
		})
	}
	return options
}

func (q Question) HasOption(token string) bool {
	for _, option := range q.DisplayOptions() {
		if option.Value == token {
			return true
		}
	}
	return false
}

func (q Question) IsCorrectAnswer(token string) bool {
	for _, answer := range q.CorrectAnswers {
		if answer == token {
			return true
		}
	}
	return false
}

// IsCorrect reports whether selection equals the correct answer set.
// Order is irrelevant and there is no partial credit.
func (q Question) IsCorrect(selection []string) bool {
	return sameTokenSet(selection, q.CorrectAnswers)
}

// CorrectAnswerLabel renders the answer the way the result banner shows it:
// "A, C" for choice questions and 正确/错误 for boolean ones.
func (q Question) CorrectAnswerLabel() string {
	if q.Category == CategoryBoolean {
		if len(q.CorrectAnswers) > 0 && q.CorrectAnswers[0] == TokenTrue {
			return LabelTrue
		}
		return LabelFalse
	}

	letters := make([]string, 0, len(q.CorrectAnswers))
	for _, answer := range q.CorrectAnswers {
		letters = append(letters, TokenToLetter(answer))
	}
	return strings.Join(letters, ", ")
}

// NormalizeLetter maps user input such as " b " to "B". Anything that is not a
// single ASCII letter yields "".
func NormalizeLetter(answer string) string {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return ""
	}
	return letter
}

// LetterToToken converts an option letter into its answer token ("B" -> "1").
func LetterToToken(letter string) (string, bool) {
	normalized := NormalizeLetter(letter)
	if normalized == "" {
		return "", false
	}
	return strconv.Itoa(int(normalized[0] - 'A')), true
}

func TokenToLetter(token string) string {
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 0 || idx > 25 {
		return token
	}
	return string(rune('A' + idx))
}

func sameTokenSet(a, b []string) bool {
	left := tokenSet(a)
	right := tokenSet(b)
	if len(left) != len(right) {
		return false
	}
	for token := range left {
		if _, ok := right[token]; !ok {
			return false
		}
	}
	return true
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
