package quiz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Whitespace classes match the Unicode spaces that show up in transcribed
// banks: no-break, the U+2000 block, ideographic and the byte-order mark.
const space = `\s\x{000B}\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	questionStartPattern = regexp.MustCompile(`^(\d+)[.、` + space + `][` + space + `]*(.*)$`)
	optionPattern        = regexp.MustCompile(`^([A-E])[.、` + space + `][` + space + `]*(.*)$`)
	answerPrefixPattern  = regexp.MustCompile(`答案[:：]?[` + space + `]*`)
	trueFalsePattern     = regexp.MustCompile(
		`^(\d+)[.,、` + space + `][` + space + `]*(.*)[（(][` + space + `]*([√×])[` + space + `]*[)）][` + space + `]*$`,
	)
)

const answerMarker = "答案"

// ParseReport counts what a parse run did with its input. It is diagnostic
// only: producing it never changes which questions are emitted.
type ParseReport struct {
	Emitted      int `json:"emitted"`
	Dropped      int `json:"dropped"`
	IgnoredLines int `json:"ignored_lines"`
}

func ParseChoiceQuestions(raw string, category Category) []Question {
	questions, _ := ParseChoiceQuestionsWithReport(raw, category)
	return questions
}

func ParseTrueFalseQuestions(raw string) []Question {
	questions, _ := ParseTrueFalseQuestionsWithReport(raw)
	return questions
}

// ParseChoiceQuestionsWithReport parses numbered questions with lettered
// options and an answer line:
//
//	1. 题干
//	A. 选项一
//	B. 选项二
//	答案：AB
//
// Incomplete blocks are dropped silently. IDs are "{category}-{n}" where n
// counts question-start lines, so a malformed block never shifts the IDs of
// the blocks after it.
func ParseChoiceQuestionsWithReport(raw string, category Category) ([]Question, ParseReport) {
	parser := choiceParser{category: category}
	for _, line := range splitLines(raw) {
		parser.feed(line)
	}
	parser.finish()
	return parser.questions, parser.report
}

// ParseTrueFalseQuestionsWithReport parses one question per line in the form
// "12. 题干 (√)" or "12、题干（×）". Lines that do not match are skipped,
// including indented ones: the number must start the line.
func ParseTrueFalseQuestionsWithReport(raw string) ([]Question, ParseReport) {
	var (
		questions []Question
		report    ParseReport
	)

	for _, line := range nonBlankLines(raw) {
		match := trueFalsePattern.FindStringSubmatch(line)
		if match == nil {
			report.IgnoredLines++
			continue
		}

		answer := TokenFalse
		if match[3] == "√" {
			answer = TokenTrue
		}
		questions = append(questions, Question{
			ID:             questionID(CategoryBoolean, len(questions)),
			Category:       CategoryBoolean,
			Text:           strings.TrimSpace(match[2]),
			CorrectAnswers: []string{answer},
		})
	}

	report.Emitted = len(questions)
	return questions, report
}

type accumulatorState int

const (
	// accEmpty: no record in progress; continuation and option lines are ignored.
	accEmpty accumulatorState = iota
	// accPrompt: a question-start line was seen and no option yet.
	accPrompt
	// accOptions: at least one option was seen; the next answer line closes the record.
	accOptions
)

// choiceRecord is the in-progress question. Its state decides where a
// continuation line goes, so an option can never be appended once the
// record has been closed by an answer line.
type choiceRecord struct {
	state   accumulatorState
	id      string
	text    string
	options []string
}

func (r choiceRecord) withOption(text string) choiceRecord {
	options := make([]string, len(r.options), len(r.options)+1)
	copy(options, r.options)
	r.options = append(options, text)
	r.state = accOptions
	return r
}

// withContinuation folds a line into the prompt or the last option. Lines
// keep extending the last option until an answer line resets the record;
// banks wrap long options over several lines.
func (r choiceRecord) withContinuation(line string) (choiceRecord, bool) {
	switch r.state {
	case accPrompt:
		if r.text == "" {
			return r, false
		}
		r.text += " " + line
		return r, true
	case accOptions:
		options := make([]string, len(r.options))
		copy(options, r.options)
		options[len(options)-1] += " " + line
		r.options = options
		return r, true
	default:
		return r, false
	}
}

func (r choiceRecord) complete() bool {
	return r.text != "" && len(r.options) > 0
}

type choiceParser struct {
	category  Category
	started   int
	current   choiceRecord
	questions []Question
	report    ParseReport
}

func (p *choiceParser) feed(line string) {
	if match := questionStartPattern.FindStringSubmatch(line); match != nil {
		p.dropCurrent()
		p.current = choiceRecord{
			state: accPrompt,
			id:    questionID(p.category, p.started),
			text:  strings.TrimSpace(match[2]),
		}
		p.started++
		return
	}

	if match := optionPattern.FindStringSubmatch(line); match != nil {
		if p.current.state == accEmpty {
			p.report.IgnoredLines++
			return
		}
		p.current = p.current.withOption(strings.TrimSpace(match[2]))
		return
	}

	if strings.Contains(line, answerMarker) {
		p.closeWithAnswer(line)
		return
	}

	next, ok := p.current.withContinuation(line)
	if !ok {
		p.report.IgnoredLines++
		return
	}
	p.current = next
}

func (p *choiceParser) closeWithAnswer(line string) {
	answerText, ok := extractAnswerText(line)
	if !ok {
		p.report.IgnoredLines++
		return
	}

	tokens := answerTokens(answerText)
	if len(tokens) == 0 {
		p.report.IgnoredLines++
		return
	}

	switch {
	case p.current.complete():
		p.questions = append(p.questions, Question{
			ID:             p.current.id,
			Category:       p.category,
			Text:           p.current.text,
			Options:        p.current.options,
			CorrectAnswers: tokens,
		})
		p.report.Emitted++
	case p.current.state != accEmpty:
		p.report.Dropped++
	default:
		p.report.IgnoredLines++
	}
	p.current = choiceRecord{}
}

func (p *choiceParser) dropCurrent() {
	if p.current.state != accEmpty {
		p.report.Dropped++
	}
	p.current = choiceRecord{}
}

func (p *choiceParser) finish() {
	p.dropCurrent()
}

// extractAnswerText isolates the part of an answer line that holds the
// letters. "答案：AB 解析：…" yields "AB". The second result is false when
// nothing follows the marker. Lines without a usable letter close nothing.
func extractAnswerText(line string) (string, bool) {
	var answer string
	switch {
	case strings.Contains(line, "："):
		answer = strings.Split(line, "：")[1]
	case strings.Contains(line, ":"):
		answer = strings.Split(line, ":")[1]
	default:
		if loc := answerPrefixPattern.FindStringIndex(line); loc != nil {
			answer = line[:loc[0]] + line[loc[1]:]
		} else {
			answer = line
		}
	}
	if answer == "" {
		return "", false
	}
	return strings.TrimSpace(answer), true
}

// answerTokens turns every Latin letter into its zero-based option index.
func answerTokens(answer string) []string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(answer))
	for _, r := range answer {
		upper := unicode.ToUpper(r)
		if upper < 'A' || upper > 'Z' {
			continue
		}
		token := strconv.Itoa(int(upper - 'A'))
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

func splitLines(raw string) []string {
	rawLines := strings.Split(raw, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimFunc(line, isBankSpace)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// nonBlankLines drops whitespace-only lines and keeps leading whitespace on
// the rest. Only a trailing carriage return is removed.
func nonBlankLines(raw string) []string {
	rawLines := strings.Split(raw, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimFunc(line, isBankSpace) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isBankSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func questionID(category Category, sequence int) string {
	return fmt.Sprintf("%s-%d", category, sequence)
}
