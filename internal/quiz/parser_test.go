package quiz

import (
	"reflect"
	"testing"
)

func TestParseChoiceQuestionsBuildsQuestions(t *testing.T) {
	raw := `
1. 下列属于操作系统的是
A. Linux
B. Word
C. Excel
答案：A

2、以下哪些是编程语言
A、Go
B、HTML
C、Rust
D、CSS
答案: ac
`

	questions := ParseChoiceQuestions(raw, CategoryMulti)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d: %+v", len(questions), questions)
	}

	first := questions[0]
	if first.ID != "MULTI-0" || first.Category != CategoryMulti {
		t.Fatalf("unexpected identity: %q %q", first.ID, first.Category)
	}
	if first.Text != "下列属于操作系统的是" {
		t.Fatalf("unexpected text %q", first.Text)
	}
	if !reflect.DeepEqual(first.Options, []string{"Linux", "Word", "Excel"}) {
		t.Fatalf("unexpected options %+v", first.Options)
	}
	if !reflect.DeepEqual(first.CorrectAnswers, []string{"0"}) {
		t.Fatalf("unexpected answers %+v", first.CorrectAnswers)
	}

	second := questions[1]
	if second.ID != "MULTI-1" {
		t.Fatalf("unexpected id %q", second.ID)
	}
	if len(second.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(second.Options))
	}
	if !reflect.DeepEqual(second.CorrectAnswers, []string{"0", "2"}) {
		t.Fatalf("unexpected answers %+v", second.CorrectAnswers)
	}
}

func TestParseChoiceQuestionsAnswerLineVariants(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   []string
	}{
		{name: "full width colon", answer: "答案：B", want: []string{"1"}},
		{name: "ascii colon", answer: "答案:B", want: []string{"1"}},
		{name: "no colon", answer: "答案 B", want: []string{"1"}},
		{name: "bracketed marker", answer: "【答案】BD", want: []string{"1", "3"}},
		{name: "lower case and separators", answer: "答案：b、d", want: []string{"1", "3"}},
		{name: "duplicates collapse", answer: "答案：BBA", want: []string{"1", "0"}},
		{name: "trailing analysis is split off", answer: "答案：C 解析：略", want: []string{"2"}},
		{name: "letters beyond options are kept", answer: "答案：F", want: []string{"5"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := "1. 题目\nA. 甲\nB. 乙\nC. 丙\nD. 丁\n" + tc.answer
			questions := ParseChoiceQuestions(raw, CategorySingle)
			if len(questions) != 1 {
				t.Fatalf("expected 1 question, got %d", len(questions))
			}
			if !reflect.DeepEqual(questions[0].CorrectAnswers, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, questions[0].CorrectAnswers)
			}
		})
	}
}

func TestParseChoiceQuestionsContinuationLines(t *testing.T) {
	raw := `1. 下列哪一项
属于操作系统？
A. Linux
B. Word
的文档编辑器
答案：A`

	questions := ParseChoiceQuestions(raw, CategorySingle)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Text != "下列哪一项 属于操作系统？" {
		t.Fatalf("continuation not appended to text: %q", questions[0].Text)
	}
	if !reflect.DeepEqual(questions[0].Options, []string{"Linux", "Word 的文档编辑器"}) {
		t.Fatalf("continuation not appended to last option: %+v", questions[0].Options)
	}
}

func TestParseChoiceQuestionsDropsIncompleteBlocksWithStableIDs(t *testing.T) {
	raw := `1. 没有答案的题
A. 甲
2. 没有选项的题
答案：A
3. 完整的题
A. 甲
B. 乙
答案：B
4. 未结束的题
A. 甲`

	questions := ParseChoiceQuestions(raw, CategorySingle)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d: %+v", len(questions), questions)
	}
	if questions[0].ID != "SINGLE-2" {
		t.Fatalf("expected id to count question starts, got %q", questions[0].ID)
	}
	if questions[0].Text != "完整的题" {
		t.Fatalf("unexpected text %q", questions[0].Text)
	}
}

func TestParseChoiceQuestionsEmptyAnswerKeepsRecordOpen(t *testing.T) {
	raw := "1. 题目\nA. 甲\nB. 乙\n答案：\n答案：B"

	questions := ParseChoiceQuestions(raw, CategorySingle)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if !reflect.DeepEqual(questions[0].CorrectAnswers, []string{"1"}) {
		t.Fatalf("unexpected answers %v", questions[0].CorrectAnswers)
	}
}

func TestParseChoiceQuestionsAnswerWithoutLettersKeepsRecordOpen(t *testing.T) {
	raw := "1. 题目\nA. 甲\n答案：无\nB. 乙\n答案：B"

	questions, report := ParseChoiceQuestionsWithReport(raw, CategorySingle)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %+v", questions)
	}
	if !reflect.DeepEqual(questions[0].Options, []string{"甲", "乙"}) {
		t.Fatalf("unexpected options %v", questions[0].Options)
	}
	if report.IgnoredLines != 1 {
		t.Fatalf("expected the letterless answer line to be ignored, got %+v", report)
	}
}

func TestParseChoiceQuestionsWithReportCounts(t *testing.T) {
	raw := `第一章 练习
1. 第一题
A. 甲
答案：A
2. 第二题
A. 甲
3. 第三题
答案：B
A. 孤立选项
4. 第四题
B. 乙`

	questions, report := ParseChoiceQuestionsWithReport(raw, CategorySingle)
	if len(questions) != 1 || questions[0].ID != "SINGLE-0" {
		t.Fatalf("unexpected questions %+v", questions)
	}
	want := ParseReport{Emitted: 1, Dropped: 3, IgnoredLines: 2}
	if report != want {
		t.Fatalf("expected report %+v, got %+v", want, report)
	}
}

func TestParseChoiceQuestionsIgnoresBlankAndByteOrderMark(t *testing.T) {
	raw := "\uFEFF1.\u3000题目\r\n\r\nA.\u3000甲\r\n   \r\n答案：A\r\n"

	questions := ParseChoiceQuestions(raw, CategorySingle)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Text != "题目" || questions[0].Options[0] != "甲" {
		t.Fatalf("unexpected question %+v", questions[0])
	}
}

func TestParseTrueFalseQuestions(t *testing.T) {
	raw := `判断题
1. 北京是中国首都 (√)
2、地球是平的（×）
3,太阳从东边升起（ √ ）
4. 没有判断符号
5. 符号不合法 (?)
月亮是恒星 (×)`

	questions, report := ParseTrueFalseQuestionsWithReport(raw)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d: %+v", len(questions), questions)
	}

	wantAnswers := []string{TokenTrue, TokenFalse, TokenTrue}
	wantTexts := []string{"北京是中国首都", "地球是平的", "太阳从东边升起"}
	for idx, question := range questions {
		if question.ID != questionID(CategoryBoolean, idx) {
			t.Fatalf("unexpected id %q at %d", question.ID, idx)
		}
		if question.Category != CategoryBoolean {
			t.Fatalf("unexpected category %q", question.Category)
		}
		if question.Text != wantTexts[idx] {
			t.Fatalf("expected text %q, got %q", wantTexts[idx], question.Text)
		}
		if !reflect.DeepEqual(question.CorrectAnswers, []string{wantAnswers[idx]}) {
			t.Fatalf("expected answer %q, got %v", wantAnswers[idx], question.CorrectAnswers)
		}
		if len(question.Options) != 0 {
			t.Fatalf("boolean questions carry no options, got %v", question.Options)
		}
	}

	if report.Emitted != 3 || report.IgnoredLines != 4 || report.Dropped != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestParseTrueFalseQuestionsRejectsLinesWithoutSymbol(t *testing.T) {
	for _, line := range []string{
		"1. 北京是中国首都",
		"1. 北京是中国首都 ()",
		"北京是中国首都 (√)",
		"1. 北京是中国首都 (√) 备注",
	} {
		if questions := ParseTrueFalseQuestions(line); len(questions) != 0 {
			t.Fatalf("expected %q to be rejected, got %+v", line, questions)
		}
	}
}

func TestParseTrueFalseQuestionsSkipsIndentedLines(t *testing.T) {
	raw := "  1. 北京是中国首都 (√)\n\t2. 地球是平的 (×)\n3. 太阳从东边升起 (√)\r\n   \n"

	questions, report := ParseTrueFalseQuestionsWithReport(raw)
	if len(questions) != 1 {
		t.Fatalf("expected only the unindented line, got %+v", questions)
	}
	if questions[0].ID != "BOOLEAN-0" || questions[0].Text != "太阳从东边升起" {
		t.Fatalf("unexpected question %+v", questions[0])
	}
	if report.Emitted != 1 || report.IgnoredLines != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestParseTrueFalseQuestionsAcceptsArithmeticText(t *testing.T) {
	questions := ParseTrueFalseQuestions("1. 2+2=? (√)")
	if len(questions) != 1 {
		t.Fatalf("expected the line to parse, got %+v", questions)
	}
	if questions[0].Text != "2+2=?" || questions[0].CorrectAnswers[0] != TokenTrue {
		t.Fatalf("unexpected question %+v", questions[0])
	}
}

func TestParseRecognizesWideUnicodeSpaces(t *testing.T) {
	for _, sep := range []string{"\u2003", "\u200A", "\u202F", "\u205F", "\u1680", "\uFEFF"} {
		choice := ParseChoiceQuestions("1"+sep+"题目\nA"+sep+"甲\n答案：A", CategorySingle)
		if len(choice) != 1 || choice[0].Text != "题目" || choice[0].Options[0] != "甲" {
			t.Fatalf("separator %U: unexpected choice questions %+v", []rune(sep)[0], choice)
		}

		boolean := ParseTrueFalseQuestions("1" + sep + "题目 (" + sep + "√" + sep + ")")
		if len(boolean) != 1 || boolean[0].Text != "题目" {
			t.Fatalf("separator %U: unexpected boolean questions %+v", []rune(sep)[0], boolean)
		}
	}
}
