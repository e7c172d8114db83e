package quiz

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		err   error
	}{
		{input: "SINGLE", want: CategorySingle},
		{input: " collection_multi ", want: CategoryCollectionMulti},
		{input: "mock", want: CategoryMock},
		{input: "ESSAY", err: ErrUnknownCategory},
		{input: "", err: ErrUnknownCategory},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseCategory(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected err %v, got %v", tc.err, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCategoryTitlesAndBases(t *testing.T) {
	titles := map[Category]string{
		CategorySingle:            "单项选择题",
		CategoryMulti:             "多项选择题",
		CategoryBoolean:           "判断题",
		CategoryCollectionSingle:  "错题集 - 单选",
		CategoryCollectionMulti:   "错题集 - 多选",
		CategoryCollectionBoolean: "错题集 - 判断",
		CategoryMock:              "模拟练习",
		Category("OTHER"):         "",
	}
	for category, want := range titles {
		if got := category.Title(); got != want {
			t.Fatalf("%s: expected title %q, got %q", category, want, got)
		}
	}

	if CategoryCollectionBoolean.Base() != CategoryBoolean || CategoryBoolean.Collection() != CategoryCollectionBoolean {
		t.Fatalf("collection mapping broken")
	}
	if CategoryMock.Base() != "" || CategoryMock.IsCollection() || CategoryMock.IsBase() {
		t.Fatalf("mock must be neither base nor collection")
	}
}

func TestQuestionIsCorrectUsesSetEquality(t *testing.T) {
	question := Question{Category: CategoryMulti, Options: []string{"a", "b", "c"}, CorrectAnswers: []string{"0", "1"}}

	tests := []struct {
		name      string
		selection []string
		want      bool
	}{
		{name: "exact", selection: []string{"0", "1"}, want: true},
		{name: "reordered", selection: []string{"1", "0"}, want: true},
		{name: "partial", selection: []string{"0"}, want: false},
		{name: "superset", selection: []string{"0", "1", "2"}, want: false},
		{name: "disjoint", selection: []string{"1", "2"}, want: false},
		{name: "empty", selection: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := question.IsCorrect(tc.selection); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDisplayOptionsAndAnswerLabels(t *testing.T) {
	boolean := Question{Category: CategoryBoolean, CorrectAnswers: []string{TokenFalse}}
	options := boolean.DisplayOptions()
	if len(options) != 2 || options[0].Value != TokenTrue || options[0].Label != LabelTrue || options[1].Label != LabelFalse {
		t.Fatalf("unexpected boolean options %+v", options)
	}
	if boolean.CorrectAnswerLabel() != LabelFalse {
		t.Fatalf("unexpected boolean label %q", boolean.CorrectAnswerLabel())
	}
	if boolean.HasOption("0") || !boolean.HasOption(TokenTrue) {
		t.Fatalf("boolean options accept only true/false tokens")
	}

	choice := Question{Category: CategoryMulti, Options: []string{"甲", "乙", "丙"}, CorrectAnswers: []string{"0", "2"}}
	options = choice.DisplayOptions()
	if len(options) != 3 || options[2].Letter != "C" || options[2].Value != "2" || options[2].Label != "丙" {
		t.Fatalf("unexpected choice options %+v", options)
	}
	if choice.CorrectAnswerLabel() != "A, C" {
		t.Fatalf("unexpected choice label %q", choice.CorrectAnswerLabel())
	}
	if choice.HasOption("3") {
		t.Fatalf("token beyond the options must be rejected")
	}
}

func TestLetterConversions(t *testing.T) {
	if token, ok := LetterToToken(" c "); !ok || token != "2" {
		t.Fatalf("expected token 2, got %q ok=%v", token, ok)
	}
	if _, ok := LetterToToken("AB"); ok {
		t.Fatalf("multi-letter input must be rejected")
	}
	if TokenToLetter("3") != "D" || TokenToLetter(TokenTrue) != TokenTrue {
		t.Fatalf("unexpected token to letter conversion")
	}
}
