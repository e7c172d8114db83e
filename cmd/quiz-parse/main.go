package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"glassquiz/internal/quiz"
)

func main() {
	categoryFlag := flag.String("category", "SINGLE", "bank type: SINGLE|MULTI|BOOLEAN")
	flag.Parse()

	if err := run(*categoryFlag, flag.Args(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run parses the bank named by args (or stdin), writes the questions to out
// as JSON and the parse report to errOut.
func run(categoryName string, args []string, in io.Reader, out, errOut io.Writer) error {
	category, err := quiz.ParseCategory(categoryName)
	if err != nil || !category.IsBase() {
		return fmt.Errorf("category must be SINGLE, MULTI or BOOLEAN, got %q", categoryName)
	}

	var raw []byte
	switch len(args) {
	case 0:
		raw, err = io.ReadAll(in)
	case 1:
		raw, err = os.ReadFile(args[0])
	default:
		return fmt.Errorf("expected at most one bank file, got %d", len(args))
	}
	if err != nil {
		return fmt.Errorf("read bank: %w", err)
	}

	var (
		questions []quiz.Question
		report    quiz.ParseReport
	)
	if category == quiz.CategoryBoolean {
		questions, report = quiz.ParseTrueFalseQuestionsWithReport(string(raw))
	} else {
		questions, report = quiz.ParseChoiceQuestionsWithReport(string(raw), category)
	}
	if questions == nil {
		questions = []quiz.Question{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(questions); err != nil {
		return fmt.Errorf("write questions: %w", err)
	}

	fmt.Fprintf(errOut, "%s: %d emitted, %d dropped, %d lines ignored\n",
		category, report.Emitted, report.Dropped, report.IgnoredLines)
	return nil
}
