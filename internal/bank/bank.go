package bank

import (
	"embed"
	"fmt"
	"log"
	"os"
	"strings"

	"glassquiz/internal/quiz"
)

//go:embed data/*.txt
var defaults embed.FS

// Sources names the raw bank files. An empty path selects the embedded
// default bank for that category.
type Sources struct {
	Single  string
	Multi   string
	Boolean string
}

// Banks holds the parsed questions and the diagnostics of each parse.
type Banks struct {
	Single  []quiz.Question
	Multi   []quiz.Question
	Boolean []quiz.Question
	Reports map[quiz.Category]quiz.ParseReport
}

func (b Banks) Total() int {
	return len(b.Single) + len(b.Multi) + len(b.Boolean)
}

// Load reads and parses the three banks. Reading a configured file that
// does not exist is an error; a bank that parses to nothing is not.
func Load(sources Sources, logger *log.Logger) (Banks, error) {
	if logger == nil {
		logger = log.Default()
	}

	singleRaw, err := readSource(sources.Single, "data/single.txt")
	if err != nil {
		return Banks{}, err
	}
	multiRaw, err := readSource(sources.Multi, "data/multi.txt")
	if err != nil {
		return Banks{}, err
	}
	booleanRaw, err := readSource(sources.Boolean, "data/boolean.txt")
	if err != nil {
		return Banks{}, err
	}

	banks := Banks{Reports: make(map[quiz.Category]quiz.ParseReport, 3)}
	var report quiz.ParseReport

	banks.Single, report = quiz.ParseChoiceQuestionsWithReport(singleRaw, quiz.CategorySingle)
	banks.Reports[quiz.CategorySingle] = report
	banks.Multi, report = quiz.ParseChoiceQuestionsWithReport(multiRaw, quiz.CategoryMulti)
	banks.Reports[quiz.CategoryMulti] = report
	banks.Boolean, report = quiz.ParseTrueFalseQuestionsWithReport(booleanRaw)
	banks.Reports[quiz.CategoryBoolean] = report

	for _, category := range []quiz.Category{quiz.CategorySingle, quiz.CategoryMulti, quiz.CategoryBoolean} {
		report := banks.Reports[category]
		if report.Dropped > 0 {
			logger.Printf("bank %s: %d questions loaded, %d incomplete blocks skipped", category, report.Emitted, report.Dropped)
		}
	}
	return banks, nil
}

// Catalog builds a catalog over the loaded banks.
func (b Banks) Catalog(favorites quiz.FavoritesStore, opts ...quiz.CatalogOption) *quiz.Catalog {
	return quiz.NewCatalog(b.Single, b.Multi, b.Boolean, favorites, opts...)
}

func readSource(path, embedded string) (string, error) {
	if strings.TrimSpace(path) == "" {
		data, err := defaults.ReadFile(embedded)
		if err != nil {
			return "", fmt.Errorf("read embedded bank %s: %w", embedded, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read bank %s: %w", path, err)
	}
	return string(data), nil
}
