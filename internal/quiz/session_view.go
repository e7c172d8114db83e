package quiz

import "strconv"

// SessionView is a snapshot of everything a front-end renders for a session.
type SessionView struct {
	Category       Category `json:"category"`
	Title          string   `json:"title"`
	Empty          bool     `json:"empty"`
	EmptyTitle     string   `json:"empty_title,omitempty"`
	EmptyDetail    string   `json:"empty_detail,omitempty"`
	CollectionMode bool     `json:"collection_mode"`
	Finished       bool     `json:"finished"`

	Index    int     `json:"index"`
	Total    int     `json:"total"`
	Progress float64 `json:"progress"`
	Score    int     `json:"score"`

	Question      Question     `json:"question"`
	Badge         string       `json:"badge,omitempty"`
	Options       []OptionView `json:"options,omitempty"`
	Selection     []string     `json:"selection,omitempty"`
	CanSubmit     bool         `json:"can_submit"`
	Submitted     bool         `json:"submitted"`
	Correct       bool         `json:"correct"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Notice        string       `json:"notice,omitempty"`
	Favorite      bool         `json:"favorite"`

	AdvancePending bool   `json:"advance_pending"`
	Explaining     bool   `json:"explaining"`
	Explanation    string `json:"explanation,omitempty"`
}

type OptionView struct {
	Option
	Selected bool `json:"selected"`
	// IsAnswer is only reported once the question has been submitted.
	IsAnswer bool `json:"is_answer"`
}

// Position renders the 1-based "i / n" counter.
func (v SessionView) Position() string {
	if v.Empty {
		return ""
	}
	return strconv.Itoa(v.Index+1) + " / " + strconv.Itoa(v.Total)
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		Category:       s.category,
		Title:          s.category.Title(),
		CollectionMode: s.collecting,
		Finished:       s.finished,
		Total:          len(s.questions),
		Score:          s.score,
	}
	if len(s.questions) == 0 {
		view.Empty = true
		view.EmptyTitle = EmptyTitle
		view.EmptyDetail = EmptyCollectionDetail
		return view
	}

	question := s.questions[s.index]
	view.Index = s.index
	view.Progress = float64(s.index+1) / float64(len(s.questions))
	view.Question = question
	view.Badge = question.Category.Badge()
	view.Selection = append([]string(nil), s.selection...)
	view.Submitted = s.submitted
	view.Correct = s.submitted && s.correct
	view.Favorite = s.favorite
	view.AdvancePending = s.pending != nil
	view.Explaining = s.explaining
	view.Explanation = s.explanation
	view.CanSubmit = !s.submitted && !s.finished && question.Category == CategoryMulti && len(s.selection) > 0

	if s.submitted {
		view.CorrectAnswer = question.CorrectAnswerLabel()
	}
	if s.autoCollected {
		view.Notice = NoticeAutoCollected
	}

	selected := tokenSet(s.selection)
	for _, option := range question.DisplayOptions() {
		_, isSelected := selected[option.Value]
		view.Options = append(view.Options, OptionView{
			Option:   option,
			Selected: isSelected,
			IsAnswer: s.submitted && question.IsCorrectAnswer(option.Value),
		})
	}
	return view
}
