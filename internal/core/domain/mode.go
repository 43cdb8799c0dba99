package domain

import "fmt"

// ModeName selects an analysis profile: the retrieval queries used to build
// context and the tone of the generated summary.
type ModeName string

const (
	ModeProfessional ModeName = "professional"
	ModeTech         ModeName = "tech"
	ModeDigest       ModeName = "digest"
)

func ParseModeName(s string) (ModeName, error) {
	switch ModeName(s) {
	case ModeProfessional, ModeTech, ModeDigest:
		return ModeName(s), nil
	default:
		return "", WrapError(ErrInvalidInput, "parse mode", fmt.Errorf("unknown mode %q", s))
	}
}

func (m ModeName) DisplayName() string {
	switch m {
	case ModeProfessional:
		return "Professional"
	case ModeTech:
		return "Tech Deep-Dive"
	case ModeDigest:
		return "Quick Digest"
	default:
		return string(m)
	}
}

// Widget is a tagged variant for the auxiliary artifacts derived from an
// analyzed document.
type Widget string

const (
	WidgetEmail     Widget = "email"
	WidgetQuestions Widget = "questions"
	WidgetConcepts  Widget = "concepts"
	WidgetStructure Widget = "structure"
)

func ParseWidget(s string) (Widget, error) {
	switch Widget(s) {
	case WidgetEmail, WidgetQuestions, WidgetConcepts, WidgetStructure:
		return Widget(s), nil
	default:
		return "", WrapError(ErrInvalidInput, "parse widget", fmt.Errorf("unknown widget %q", s))
	}
}

// modeWidgets is the capability table consulted by the presentation layer:
// which widgets are offered for each analysis mode.
var modeWidgets = map[ModeName][]Widget{
	ModeProfessional: {WidgetQuestions, WidgetEmail},
	ModeTech:         {WidgetQuestions, WidgetConcepts, WidgetStructure},
	ModeDigest:       {WidgetQuestions},
}

// EnabledWidgets returns the widget variants available in mode m, in display
// order.
func (m ModeName) EnabledWidgets() []Widget {
	widgets := modeWidgets[m]
	out := make([]Widget, len(widgets))
	copy(out, widgets)
	return out
}

func (m ModeName) Supports(widget Widget) bool {
	for _, w := range modeWidgets[m] {
		if w == widget {
			return true
		}
	}
	return false
}

// WidgetResult carries one generated artifact. Content is the rendered
// transcript text; Items is set for the list-shaped variants (questions,
// structure).
type WidgetResult struct {
	Widget  Widget   `json:"widget"`
	Content string   `json:"content"`
	Items   []string `json:"items,omitempty"`
}
