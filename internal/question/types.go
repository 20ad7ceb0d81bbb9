package question

// DefaultPath is the quiz file loaded when no path is supplied.
const DefaultPath = "questions.json"

// TypeList is the only supported question type.
const TypeList = "list"

// MarkerKind identifies how a question records its correct choice.
type MarkerKind int

const (
	// MarkerText stores the exact text of the correct choice.
	MarkerText MarkerKind = iota
	// MarkerIndex stores a zero-based index into the original choices.
	MarkerIndex
)

// String returns the quiz file field name for the marker kind.
func (kind MarkerKind) String() string {
	switch kind {
	case MarkerIndex:
		return "correct"
	default:
		return "correctAnswer"
	}
}

// Marker identifies the correct choice of a question. Index and Text are
// both populated once the marker has been resolved against the choices.
type Marker struct {
	Kind  MarkerKind
	Index int
	Text  string
}

// TextMarker builds an unresolved text-based marker.
func TextMarker(text string) Marker {
	return Marker{Kind: MarkerText, Index: -1, Text: text}
}

// IndexMarker builds an unresolved index-based marker.
func IndexMarker(index int) Marker {
	return Marker{Kind: MarkerIndex, Index: index}
}

// Question is one quiz item. It is immutable after load.
type Question struct {
	Name    string
	Type    string
	Message string
	Choices []string
	Marker  Marker
}

// rawQuizData mirrors the quiz file layout before markers are resolved.
type rawQuizData struct {
	Questions *[]rawQuestion `json:"questions" yaml:"questions"`
}

type rawQuestion struct {
	Name          string   `json:"name" yaml:"name"`
	Type          string   `json:"type" yaml:"type"`
	Message       string   `json:"message" yaml:"message"`
	Choices       []string `json:"choices" yaml:"choices"`
	Correct       *int     `json:"correct" yaml:"correct"`
	CorrectAnswer *string  `json:"correctAnswer" yaml:"correctAnswer"`
}
