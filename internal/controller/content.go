package controller

import "quickhelp/internal/api"

// Target names a results container. String returns its DOM id.
type Target int

const (
	TargetSearchResults Target = iota
	TargetAnswerResult
	TargetClusterResults
	TargetIndexResult
)

var targetIDs = [...]string{
	TargetSearchResults:  "searchResults",
	TargetAnswerResult:   "answerResult",
	TargetClusterResults: "clusterResults",
	TargetIndexResult:    "indexResult",
}

func (t Target) String() string {
	if t < 0 || int(t) >= len(targetIDs) {
		return "unknown"
	}
	return targetIDs[t]
}

// TargetFor returns the container owned by a tab.
func TargetFor(tab Tab) Target {
	switch tab {
	case TabAsk:
		return TargetAnswerResult
	case TabCluster:
		return TargetClusterResults
	case TabIndex:
		return TargetIndexResult
	default:
		return TargetSearchResults
	}
}

// Content is anything a container can display. Rendering replaces the
// container's previous content entirely.
type Content interface {
	content()
}

// MessageKind classifies a message block.
type MessageKind int

const (
	MessageError MessageKind = iota
	MessageInfo
	MessageSuccess
)

func (k MessageKind) String() string {
	switch k {
	case MessageInfo:
		return "info"
	case MessageSuccess:
		return "success"
	default:
		return "error"
	}
}

// Icon is the glyph shown before the title.
func (k MessageKind) Icon() string {
	switch k {
	case MessageInfo:
		return "ℹ"
	case MessageSuccess:
		return "✓"
	default:
		return "✗"
	}
}

// Title is the capitalised kind, e.g. "Error".
func (k MessageKind) Title() string {
	switch k {
	case MessageInfo:
		return "Info"
	case MessageSuccess:
		return "Success"
	default:
		return "Error"
	}
}

// Message is a status block: validation errors, backend failures, info.
type Message struct {
	Kind MessageKind
	Text string
}

// SearchResults is a non-empty ranked hit list.
type SearchResults struct {
	Results []api.SearchResult
}

// Answer is a synthesized answer with optional sources.
type Answer struct {
	Text    string
	Sources []api.Source
}

// ClusterList is a non-empty list of clusters.
type ClusterList struct {
	Clusters []api.Cluster
}

// IndexReport is the success banner shown after indexing, with optional stats.
type IndexReport struct {
	Message string
	Stats   *api.Stats
}

func (Message) content()       {}
func (SearchResults) content() {}
func (Answer) content()        {}
func (ClusterList) content()   {}
func (IndexReport) content()   {}

// Counters are the header statistics.
type Counters struct {
	Documents int
	Words     int
	Tags      int
}

// ErrorMessage is shorthand for an error block.
func ErrorMessage(text string) Message { return Message{Kind: MessageError, Text: text} }

// InfoMessage is shorthand for an info block.
func InfoMessage(text string) Message { return Message{Kind: MessageInfo, Text: text} }
