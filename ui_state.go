package main

type mode int

const (
	modeView mode = iota
	modeCommand
)

// pane is the part of the screen that receives navigation keys.
type pane int

const (
	paneColumns pane = iota
	paneValues
	paneTable
)

func (p pane) String() string {
	switch p {
	case paneColumns:
		return "columns"
	case paneValues:
		return "values"
	default:
		return "table"
	}
}

type uiState struct {
	mode         mode
	focus        pane
	columnCursor int
	command      CommandInput
	noticeMsg    string
	noticeType   string
	noticeSeq    int
	searchQuery  string
	loading      bool

	visibleStart int
	visibleEnd   int
}
