package calendar

// GridCells is six weeks of seven days
const GridCells = 42

// Supported year range
const (
	MinYear = 1
	MaxYear = 9999
)

const weekdayHeader = " Su  Mo  Tu  We  Th  Fr  Sa"

const fieldToday = "today"

// Error messages
const (
	ErrMsgInvalidMonth = "month out of range"
	ErrMsgInvalidYear  = "year out of range"
)
