package shift

import "time"

// RosterEntry mirrors one element of the roster service response body.
type RosterEntry struct {
	UserName  string `json:"User_Name"`
	ShiftType string `json:"Shift_Type"`
	StartTime string `json:"Start_Time"`
	EndTime   string `json:"End_Time"`
}

// The roster formats times as 12-hour clock strings, e.g. "09:00 AM".
const rosterTimeLayout = "03:04 PM"

// Window is a parsed shift time window. Valid is false when either bound was
// missing or unparseable; lateness then reports "-".
type Window struct {
	Start time.Time
	End   time.Time
	Valid bool
}

// WindowTable is a request-scoped lookup from roster username to shift type
// and time window. It is built once per aggregation call from the roster
// response and passed down explicitly; nothing here is shared across requests.
type WindowTable struct {
	types   map[string]string
	windows map[string]Window
}

// NewWindowTable indexes roster entries by username, keeping the first
// occurrence when the roster reports duplicates.
func NewWindowTable(entries []RosterEntry) WindowTable {
	t := WindowTable{
		types:   make(map[string]string, len(entries)),
		windows: make(map[string]Window, len(entries)),
	}
	for _, e := range entries {
		if e.UserName == "" {
			continue
		}
		if _, seen := t.types[e.UserName]; seen {
			continue
		}

		shiftType := e.ShiftType
		if shiftType == "" {
			shiftType = "-"
		}
		t.types[e.UserName] = shiftType
		t.windows[e.UserName] = parseWindow(e.StartTime, e.EndTime)
	}
	return t
}

func parseWindow(start, end string) Window {
	if start == "" || end == "" {
		return Window{}
	}
	s, err := time.Parse(rosterTimeLayout, start)
	if err != nil {
		return Window{}
	}
	e, err := time.Parse(rosterTimeLayout, end)
	if err != nil {
		return Window{}
	}
	return Window{Start: s, End: e, Valid: true}
}

// ShiftType returns the user's shift type, or "-" when the roster does not
// know the username.
func (t WindowTable) ShiftType(username string) string {
	if st, ok := t.types[username]; ok {
		return st
	}
	return "-"
}

// Window returns the user's shift window and whether the roster listed the
// username at all.
func (t WindowTable) Window(username string) (Window, bool) {
	w, ok := t.windows[username]
	return w, ok
}
