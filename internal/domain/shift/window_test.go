package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWindowTable_KeepsFirstOccurrence(t *testing.T) {
	table := NewWindowTable([]RosterEntry{
		{UserName: "jdoe", ShiftType: "Morning", StartTime: "09:00 AM", EndTime: "05:00 PM"},
		{UserName: "jdoe", ShiftType: "Night", StartTime: "10:00 PM", EndTime: "06:00 AM"},
	})

	assert.Equal(t, "Morning", table.ShiftType("jdoe"))

	w, ok := table.Window("jdoe")
	assert.True(t, ok)
	assert.True(t, w.Valid)
	assert.Equal(t, 9, w.Start.Hour())
	assert.Equal(t, 17, w.End.Hour())
}

func TestNewWindowTable_SkipsEmptyUsername(t *testing.T) {
	table := NewWindowTable([]RosterEntry{
		{UserName: "", ShiftType: "Morning", StartTime: "09:00 AM", EndTime: "05:00 PM"},
	})

	_, ok := table.Window("")
	assert.False(t, ok)
}

func TestNewWindowTable_EmptyShiftTypeDefaults(t *testing.T) {
	table := NewWindowTable([]RosterEntry{
		{UserName: "jdoe", StartTime: "09:00 AM", EndTime: "05:00 PM"},
	})

	assert.Equal(t, "-", table.ShiftType("jdoe"))
}

func TestNewWindowTable_UnparseableTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"garbage start", "morning", "05:00 PM"},
		{"garbage end", "09:00 AM", "whenever"},
		{"missing start", "", "05:00 PM"},
		{"missing end", "09:00 AM", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewWindowTable([]RosterEntry{
				{UserName: "jdoe", ShiftType: "Morning", StartTime: tt.start, EndTime: tt.end},
			})

			w, ok := table.Window("jdoe")
			assert.True(t, ok)
			assert.False(t, w.Valid)
		})
	}
}

func TestWindowTable_UnknownUser(t *testing.T) {
	table := NewWindowTable(nil)

	assert.Equal(t, "-", table.ShiftType("ghost"))
	_, ok := table.Window("ghost")
	assert.False(t, ok)
}
