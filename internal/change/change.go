package change

import "nurse-agenda/internal/model"

// Significant field names, in the order Changes reports them.
const (
	FieldStart   = "start"
	FieldEnd     = "end"
	FieldService = "service"
	FieldNotes   = "notes"
	FieldColor   = "color"
)

// HasSignificantChange reports whether an edit needs confirmation. There is
// nothing to confirm without an original. Nurse and title are not compared;
// the nurse is locked while editing.
func HasSignificantChange(original *model.Appointment, draft model.Appointment) bool {
	return len(Changes(original, draft)) > 0
}

// Changes lists the significant fields that differ. Times compare at
// millisecond precision.
func Changes(original *model.Appointment, draft model.Appointment) []string {
	if original == nil {
		return nil
	}
	var out []string
	if original.Start.UnixMilli() != draft.Start.UnixMilli() {
		out = append(out, FieldStart)
	}
	if original.End.UnixMilli() != draft.End.UnixMilli() {
		out = append(out, FieldEnd)
	}
	if original.ServiceName != draft.ServiceName {
		out = append(out, FieldService)
	}
	if original.Notes != draft.Notes {
		out = append(out, FieldNotes)
	}
	if original.Color != draft.Color {
		out = append(out, FieldColor)
	}
	return out
}
