package booking

import (
	"strings"
	"time"

	"nurse-agenda/internal/model"
	"nurse-agenda/internal/slot"
)

// Defaults fill in draft fields the user has not chosen yet.
type Defaults struct {
	NurseID   string
	NurseName string
}

// ApplyServiceSelection is the cascade that runs when a service is picked in
// the form: service fields and title follow the service, the end follows
// start plus duration when start is readable, and an empty nurse takes the
// default. The input draft is not modified.
func ApplyServiceSelection(d model.Draft, svc model.Service, def Defaults) model.Draft {
	d.ServiceID = svc.ID
	d.ServiceName = svc.Name
	d.Title = svc.Name

	if start, err := model.ParseLocal(d.Start, time.Local); err == nil {
		d.End = model.FormatLocal(slot.DeriveEndTime(start, svc))
	}

	if strings.TrimSpace(d.NurseID) == "" && strings.TrimSpace(d.NurseName) == "" {
		d.NurseID = def.NurseID
		d.NurseName = def.NurseName
	}
	return d
}

// DefaultsFor uses the first nurse of the catalog.
func DefaultsFor(c Catalog) Defaults {
	nurses := c.ListNurses()
	if len(nurses) == 0 {
		return Defaults{}
	}
	return Defaults{NurseID: nurses[0].ID, NurseName: nurses[0].Name}
}
