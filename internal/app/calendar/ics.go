package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

const icsProductID = "-//InnoEvent//Portal Calendar//EN"

// WriteICS encodes entries as an iCalendar document. No entries yield a calendar without events.
func WriteICS(w io.Writer, entries []Entry) error {
	return writeICS(w, entries, time.Now().UTC())
}

func writeICS(w io.Writer, entries []Entry, stamp time.Time) error {
	// The encoder refuses a VCALENDAR without components.
	if len(entries) == 0 {
		return writeEmptyICS(w)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)

	for _, e := range entries {
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, fmt.Sprintf("%s@innoevent", e.ID))
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		ev.Props.SetDateTime(ical.PropDateTimeStart, e.Start.UTC())
		ev.Props.SetText(ical.PropSummary, e.Title)
		if e.Location != "" {
			ev.Props.SetText(ical.PropLocation, e.Location)
		}
		ev.Props.SetText(ical.PropCategories, strings.ToUpper(string(e.Category)))
		if e.Color != "" {
			ev.Props.SetText("COLOR", e.Color)
		}
		cal.Children = append(cal.Children, ev.Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

func writeEmptyICS(w io.Writer) error {
	_, err := io.WriteString(w, "BEGIN:VCALENDAR\r\n"+
		"VERSION:2.0\r\n"+
		"PRODID:"+icsProductID+"\r\n"+
		"END:VCALENDAR\r\n")
	return err
}
