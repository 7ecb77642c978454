package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"strings"
	"time"

	"wedding_planner/model"
)

// dash renders optional fields as "-" when empty.
func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// BuildGuestCSV turns guest rows into a CSV document for download.
func BuildGuestCSV(guests []model.Guest) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"First Name", "Last Name", "Email", "Phone", "Side", "RSVP", "Plus One", "Plus One Name", "Dietary Restrictions", "Meal Selections", "Notes"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, g := range guests {
		plusOne := "no"
		if g.PlusOne {
			plusOne = "yes"
		}
		row := []string{
			g.FirstName,
			g.LastName,
			g.Email,
			g.Phone,
			g.Side,
			g.RsvpStatus,
			plusOne,
			g.PlusOneName,
			g.DietaryRestrictions,
			g.MealSelections,
			g.Notes,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type SeatingSummaryRow struct {
	TableName string
	SeatCount int
	Occupied  int
	Guests    []string
}

type EventSummaryData struct {
	Event     model.Event
	Guests    []model.Guest
	MenuItems []model.MenuItem
	Drinks    []model.Drink
	Seating   []SeatingSummaryRow
	Timeline  []model.TimelineDay
}

var summaryTmpl = template.Must(template.New("event_summary").Funcs(template.FuncMap{
	"dash": dash,
	"fmtDate": func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("2 January 2006")
	},
	"occupancy": func(r SeatingSummaryRow) string {
		return fmt.Sprintf("%d/%d", r.Occupied, r.SeatCount)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Event.Name}}</title>
<style>
body { font-family: Georgia, serif; margin: 40px; }
h1 { text-align: center; }
.cover { text-align: center; page-break-after: always; margin-top: 180px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 24px; }
th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; font-size: 13px; }
h2 { page-break-before: always; }
</style>
</head>
<body>
<div class="cover">
  <h1>{{.Event.Name}}</h1>
  <p>{{dash .Event.Partner1Name}} &amp; {{dash .Event.Partner2Name}}</p>
  <p>{{fmtDate .Event.WeddingDate}}</p>
  <p>{{dash .Event.VenueName}}</p>
</div>

<h2>Guest List</h2>
<table>
<tr><th>Name</th><th>Side</th><th>RSVP</th><th>Plus One</th><th>Dietary</th></tr>
{{range .Guests}}
<tr>
  <td>{{.FirstName}} {{.LastName}}</td>
  <td>{{dash .Side}}</td>
  <td>{{.RsvpStatus}}</td>
  <td>{{if .PlusOne}}{{dash .PlusOneName}}{{else}}-{{end}}</td>
  <td>{{dash .DietaryRestrictions}}</td>
</tr>
{{end}}
</table>

<h2>Menu</h2>
<table>
<tr><th>Course</th><th>Dish</th><th>Description</th></tr>
{{range .MenuItems}}
<tr><td>{{.Course}}</td><td>{{.Name}}</td><td>{{dash .Description}}</td></tr>
{{end}}
</table>
<table>
<tr><th>Drink</th><th>Category</th><th>Corkage</th></tr>
{{range .Drinks}}
<tr><td>{{.Name}}</td><td>{{dash .Category}}</td><td>{{if .Corkage}}client supplied{{else}}venue supplied{{end}}</td></tr>
{{end}}
</table>

<h2>Seating</h2>
<table>
<tr><th>Table</th><th>Occupancy</th><th>Guests</th></tr>
{{range .Seating}}
<tr><td>{{.TableName}}</td><td>{{occupancy .}}</td><td>{{if .Guests}}{{range $i, $g := .Guests}}{{if $i}}, {{end}}{{$g}}{{end}}{{else}}-{{end}}</td></tr>
{{end}}
</table>

<h2>Timeline</h2>
{{range .Timeline}}
<h3>{{.Title}}, {{.Date.Format "2 January 2006"}}</h3>
<table>
<tr><th>Time</th><th>Event</th><th>Location</th></tr>
{{range .Events}}
<tr><td>{{.StartTime}}</td><td>{{.Title}}</td><td>{{dash .Location}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>`))

// BuildEventSummaryHTML renders the printable event summary document. The
// caller serves it as-is; printing to PDF is the browser's job.
func BuildEventSummaryHTML(data EventSummaryData) (string, error) {
	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
