package utils

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"wedding_planner/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGuestCSV(t *testing.T) {
	guests := []model.Guest{
		{
			FirstName:           "Alice",
			LastName:            "Nguyen",
			Email:               "alice@example.com",
			Side:                "partner1",
			RsvpStatus:          "accepted",
			PlusOne:             true,
			PlusOneName:         "Tom",
			DietaryRestrictions: "vegetarian",
		},
		{
			FirstName:  "Bob",
			RsvpStatus: "pending",
		},
	}

	doc, err := BuildGuestCSV(guests)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(doc)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "First Name", records[0][0])
	assert.Equal(t, "Notes", records[0][len(records[0])-1])

	assert.Equal(t, "Alice", records[1][0])
	assert.Equal(t, "yes", records[1][6])
	assert.Equal(t, "Tom", records[1][7])

	assert.Equal(t, "Bob", records[2][0])
	assert.Equal(t, "no", records[2][6])
}

func TestBuildGuestCSVEmpty(t *testing.T) {
	doc, err := BuildGuestCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(doc)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestBuildEventSummaryHTML(t *testing.T) {
	weddingDate := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	data := EventSummaryData{
		Event: model.Event{
			Name:         "Emma & Liam",
			WeddingDate:  &weddingDate,
			VenueName:    "Rosewood Manor",
			Partner1Name: "Emma",
			Partner2Name: "Liam",
		},
		Guests: []model.Guest{
			{FirstName: "Alice", LastName: "Nguyen", RsvpStatus: "accepted", Side: "partner1"},
		},
		MenuItems: []model.MenuItem{
			{Course: "main", Name: "Roast Chicken"},
		},
		Drinks: []model.Drink{
			{Name: "House Red", Category: "wine", Corkage: false},
			{Name: "Family Whisky", Category: "spirits", Corkage: true},
		},
		Seating: []SeatingSummaryRow{
			{TableName: "Table 1", SeatCount: 8, Occupied: 3, Guests: []string{"Alice Nguyen"}},
		},
		Timeline: []model.TimelineDay{
			{
				Date:  weddingDate,
				Title: "Wedding Day",
				Events: []model.TimelineEvent{
					{StartTime: "14:00", Title: "Ceremony", Location: "Garden"},
				},
			},
		},
	}

	html, err := BuildEventSummaryHTML(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Emma &amp; Liam")
	assert.Contains(t, html, "20 June 2026")
	assert.Contains(t, html, "Rosewood Manor")
	assert.Contains(t, html, "Alice Nguyen")
	assert.Contains(t, html, "Roast Chicken")
	assert.Contains(t, html, "3/8")
	assert.Contains(t, html, "client supplied")
	assert.Contains(t, html, "venue supplied")
	assert.Contains(t, html, "14:00")
	assert.Contains(t, html, "Ceremony")
}

func TestDash(t *testing.T) {
	assert.Equal(t, "-", dash(""))
	assert.Equal(t, "-", dash("   "))
	assert.Equal(t, "x", dash("x"))
}
