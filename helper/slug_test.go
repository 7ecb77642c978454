package helper

import (
	"testing"

	"wedding_planner/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueWebsiteSlug(t *testing.T) {
	db := setupSeatingDB(t)

	first := GenerateUniqueWebsiteSlug(db, "Emma & Liam 2026")
	assert.Equal(t, "emma-and-liam-2026", first)

	eventA := model.Event{Name: "A"}
	require.NoError(t, db.Create(&eventA).Error)
	require.NoError(t, db.Create(&model.WeddingWebsite{
		EventId: eventA.ID,
		Slug:    first,
		Title:   "Emma & Liam 2026",
	}).Error)

	second := GenerateUniqueWebsiteSlug(db, "Emma & Liam 2026")
	assert.Equal(t, "emma-and-liam-2026-1", second)
}
