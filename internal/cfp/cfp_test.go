package cfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConferenceCFPFillsSentinels(t *testing.T) {
	conf := NewConferenceCFP("", "", "", "", "", "", "http://example.com")

	assert.Equal(t, NotAvailable, conf.Title)
	assert.Equal(t, NotAvailable, conf.Acronym)
	assert.Equal(t, NotAvailable, conf.When)
	assert.Equal(t, NotAvailable, conf.Where)
	assert.Equal(t, NotAvailable, conf.Deadline)
	assert.Equal(t, NotAvailable, conf.Description)
	assert.Equal(t, "http://example.com", conf.SourceURL)
}

func TestNewConferenceCFPKeepsValues(t *testing.T) {
	conf := NewConferenceCFP("Title", "ACR", "June", "Lyon", "Jan 15", "Desc", "url")

	assert.Equal(t, "Title", conf.Title)
	assert.Equal(t, "ACR", conf.Acronym)
	assert.Equal(t, "June", conf.When)
	assert.Equal(t, "Lyon", conf.Where)
	assert.Equal(t, "Jan 15", conf.Deadline)
	assert.Equal(t, "Desc", conf.Description)
}

func TestMatchRecordRowFollowsColumnOrder(t *testing.T) {
	rec := MatchRecord{
		Title:         "T",
		Acronym:       "A",
		When:          "W",
		Where:         "L",
		Deadline:      "D",
		Score:         8,
		Justification: "J",
	}

	assert.Equal(t, []string{"T", "A", "W", "L", "D", "8", "J"}, rec.Row())
	assert.Len(t, rec.Row(), len(Columns))
}
