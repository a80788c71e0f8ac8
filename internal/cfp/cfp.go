package cfp

import "strconv"

// NotAvailable is the sentinel stored in any field whose source element is
// missing from the detail page. Extraction never leaves a field empty.
const NotAvailable = "N/A"

// ConferenceCFP holds the structured metadata extracted from one WikiCFP
// detail page. Fields default to NotAvailable and are immutable after
// extraction.
type ConferenceCFP struct {
	Title       string
	Acronym     string
	When        string
	Where       string
	Deadline    string
	Description string

	// SourceURL is the detail page the record was extracted from.
	// Carried for logging only; never persisted.
	SourceURL string
}

// NewConferenceCFP returns a ConferenceCFP with every empty field replaced
// by the NotAvailable sentinel.
func NewConferenceCFP(title, acronym, when, where, deadline, description, sourceURL string) ConferenceCFP {
	return ConferenceCFP{
		Title:       orNA(title),
		Acronym:     orNA(acronym),
		When:        orNA(when),
		Where:       orNA(where),
		Deadline:    orNA(deadline),
		Description: orNA(description),
		SourceURL:   sourceURL,
	}
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// MatchRecord is the flattened union of a conference's display fields with
// its relevance verdict. One is created only for conferences scoring above
// the acceptance threshold; the description never reaches the record.
type MatchRecord struct {
	Title         string
	Acronym       string
	When          string
	Where         string
	Deadline      string
	Score         int
	Justification string
}

// Columns is the stable column order of the tabular output.
var Columns = []string{"Title", "Acronym", "When", "Where", "Deadline", "Score", "Justification"}

// Row returns the record's values in Columns order.
func (r MatchRecord) Row() []string {
	return []string{r.Title, r.Acronym, r.When, r.Where, r.Deadline, strconv.Itoa(r.Score), r.Justification}
}
