// Package extras models the JSON side-documents stored in the `extras`
// text column of an Auftrag or Event. The documents exist so new fields
// never require a table migration; absent or malformed stored text is
// replaced by a fresh default document on the next save.
package extras

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChecklistItem is one SOP/MEP step.
type ChecklistItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}

// NewChecklistItem returns an open step with a fresh ID.
func NewChecklistItem(title string) ChecklistItem {
	return ChecklistItem{ID: uuid.NewString(), Title: title}
}

// LineItem is one production-list position of a job.
type LineItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Note   string `json:"note"`
}

// NewLineItem returns a line item with a fresh ID.
func NewLineItem(title, amount, unit, note string) LineItem {
	return LineItem{ID: uuid.NewString(), Title: title, Amount: amount, Unit: unit, Note: note}
}

// JobExtras is the per-Auftrag document. Field names are the wire
// format; rows written by older builds simply keep their defaults for
// keys they never stored.
type JobExtras struct {
	TrainingMode       bool            `json:"trainingMode"`
	Checklist          []ChecklistItem `json:"checklist"`
	PinnedProductIDs   []string        `json:"pinnedProductIDs"`
	PinnedLexikonCodes []string        `json:"pinnedLexikonCodes"`
	OrderNumber        string          `json:"orderNumber"`
	Station            string          `json:"station"`
	Deadline           *time.Time      `json:"deadline"`
	Persons            int             `json:"persons"`
	LineItems          []LineItem      `json:"lineItems"`
}

// EventExtras is the per-Event document. Kept as its own type: the
// event variant carries no line items or header metadata and the two
// documents are free to diverge further.
type EventExtras struct {
	Checklist          []ChecklistItem `json:"checklist"`
	PinnedProductIDs   []string        `json:"pinnedProductIDs"`
	PinnedLexikonCodes []string        `json:"pinnedLexikonCodes"`
}

// NewJobExtras returns the default job document. Training mode starts
// on; slices are non-nil so the encoded form is stable.
func NewJobExtras() JobExtras {
	return JobExtras{
		TrainingMode:       true,
		Checklist:          []ChecklistItem{},
		PinnedProductIDs:   []string{},
		PinnedLexikonCodes: []string{},
		LineItems:          []LineItem{},
	}
}

// NewEventExtras returns the default event document.
func NewEventExtras() EventExtras {
	return EventExtras{
		Checklist:          []ChecklistItem{},
		PinnedProductIDs:   []string{},
		PinnedLexikonCodes: []string{},
	}
}

// DecodeJobExtras parses stored extras text. Empty or malformed input
// yields a fresh default document, never an error: the next save then
// overwrites whatever was stored.
func DecodeJobExtras(raw string) JobExtras {
	doc := NewJobExtras()
	if strings.TrimSpace(raw) == "" {
		return doc
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return NewJobExtras()
	}
	normalizeJob(&doc)
	return doc
}

// DecodeEventExtras parses stored event extras text with the same
// parse-or-default policy as DecodeJobExtras.
func DecodeEventExtras(raw string) EventExtras {
	doc := NewEventExtras()
	if strings.TrimSpace(raw) == "" {
		return doc
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return NewEventExtras()
	}
	normalizeEvent(&doc)
	return doc
}

// EncodeJobExtras serializes the document for the extras column.
func EncodeJobExtras(doc JobExtras) (string, error) {
	normalizeJob(&doc)
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EncodeEventExtras serializes the event document.
func EncodeEventExtras(doc EventExtras) (string, error) {
	normalizeEvent(&doc)
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// normalizeJob keeps slices non-nil and persons non-negative so the
// round trip Decode(Encode(d)) == d holds for every in-system value.
func normalizeJob(doc *JobExtras) {
	if doc.Checklist == nil {
		doc.Checklist = []ChecklistItem{}
	}
	if doc.PinnedProductIDs == nil {
		doc.PinnedProductIDs = []string{}
	}
	if doc.PinnedLexikonCodes == nil {
		doc.PinnedLexikonCodes = []string{}
	}
	if doc.LineItems == nil {
		doc.LineItems = []LineItem{}
	}
	if doc.Persons < 0 {
		doc.Persons = 0
	}
}

func normalizeEvent(doc *EventExtras) {
	if doc.Checklist == nil {
		doc.Checklist = []ChecklistItem{}
	}
	if doc.PinnedProductIDs == nil {
		doc.PinnedProductIDs = []string{}
	}
	if doc.PinnedLexikonCodes == nil {
		doc.PinnedLexikonCodes = []string{}
	}
}
