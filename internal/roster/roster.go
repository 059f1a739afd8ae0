// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster holds the dashboard's client roster as an immutable
// value: the records, which one is selected, the search text and the
// transient notice. Every transition returns a new State.
package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/parole-review/pkg/types"
)

// NoticeTTL is how long a notice stays visible.
const NoticeTTL = 3 * time.Second

const (
	StatusActive  = "active"
	StatusPending = "pending"

	notAvailable = "N/A"
)

// ErrUnknownClient is returned when selecting an id that is not in the
// roster.
var ErrUnknownClient = errors.New("unknown client")

// Notice is a message that clears itself once Expires has passed.
type Notice struct {
	Message string
	Expires time.Time
}

// State is one snapshot of the roster. Records are ordered newest first.
// The zero State is an empty roster with nothing selected.
type State struct {
	records  []types.ClientRecord
	selected int
	search   string
	notice   Notice
}

// New returns a State holding a copy of records with the first one
// selected.
func New(records []types.ClientRecord) State {
	s := State{records: append([]types.ClientRecord(nil), records...)}
	if len(s.records) > 0 {
		s.selected = s.records[0].ID
	}
	return s
}

// Len returns the number of records.
func (s State) Len() int { return len(s.records) }

// Records returns a copy of the records, newest first.
func (s State) Records() []types.ClientRecord {
	return append([]types.ClientRecord(nil), s.records...)
}

// Record returns the record with the given id.
func (s State) Record(id int) (types.ClientRecord, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return types.ClientRecord{}, false
}

// Selected returns the selected record. It reports false only when the
// roster is empty.
func (s State) Selected() (types.ClientRecord, bool) {
	return s.Record(s.selected)
}

// Select makes id the selected record. Unknown ids leave the selection
// unchanged and return ErrUnknownClient.
func (s State) Select(id int) (State, error) {
	if _, ok := s.Record(id); !ok {
		return s, fmt.Errorf("%w: %d", ErrUnknownClient, id)
	}
	s.selected = id
	return s, nil
}

// Search returns the current search text.
func (s State) Search() string { return s.search }

// WithSearch replaces the search text. Records and selection are kept.
func (s State) WithSearch(text string) State {
	s.search = text
	return s
}

// WithUpload turns a service response into a new record, prepends it
// and selects it. The record's id is one more than the largest id in the
// roster, or 1 for an empty roster. Missing identity fields get
// placeholder values. The returned State carries a notice naming the
// processed file.
func (s State) WithUpload(resp types.ParoleSummaryResponse, now time.Time) (State, types.ClientRecord) {
	demo := resp.Demographics
	ci := &demo.ClientInfo
	if strings.TrimSpace(ci.Name) == "" {
		ci.Name = "Client from " + resp.Filename
	}
	ci.CDCRNumber = orNotAvailable(ci.CDCRNumber)
	ci.DateOfBirth = orNotAvailable(ci.DateOfBirth)
	ci.ContactInfo = orNotAvailable(ci.ContactInfo)

	r := types.ClientRecord{
		ID:                  NextID(s.records),
		Filename:            resp.Filename,
		FileSize:            resp.FileSize,
		ExtractedTextLength: resp.ExtractedTextLength,
		MarkdownSummary:     resp.MarkdownSummary,
		Demographics:        demo,
		SummaryType:         resp.SummaryType,
	}

	records := make([]types.ClientRecord, 0, len(s.records)+1)
	records = append(records, r)
	records = append(records, s.records...)

	s.records = records
	s.selected = r.ID
	return s.WithNotice("Successfully processed "+resp.Filename, now), r
}

// WithNotice shows msg until NoticeTTL after now.
func (s State) WithNotice(msg string, now time.Time) State {
	s.notice = Notice{Message: msg, Expires: now.Add(NoticeTTL)}
	return s
}

// Notice returns the notice message if it has not expired at now.
func (s State) Notice(now time.Time) (string, bool) {
	if s.notice.Message == "" || !now.Before(s.notice.Expires) {
		return "", false
	}
	return s.notice.Message, true
}

// Sidebar returns the sidebar rows for records matching the search text,
// in roster order.
func (s State) Sidebar() []types.SidebarClient {
	var rows []types.SidebarClient
	for _, r := range s.records {
		c := Project(r)
		if Matches(c, s.search) {
			rows = append(rows, c)
		}
	}
	return rows
}

// Project derives the sidebar row of a record.
func Project(r types.ClientRecord) types.SidebarClient {
	ci := r.Demographics.ClientInfo
	status := StatusPending
	if strings.TrimSpace(r.MarkdownSummary) != "" {
		status = StatusActive
	}
	return types.SidebarClient{
		ID:          r.ID,
		Name:        ci.Name,
		Initials:    Initials(ci.Name),
		CDCRNumber:  ci.CDCRNumber,
		DateOfBirth: ci.DateOfBirth,
		Contact:     ci.ContactInfo,
		Status:      status,
	}
}

// Matches reports whether query is a case-insensitive substring of the
// client's name, CDCR number or initials. An empty query matches every
// client.
func Matches(c types.SidebarClient, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{c.Name, c.CDCRNumber, c.Initials} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Initials returns the upper-cased first letters of the first two words
// of name.
func Initials(name string) string {
	var b strings.Builder
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	for _, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// NextID returns one more than the largest id in records, or 1 when
// records is empty.
func NextID(records []types.ClientRecord) int {
	highest := 0
	for _, r := range records {
		if r.ID > highest {
			highest = r.ID
		}
	}
	return highest + 1
}

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}
