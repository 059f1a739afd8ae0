// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/parole-review/pkg/types"
)

const (
	recordTitle    = "PAROLE HEARING CASE SUMMARY"
	rosterTitle    = "PAROLE HEARING CASES SUMMARY"
	generatedDate  = "1/2/2006"
	sectionSize    = 14
	detailIndent   = 5
	rosterCaseSize = 14
)

// RenderRecord lays out the single-case summary: header, client
// information, then the markdown narrative.
func RenderRecord(r types.ClientRecord, now time.Time) *Exporter {
	e := New(recordTitle + ": " + r.DisplayName())
	e.WriteRecord(r, now)
	return e
}

// WriteRecord appends the single-case summary at the cursor.
func (e *Exporter) WriteRecord(r types.ClientRecord, now time.Time) {
	ci := r.Demographics.ClientInfo

	e.AddTitle(recordTitle, 18)
	e.AddText("Generated: "+now.Format(generatedDate), 0, false)
	e.AddText("Source File: "+r.Filename, 0, false)
	e.AddSpacer(10)

	e.AddTitle("CLIENT INFORMATION", 16)
	e.AddKeyValue("Name", ci.Name, 0)
	e.AddKeyValue("CDCR Number", ci.CDCRNumber, 0)
	e.AddKeyValue("Date of Birth", ci.DateOfBirth, 0)
	e.AddKeyValue("Contact Info", ci.ContactInfo, 0)
	e.AddSpacer(15)

	e.AddMarkdown(r.MarkdownSummary)
}

// AddCaseDetails appends the structured case sections. Sections with no
// content are left out.
func (e *Exporter) AddCaseDetails(d types.Demographics) {
	e.section("INTRODUCTION", func() {
		e.AddText(strings.TrimSpace(d.Introduction.ShortSummary), 0, false)
	}, d.Introduction.ShortSummary)

	e.section("EVIDENCE USED TO CONVICT", func() {
		e.AddList(d.EvidenceUsedToConvict, 0)
	}, d.EvidenceUsedToConvict...)

	e.section("POTENTIAL THEORY", func() {
		e.AddText(strings.TrimSpace(d.PotentialTheory), 0, false)
	}, d.PotentialTheory)

	c := d.ConvictionInfo
	e.section("CONVICTION INFORMATION", func() {
		e.AddKeyValue("Date of Crime", c.DateOfCrime, 0)
		e.AddKeyValue("Location of Crime", c.LocationOfCrime, 0)
		e.AddKeyValue("Date of Arrest", c.DateOfArrest, 0)
		e.AddKeyValue("Charges", c.Charges, 0)
		e.AddKeyValue("Date of Conviction", c.DateOfConviction, 0)
		e.AddKeyValue("Sentence Length", c.SentenceLength, 0)
		e.AddKeyValue("County", c.County, 0)
		e.AddKeyValue("Trial or Plea", c.TrialOrPlea, 0)
	}, c.DateOfCrime, c.LocationOfCrime, c.DateOfArrest, c.Charges, c.DateOfConviction, c.SentenceLength, c.County, c.TrialOrPlea)

	a := d.AppealInfo
	e.section("APPEAL INFORMATION", func() {
		e.AddKeyValue("Direct Appeal Filed", a.DirectAppealFiled, 0)
		e.AddKeyValue("Appellate Court Case Number", a.AppellateCourtCaseNumber, 0)
		e.AddKeyValue("Date Decided", a.DateDecided, 0)
		e.AddKeyValue("Result", a.Result, 0)
		if hasText(a.HabeasFilings...) {
			e.AddText("Habeas Filings", 0, true)
			e.AddList(a.HabeasFilings, detailIndent)
		}
	}, append([]string{a.DirectAppealFiled, a.AppellateCourtCaseNumber, a.DateDecided, a.Result}, a.HabeasFilings...)...)

	e.addAttorneys(d.AttorneyInfo)

	e.section("NEW EVIDENCE", func() {
		e.AddList(d.NewEvidence, 0)
	}, d.NewEvidence...)

	e.section("CODEFENDANTS", func() {
		e.AddText(strings.TrimSpace(d.Codefendants), 0, false)
	}, d.Codefendants)

	p := d.PhysicalDescription
	e.section("PHYSICAL DESCRIPTION", func() {
		e.AddKeyValue("Height", p.Height, 0)
		e.AddKeyValue("Weight", p.Weight, 0)
		e.AddKeyValue("Race", p.Race, 0)
		e.AddKeyValue("Build", p.Build, 0)
		e.AddKeyValue("Distinguishing Marks", p.DistinguishingMarks, 0)
	}, p.Height, p.Weight, p.Race, p.Build, p.DistinguishingMarks)

	v := d.VictimInfo
	e.section("VICTIM INFORMATION", func() {
		e.AddKeyValue("Name", v.Name, 0)
		e.AddKeyValue("Relationship", v.Relationship, 0)
	}, v.Name, v.Relationship)

	pr := d.PrisonRecord
	e.section("PRISON RECORD", func() {
		e.AddKeyValue("Conduct", pr.Conduct, 0)
		e.AddKeyValue("Programming", pr.Programming, 0)
		e.AddKeyValue("Support", pr.Support, 0)
	}, pr.Conduct, pr.Programming, pr.Support)
}

func (e *Exporter) addAttorneys(info types.AttorneyInfo) {
	cur, trial, app := info.Current, info.Trial, info.Appellate

	var other []string
	for _, o := range info.Other {
		parts := []string{}
		for _, s := range []string{o.Name, o.Role, o.Organization, o.CaseNumber} {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		other = append(other, strings.Join(parts, ", "))
	}

	e.section("ATTORNEY INFORMATION", func() {
		if hasText(cur.Name, cur.Title, cur.Firm, cur.Address, cur.Phone, cur.Email, cur.RepresentationContext) {
			e.AddText("Current Attorney", 0, true)
			e.AddKeyValue("Name", cur.Name, detailIndent)
			e.AddKeyValue("Title", cur.Title, detailIndent)
			e.AddKeyValue("Firm", cur.Firm, detailIndent)
			e.AddKeyValue("Address", cur.Address, detailIndent)
			e.AddKeyValue("Phone", cur.Phone, detailIndent)
			e.AddKeyValue("Email", cur.Email, detailIndent)
			e.AddKeyValue("Present at Hearing", yesNo(cur.PresentAtHearing), detailIndent)
			e.AddKeyValue("Representation", cur.RepresentationContext, detailIndent)
		}
		if hasText(trial.Name, trial.Address, trial.Phone, trial.CaseNumber, trial.AppointedOrRetained) {
			e.AddText("Trial Attorney", 0, true)
			e.AddKeyValue("Name", trial.Name, detailIndent)
			e.AddKeyValue("Address", trial.Address, detailIndent)
			e.AddKeyValue("Phone", trial.Phone, detailIndent)
			e.AddKeyValue("Case Number", trial.CaseNumber, detailIndent)
			e.AddKeyValue("Appointed or Retained", trial.AppointedOrRetained, detailIndent)
		}
		if hasText(app.Name, app.Address, app.Phone, app.CaseNumbers, app.CourtLevel) {
			e.AddText("Appellate Attorney", 0, true)
			e.AddKeyValue("Name", app.Name, detailIndent)
			e.AddKeyValue("Address", app.Address, detailIndent)
			e.AddKeyValue("Phone", app.Phone, detailIndent)
			e.AddKeyValue("Case Numbers", app.CaseNumbers, detailIndent)
			e.AddKeyValue("Court Level", app.CourtLevel, detailIndent)
		}
		if hasText(other...) {
			e.AddText("Other Legal Representation", 0, true)
			e.AddList(other, detailIndent)
		}
	}, append([]string{
		cur.Name, cur.Title, cur.Firm, cur.Address, cur.Phone, cur.Email, cur.RepresentationContext,
		trial.Name, trial.Address, trial.Phone, trial.CaseNumber, trial.AppointedOrRetained,
		app.Name, app.Address, app.Phone, app.CaseNumbers, app.CourtLevel,
	}, other...)...)
}

// section places a subtitle and body when any of values has content.
func (e *Exporter) section(title string, body func(), values ...string) {
	if !hasText(values...) {
		return
	}
	e.AddSubtitle(title, sectionSize)
	body()
	e.AddSpacer(defaultBlockHeight)
}

// RenderAll lays out the roster summary: a cover block, then one page per
// case.
func RenderAll(records []types.ClientRecord, now time.Time) *Exporter {
	e := New(rosterTitle)
	e.AddTitle(rosterTitle, 20)
	e.AddText("Generated: "+now.Format(generatedDate), 0, false)
	e.AddText("Total Cases: "+strconv.Itoa(len(records)), 0, false)
	e.AddSpacer(15)

	for i, r := range records {
		d := r.Demographics
		e.AddTitle(fmt.Sprintf("CASE %d: %s", i+1, d.ClientInfo.Name), rosterCaseSize)
		e.AddKeyValue("CDCR Number", d.ClientInfo.CDCRNumber, 0)
		e.AddKeyValue("Charges", d.ConvictionInfo.Charges, 0)
		e.AddKeyValue("Sentence", d.ConvictionInfo.SentenceLength, 0)
		e.AddText(d.Introduction.ShortSummary, 0, false)
		e.AddSpacer(10)

		if i < len(records)-1 {
			e.newPage()
		}
	}
	return e
}

var unsafeName = regexp.MustCompile(`[\s/\\]+`)

// Filename is the download name of a single-case summary.
func Filename(name string, now time.Time) string {
	return fmt.Sprintf("parole_hearing_summary_%s_%d.pdf", unsafeName.ReplaceAllString(name, "_"), now.UnixMilli())
}

// AllFilename is the download name of the roster summary.
func AllFilename(now time.Time) string {
	return fmt.Sprintf("all_parole_cases_%d.pdf", now.UnixMilli())
}

func hasText(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
