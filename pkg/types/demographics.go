// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Demographics is the structured extraction of case facts returned by the
// summarization service. JSON keys match the service's camelCase names.
// All leaves are denormalized strings or string lists except
// PresentAtHearing.
type Demographics struct {
	ClientInfo            ClientInfo          `json:"clientInfo" yaml:"client_info"`
	Introduction          Introduction        `json:"introduction" yaml:"introduction"`
	EvidenceUsedToConvict []string            `json:"evidenceUsedToConvict" yaml:"evidence_used_to_convict"`
	PotentialTheory       string              `json:"potentialTheory" yaml:"potential_theory"`
	ConvictionInfo        ConvictionInfo      `json:"convictionInfo" yaml:"conviction_info"`
	AppealInfo            AppealInfo          `json:"appealInfo" yaml:"appeal_info"`
	AttorneyInfo          AttorneyInfo        `json:"attorneyInfo" yaml:"attorney_info"`
	NewEvidence           []string            `json:"newEvidence" yaml:"new_evidence"`
	Codefendants          string              `json:"codefendants" yaml:"codefendants"`
	PhysicalDescription   PhysicalDescription `json:"physicalDescription" yaml:"physical_description"`
	VictimInfo            VictimInfo          `json:"victimInfo" yaml:"victim_info"`
	PrisonRecord          PrisonRecord        `json:"prisonRecord" yaml:"prison_record"`
}

// ClientInfo identifies the incarcerated person.
type ClientInfo struct {
	Name        string `json:"name" yaml:"name"`
	CDCRNumber  string `json:"cdcrNumber" yaml:"cdcr_number"`
	DateOfBirth string `json:"dateOfBirth" yaml:"date_of_birth"`
	ContactInfo string `json:"contactInfo" yaml:"contact_info"`
}

// Introduction holds the case narrative.
type Introduction struct {
	ShortSummary string `json:"shortSummary" yaml:"short_summary"`
}

// ConvictionInfo holds the facts of the controlling conviction.
type ConvictionInfo struct {
	DateOfCrime      string `json:"dateOfCrime" yaml:"date_of_crime"`
	LocationOfCrime  string `json:"locationOfCrime" yaml:"location_of_crime"`
	DateOfArrest     string `json:"dateOfArrest" yaml:"date_of_arrest"`
	Charges          string `json:"charges" yaml:"charges"`
	DateOfConviction string `json:"dateOfConviction" yaml:"date_of_conviction"`
	SentenceLength   string `json:"sentenceLength" yaml:"sentence_length"`
	County           string `json:"county" yaml:"county"`
	TrialOrPlea      string `json:"trialOrPlea" yaml:"trial_or_plea"`
}

// AppealInfo holds direct appeal and habeas history.
type AppealInfo struct {
	DirectAppealFiled        string `json:"directAppealFiled" yaml:"direct_appeal_filed"`
	AppellateCourtCaseNumber string `json:"appellateCourtCaseNumber" yaml:"appellate_court_case_number"`
	DateDecided              string `json:"dateDecided" yaml:"date_decided"`
	Result                   string `json:"result" yaml:"result"`
	// HabeasFilings keeps the service's misspelled key.
	HabeasFilings []string `json:"habenasFilings" yaml:"habeas_filings"`
}

// AttorneyInfo lists every lawyer involved in the case.
type AttorneyInfo struct {
	Current   CurrentAttorney     `json:"currentAttorneyForIncarceratedPerson" yaml:"current"`
	Trial     TrialAttorney       `json:"trialAttorney" yaml:"trial"`
	Appellate AppellateAttorney   `json:"appellateAttorney" yaml:"appellate"`
	Other     []LegalRepresentant `json:"otherLegalRepresentation" yaml:"other"`
}

// CurrentAttorney represents the incarcerated person at the hearing.
type CurrentAttorney struct {
	Name                  string `json:"name" yaml:"name"`
	Title                 string `json:"title" yaml:"title"`
	Firm                  string `json:"firm" yaml:"firm"`
	Address               string `json:"address" yaml:"address"`
	Phone                 string `json:"phone" yaml:"phone"`
	Email                 string `json:"email" yaml:"email"`
	PresentAtHearing      bool   `json:"presentAtHearing" yaml:"present_at_hearing"`
	RepresentationContext string `json:"representationContext" yaml:"representation_context"`
}

// TrialAttorney handled the original trial or plea.
type TrialAttorney struct {
	Name                string `json:"name" yaml:"name"`
	Address             string `json:"address" yaml:"address"`
	Phone               string `json:"phone" yaml:"phone"`
	CaseNumber          string `json:"caseNumber" yaml:"case_number"`
	AppointedOrRetained string `json:"appointedOrRetained" yaml:"appointed_or_retained"`
}

// AppellateAttorney handled the appeal.
type AppellateAttorney struct {
	Name        string `json:"name" yaml:"name"`
	Address     string `json:"address" yaml:"address"`
	Phone       string `json:"phone" yaml:"phone"`
	CaseNumbers string `json:"caseNumbers" yaml:"case_numbers"`
	CourtLevel  string `json:"courtLevel" yaml:"court_level"`
}

// LegalRepresentant is any other counsel or advocate on the case.
type LegalRepresentant struct {
	Name         string `json:"name" yaml:"name"`
	Role         string `json:"role,omitempty" yaml:"role,omitempty"`
	CaseNumber   string `json:"caseNumber,omitempty" yaml:"case_number,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// PhysicalDescription describes the incarcerated person.
type PhysicalDescription struct {
	Height              string `json:"height" yaml:"height"`
	Weight              string `json:"weight" yaml:"weight"`
	Race                string `json:"race" yaml:"race"`
	Build               string `json:"build" yaml:"build"`
	DistinguishingMarks string `json:"distinguishingMarks" yaml:"distinguishing_marks"`
}

// VictimInfo names the victim and their relationship to the client.
type VictimInfo struct {
	Name         string `json:"name" yaml:"name"`
	Relationship string `json:"relationship" yaml:"relationship"`
}

// PrisonRecord summarizes conduct and rehabilitation while incarcerated.
type PrisonRecord struct {
	Conduct     string `json:"conduct" yaml:"conduct"`
	Programming string `json:"programming" yaml:"programming"`
	Support     string `json:"support" yaml:"support"`
}
