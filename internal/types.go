package internal

import "time"

// Row maps a reconciled header name to the raw cell text for one data row.
// Built once by the ingest layer and read-only afterwards.
type Row map[string]string

// HeaderPlan is the reconciled header layout shared by every Row of one input.
type HeaderPlan struct {
	Headers []string
	// Groups maps a super-header label to the column indices under it.
	// A column belongs to at most one group; labels repeat across columns.
	Groups map[string][]int
}

// Placeholder names forced onto the trailing three columns.
const (
	PlaceholderR1 = "R1"
	PlaceholderR2 = "R2"
	PlaceholderR3 = "R3"
)

type ContactTriple struct {
	Primary   *string
	WhatsApp  *string
	Alternate *string
}

type ParentInfo struct {
	Name    *string
	Contact *string
}

type CommentSplit struct {
	Tokens string
	Text   string
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type IDInvalidReason string

const (
	IDReasonEmpty       IDInvalidReason = "empty"
	IDReasonLength      IDInvalidReason = "length"
	IDReasonInvalidDate IDInvalidReason = "invalid_date"
	IDReasonChecksum    IDInvalidReason = "checksum"
)

// IDFacts holds everything derivable from a 13-digit SA identity number.
type IDFacts struct {
	DOB    *time.Time
	Age    *int
	Gender Gender
	Valid  bool
	Reason IDInvalidReason
}

type PersonalRow struct {
	StudentID        string
	IDNumber         string
	Name             string
	Surname          string
	DOB              string
	Age              string
	Gender           string
	Address          string
	PrimaryContact   string
	WhatsApp         string
	Alternative      string
	ParentName       string
	ParentContact    string
	ApplicantDetails string
	FamilyDetails    string
	IDDocument       string
	BankAccount      string
	SARSNumber       string
	LearnersLicence  string
	CommentText      string
	Photo            string
}

type SupportRow struct {
	StudentID         string
	IDNumber          string
	CareerOptions     string
	AcademicGrouping  string
	AcademicDetails1  string
	AcademicDetails2  string
	Support           string
	AdditionalSupport string
	CV                string
	StudyApplication  string
	W4ALCourse        string
	Skills            string
	WorkReadiness     string
	Pathways          string
	YearBeyond        string
	AbsentFromSchool  string
	AbsenteeRating    string
	WRRating          string
	WRRatingRoundup   string
}

type EngagementRow struct {
	StudentID      string
	IDNumber       string
	IntroSession   string
	InfoSession    string
	InfoFormRecv   string
	InfoFormRet    string
	MentorSession  string
	VisitsToOffice string
	CommWhatsApp   string
	CommFacebook   string
	Responses      string
	RatingRO       string
	Datapoints     string
	R1             string
	R2             string
	R3             string
}

// Tables carries the three output record sets for one run, positionally aligned.
type Tables struct {
	Personal   []PersonalRow
	Support    []SupportRow
	Engagement []EngagementRow
}
