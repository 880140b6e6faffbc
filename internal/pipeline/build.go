package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"cohortsplit/internal"
	"cohortsplit/internal/extract"
	"cohortsplit/internal/identity"
)

type colRef struct {
	name string
	ok   bool
}

// Builder assembles the three output records for each input row. It owns the
// per-run identifier registry and the resolved column references.
type Builder struct {
	plan  internal.HeaderPlan
	res   *Resolver
	year  int
	today time.Time
	reg   *identity.Registry
	log   *zap.Logger

	missingIDs int

	id, name, surname, address, photo             colRef
	contact, parentDetails, comments              colRef
	applicant, family, idDoc, bank, sars, licence colRef
	career, academicGroup, academic1, academic2   colRef
	pathways, yearBeyond                          colRef
	cv, studyApp, w4al, skills                    colRef
	wrRating, wrRoundup, absent, absentee         colRef
	introSession, infoSession                     colRef
	infoFormRecv, infoFormRet, mentorSession      colRef
	visits, commWhatsApp, commFacebook, responses colRef
	r1, r2, r3                                    colRef
}

func NewBuilder(plan internal.HeaderPlan, year int, today time.Time, logger *zap.Logger) *Builder {
	b := &Builder{
		plan:  plan,
		res:   NewResolver(plan.Headers),
		year:  year,
		today: today,
		reg:   identity.NewRegistry(),
		log:   logger,
	}

	b.id = b.col("ID Number", "ID_Number", "ID No")
	if !b.id.ok {
		logger.Warn("could not find an 'ID Number' column; keying will be empty")
	}
	b.name = b.col("Name")
	b.surname = b.col("Surname")
	b.address = b.col("Address")
	b.photo = b.col("Photo")

	b.contact = b.col("Contact #", "Contact#", "Contact")
	b.parentDetails = b.col("Parent Details")
	b.comments = b.col("Comments")

	b.applicant = b.col("Applicant Details")
	b.family = b.col("Family Details")
	b.idDoc = b.col("ID")
	b.bank = b.col("Bank Account")
	b.sars = b.col("SARS Number")
	b.licence = b.col("Learners / Licence")

	b.career = b.col("Career Options")
	b.academicGroup = b.col("Academic Grouping")
	b.academic1, b.academic2 = b.unnamedPair()
	b.pathways = b.col("Pathways Recommendation")
	b.yearBeyond = b.col("YearBeyond Recommendation")

	b.cv = b.col("CV")
	b.studyApp = b.col("Study Application")
	b.w4al = b.col("W4AL course")
	b.skills = b.col("Skills")

	b.wrRating = b.col("School WR rating")
	b.wrRoundup = b.col("School WR rating roundup")
	b.absent = b.col("Absent from School")
	b.absentee = b.col("Absentee rating")

	b.introSession = b.col("Intro Session attended")
	b.infoSession = b.col("Info session attended")
	b.infoFormRecv = b.col("Info Form received")
	b.infoFormRet = b.col("Info Form returned")
	b.mentorSession = b.col("Mentor session attended")

	b.visits = b.col("Visits to Office")
	b.commWhatsApp = b.col("Communication WhatsApp")
	b.commFacebook = b.col("Communication Facebook")
	b.responses = b.col("#responses")

	b.r1 = b.placeholder(internal.PlaceholderR1)
	b.r2 = b.placeholder(internal.PlaceholderR2)
	b.r3 = b.placeholder(internal.PlaceholderR3)

	return b
}

func (b *Builder) col(names ...string) colRef {
	h, ok := b.res.First(names...)
	if !ok {
		b.log.Debug("column not found", zap.String("column", names[0]))
	}
	return colRef{name: h, ok: ok}
}

// unnamedPair picks up the two blank academic columns made unique by the
// header reconciler.
func (b *Builder) unnamedPair() (colRef, colRef) {
	u1, ok1 := b.res.Lookup("Unnamed")
	u2, ok2 := b.res.Lookup("Unnamed_2")
	if ok1 {
		return colRef{u1, true}, colRef{u2, ok2}
	}
	if ok2 {
		return colRef{u2, true}, colRef{}
	}
	return colRef{}, colRef{}
}

func (b *Builder) placeholder(name string) colRef {
	for _, h := range b.plan.Headers {
		if h == name {
			return colRef{name: name, ok: true}
		}
	}
	return colRef{}
}

func (b *Builder) cell(row internal.Row, ref colRef) string {
	if !ref.ok {
		return ""
	}
	return row[ref.name]
}

// MissingIDs reports how many appended rows had an empty ID number cell.
func (b *Builder) MissingIDs() int { return b.missingIDs }

var reIDDigits = regexp.MustCompile(`[^0-9]`)

// Append derives and appends the three aligned output records for one row.
func (b *Builder) Append(t *internal.Tables, row internal.Row, idx int) {
	idVal := strings.TrimSpace(b.cell(row, b.id))
	if idVal == "" {
		b.missingIDs++
	}

	name := b.cell(row, b.name)
	surname := b.cell(row, b.surname)
	studentID := b.reg.Assign(name, surname, b.year, idx)

	contacts := extract.Contacts(b.cell(row, b.contact))
	parent := extract.Parent(b.cell(row, b.parentDetails))

	commentsRaw := b.cell(row, b.comments)
	if !b.comments.ok {
		commentsRaw = GroupText(b.plan, row, "Comments")
	}
	comments := extract.SplitComments(commentsRaw)

	facts := extract.ParseNationalID(idVal, b.today)
	if idVal != "" && !facts.Valid {
		b.log.Warn("invalid national id",
			zap.String("id", reIDDigits.ReplaceAllString(idVal, "")),
			zap.String("reason", string(facts.Reason)),
			zap.String("name", strings.TrimSpace(name+" "+surname)))
	}

	dob, age := "", ""
	if facts.DOB != nil {
		dob = facts.DOB.Format("2006-01-02")
	}
	if facts.Age != nil {
		age = strconv.Itoa(*facts.Age)
	}

	t.Personal = append(t.Personal, internal.PersonalRow{
		StudentID:        studentID,
		IDNumber:         idVal,
		Name:             name,
		Surname:          surname,
		DOB:              dob,
		Age:              age,
		Gender:           string(facts.Gender),
		Address:          b.cell(row, b.address),
		PrimaryContact:   deref(contacts.Primary),
		WhatsApp:         deref(contacts.WhatsApp),
		Alternative:      deref(contacts.Alternate),
		ParentName:       deref(parent.Name),
		ParentContact:    deref(parent.Contact),
		ApplicantDetails: b.cell(row, b.applicant),
		FamilyDetails:    b.cell(row, b.family),
		IDDocument:       b.cell(row, b.idDoc),
		BankAccount:      b.cell(row, b.bank),
		SARSNumber:       dashNone(b.cell(row, b.sars)),
		LearnersLicence:  dashNone(b.cell(row, b.licence)),
		CommentText:      comments.Text,
		Photo:            b.cell(row, b.photo),
	})

	career := b.cell(row, b.career)
	if career == "" {
		career = GroupText(b.plan, row, "Study Details")
	}
	if career == "" {
		career = GroupText(b.plan, row, "Career Options")
	}

	wrSummary := b.cell(row, b.wrRoundup)
	if wrSummary == "" {
		wrSummary = b.cell(row, b.wrRating)
	}
	if wrSummary == "" {
		wrSummary = GroupText(b.plan, row, "Work Readiness Criteria")
	}

	t.Support = append(t.Support, internal.SupportRow{
		StudentID:         studentID,
		IDNumber:          idVal,
		CareerOptions:     career,
		AcademicGrouping:  b.cell(row, b.academicGroup),
		AcademicDetails1:  b.cell(row, b.academic1),
		AcademicDetails2:  b.cell(row, b.academic2),
		Support:           GroupText(b.plan, row, "Support"),
		AdditionalSupport: GroupText(b.plan, row, "Additional Support"),
		CV:                b.cell(row, b.cv),
		StudyApplication:  b.cell(row, b.studyApp),
		W4ALCourse:        b.cell(row, b.w4al),
		Skills:            b.cell(row, b.skills),
		WorkReadiness:     wrSummary,
		Pathways:          b.cell(row, b.pathways),
		YearBeyond:        b.cell(row, b.yearBeyond),
		AbsentFromSchool:  b.cell(row, b.absent),
		AbsenteeRating:    b.cell(row, b.absentee),
		WRRating:          b.cell(row, b.wrRating),
		WRRatingRoundup:   b.cell(row, b.wrRoundup),
	})

	t.Engagement = append(t.Engagement, internal.EngagementRow{
		StudentID:      studentID,
		IDNumber:       idVal,
		IntroSession:   b.cell(row, b.introSession),
		InfoSession:    b.cell(row, b.infoSession),
		InfoFormRecv:   b.cell(row, b.infoFormRecv),
		InfoFormRet:    b.cell(row, b.infoFormRet),
		MentorSession:  b.cell(row, b.mentorSession),
		VisitsToOffice: b.cell(row, b.visits),
		CommWhatsApp:   b.cell(row, b.commWhatsApp),
		CommFacebook:   b.cell(row, b.commFacebook),
		Responses:      b.cell(row, b.responses),
		RatingRO:       starsToNumber(row["ro"]),
		Datapoints:     row["Datapoints"],
		R1:             b.cell(row, b.r1),
		R2:             b.cell(row, b.r2),
		R3:             b.cell(row, b.r3),
	})
}

var reFirstDigits = regexp.MustCompile(`\d+`)

// starsToNumber reduces a star-rating cell to its first digit run, else a
// count of the rating glyph, else blank (covers N/A markers too).
func starsToNumber(val string) string {
	if val == "" {
		return ""
	}
	if m := reFirstDigits.FindString(val); m != "" {
		return m
	}
	if count := strings.Count(val, "★"); count > 0 {
		return strconv.Itoa(count)
	}
	return ""
}

// dashNone stores the literal "None" for a lone dash and passes everything
// else through untouched. Only the SARS-number and learners-licence fields
// use the dash as a "none" marker.
func dashNone(val string) string {
	if val == "-" {
		return "None"
	}
	return val
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
