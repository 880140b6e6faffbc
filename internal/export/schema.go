package export

import "cohortsplit/internal"

// Output field names follow the downstream consumers' expectations; the
// Student_ID and ID_Number columns are the cross-table join keys.

var personalHeader = []string{
	"Student_ID",
	"ID_Number",
	"Name",
	"Surname",
	"DOB (from SA ID)",
	"Age (from SA ID)",
	"Gender (from SA ID)",
	"Address",
	"Primary Contact",
	"WhatsApp",
	"Alternative",
	"Parent/Guardian Name",
	"Parent/Guardian Contact",
	"Applicant Details",
	"Family Details",
	"ID Document",
	"Bank Account",
	"SARS Number",
	"Learners / Licence",
	"Comment_Text",
	"Photo",
}

var supportHeader = []string{
	"Student_ID",
	"ID_Number",
	"Career Options/Study Details",
	"Academic Grouping",
	"Academic Details 1",
	"Academic Details 2",
	"Support",
	"Additional Support",
	"CV",
	"Study Application",
	"W4AL course",
	"Skills",
	"Work Readiness Criteria",
	"Pathways Recommendation",
	"YearBeyond Recommendation",
	"Absent from School",
	"Absentee rating",
	"School WR rating",
	"School WR rating roundup",
}

var engagementHeader = []string{
	"Student_ID",
	"ID_Number",
	"Intro Session attended",
	"Info session attended",
	"Info Form received",
	"Info Form returned",
	"Mentor session attended",
	"Visits to Office",
	"Communication WhatsApp",
	"Communication Facebook",
	"#responses",
	"ro",
	"Datapoints",
	"R1",
	"R2",
	"R3",
}

func personalRecords(rows []internal.PersonalRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.StudentID, r.IDNumber, r.Name, r.Surname,
			r.DOB, r.Age, r.Gender, r.Address,
			r.PrimaryContact, r.WhatsApp, r.Alternative,
			r.ParentName, r.ParentContact,
			r.ApplicantDetails, r.FamilyDetails, r.IDDocument,
			r.BankAccount, r.SARSNumber, r.LearnersLicence,
			r.CommentText, r.Photo,
		})
	}
	return out
}

func supportRecords(rows []internal.SupportRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.StudentID, r.IDNumber, r.CareerOptions, r.AcademicGrouping,
			r.AcademicDetails1, r.AcademicDetails2,
			r.Support, r.AdditionalSupport,
			r.CV, r.StudyApplication, r.W4ALCourse, r.Skills,
			r.WorkReadiness, r.Pathways, r.YearBeyond,
			r.AbsentFromSchool, r.AbsenteeRating, r.WRRating, r.WRRatingRoundup,
		})
	}
	return out
}

func engagementRecords(rows []internal.EngagementRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.StudentID, r.IDNumber,
			r.IntroSession, r.InfoSession, r.InfoFormRecv, r.InfoFormRet,
			r.MentorSession, r.VisitsToOffice,
			r.CommWhatsApp, r.CommFacebook, r.Responses,
			r.RatingRO, r.Datapoints,
			r.R1, r.R2, r.R3,
		})
	}
	return out
}
