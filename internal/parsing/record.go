package parsing

import (
	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/types"
)

// BuildRecord extracts a ResumeRecord from raw resume text. It is total:
// text without headers or contact details yields a record with empty fields.
// A nil lexicon selects lexicon.Default().
//
// The text is segmented with SegmentText and each segment is grouped with
// ExtractEntries. The first line of the leading NONE segment is the name;
// every other content line is scanned for contact details.
func BuildRecord(raw string, lex *lexicon.Lexicon) types.ResumeRecord {
	if lex == nil {
		lex = lexicon.Default()
	}

	record := types.NewResumeRecord()
	var fields FieldExtractor

	for _, seg := range SegmentText(raw, lex) {
		lines := seg.Lines
		if seg.Section == SectionNone && len(lines) > 0 && !fields.HasName() {
			fields.SetName(lines[0])
			lines = lines[1:]
		}
		for _, line := range lines {
			fields.Scan(line)
		}
		if seg.Section != SectionNone {
			appendEntries(&record, seg.Section, ExtractEntries(seg.Section, seg.Lines, lex))
		}
	}

	contact := fields.Contact()
	record.Name = contact.Name
	record.Email = contact.Email
	record.Phone = contact.Phone
	return record
}

func appendEntries(record *types.ResumeRecord, section Section, entries []string) {
	switch section {
	case SectionEducation:
		record.Education = append(record.Education, entries...)
	case SectionSkills:
		record.Skills = append(record.Skills, entries...)
	case SectionExperience:
		record.Experience = append(record.Experience, entries...)
	case SectionProjects:
		record.Projects = append(record.Projects, entries...)
	case SectionCertifications:
		record.Certifications = append(record.Certifications, entries...)
	}
}
