package parsing

import (
	"regexp"
	"strings"
)

// MinPhoneLength is the shortest digit run accepted as a phone number.
const MinPhoneLength = 10

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?[1-9]\d{0,15}`)
)

// Contact holds the section-independent fields of a resume.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// FieldExtractor picks contact details out of lines. The first value found
// for each field is kept.
type FieldExtractor struct {
	contact Contact
}

// SetName records the name unless one is already set.
func (f *FieldExtractor) SetName(line string) {
	if f.contact.Name == "" {
		f.contact.Name = line
	}
}

// HasName reports whether a name has been recorded.
func (f *FieldExtractor) HasName() bool {
	return f.contact.Name != ""
}

// Scan looks for an email and phone number in one line.
func (f *FieldExtractor) Scan(line string) {
	if f.contact.Email == "" {
		f.contact.Email = FindEmail(line)
	}
	if f.contact.Phone == "" {
		f.contact.Phone = FindPhone(line)
	}
}

// Contact returns the fields collected so far.
func (f *FieldExtractor) Contact() Contact {
	return f.contact
}

// FindEmail returns the first email-shaped token in line, or "".
func FindEmail(line string) string {
	if !strings.Contains(line, "@") || !strings.Contains(line, ".") {
		return ""
	}
	return emailPattern.FindString(line)
}

// FindPhone returns the first digit run of at least MinPhoneLength characters
// (a leading + counts), or "".
func FindPhone(line string) string {
	for _, match := range phonePattern.FindAllString(line, -1) {
		if len(match) >= MinPhoneLength {
			return match
		}
	}
	return ""
}
