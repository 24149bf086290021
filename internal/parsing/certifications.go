package parsing

import (
	"regexp"
	"strings"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

// certDateRe finds an embedded date token on a certification line: a
// month-name date, numeric month/year, or bare year.
var certDateRe = regexp.MustCompile(`(?i)(?:` + monthAlt + `\.?,?\s+\d{4}|\d{1,2}/\d{4}|\b(?:19|20)\d{2}\b)`)

// ExtractCertifications treats each non-empty line of the certifications
// section as one listing. An embedded date token is stripped into the
// entry date; the remainder is the name. Issuer is left blank, it is
// rarely recoverable from a flat listing.
func ExtractCertifications(text string) []types.Certification {
	block := sectionBlock(text, certificationHeadings)
	if block == "" {
		return nil
	}

	var certs []types.Certification
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if item, ok := bulletText(line); ok {
			line = item
		}
		if line == "" {
			continue
		}

		var cert types.Certification
		if date := certDateRe.FindString(line); date != "" {
			cert.Date = strings.TrimSpace(date)
			line = strings.Replace(line, date, "", 1)
		}
		cert.Name = strings.Trim(strings.TrimSpace(line), ",|()–—- \t")
		if cert.Name == "" {
			continue
		}
		certs = append(certs, cert)
	}
	return certs
}
