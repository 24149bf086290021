package merge

import "github.com/KingSharif1/resume-sub000/internal/types"

// BuildRMS reshapes a merged profile into the standardized output format.
// This is a pure transformation; no extraction or normalization happens
// here. Section slices are always non-nil so the JSON output carries empty
// arrays rather than null.
func BuildRMS(p *types.Profile) *types.RMSProfile {
	rms := &types.RMSProfile{
		Personal: types.RMSPersonal{
			Name: types.RMSName{
				First:  p.Contact.FirstName,
				Middle: p.Contact.MiddleName,
				Last:   p.Contact.LastName,
			},
			Contact: types.RMSContact{
				Email:    p.Contact.Email,
				Phone:    p.Contact.Phone,
				LinkedIn: p.Contact.LinkedIn,
				GitHub:   p.Contact.GitHub,
				Website:  p.Contact.Website,
			},
			Location: p.Contact.Location,
			Summary:  p.Summary,
		},
		Professional: types.RMSProfessional{
			Experience:     make([]types.RMSExperience, 0, len(p.Experience)),
			Education:      make([]types.RMSEducation, 0, len(p.Education)),
			Projects:       make([]types.RMSProject, 0, len(p.Projects)),
			Certifications: make([]types.RMSCertification, 0, len(p.Certifications)),
			Skills:         p.Skills,
		},
	}
	if rms.Professional.Skills == nil {
		rms.Professional.Skills = map[string][]string{}
	}

	for _, e := range p.Experience {
		rms.Professional.Experience = append(rms.Professional.Experience, types.RMSExperience{
			Company:  e.Company,
			Position: e.Position,
			Location: e.Location,
			Dates: types.RMSDates{
				Start:   e.StartDate,
				End:     e.EndDate,
				Current: e.Current,
			},
			Description:  e.Description,
			Achievements: e.Achievements,
		})
	}

	for _, e := range p.Education {
		rms.Professional.Education = append(rms.Professional.Education, types.RMSEducation{
			Institution:  e.Institution,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			Location:     e.Location,
			Dates: types.RMSDates{
				Start: e.StartDate,
				End:   e.EndDate,
			},
			GPA: e.GPA,
		})
	}

	for _, pr := range p.Projects {
		rms.Professional.Projects = append(rms.Professional.Projects, types.RMSProject{
			Name:        pr.Name,
			Description: pr.Description,
			Dates: types.RMSDates{
				Start:   pr.StartDate,
				End:     pr.EndDate,
				Current: pr.Current,
			},
			Achievements: pr.Achievements,
			URL:          pr.URL,
		})
	}

	for _, c := range p.Certifications {
		rms.Professional.Certifications = append(rms.Professional.Certifications, types.RMSCertification{
			Name:   c.Name,
			Issuer: c.Issuer,
			Date:   c.Date,
		})
	}

	return rms
}
