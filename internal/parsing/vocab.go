package parsing

// Vocabulary tables for the heuristic extractors. Each table is hoisted
// here so the heuristic that consumes it can be unit-tested against it.

// summaryHeadings are headings that open a summary-like section.
var summaryHeadings = []string{
	"summary", "professional summary", "career summary", "executive summary",
	"profile", "professional profile", "objective", "career objective",
	"about", "about me",
}

// experienceHeadings are headings that open the work history section.
var experienceHeadings = []string{
	"experience", "work experience", "professional experience",
	"employment", "employment history", "work history", "career history",
	"relevant experience",
}

// educationHeadings are headings that open the education section.
var educationHeadings = []string{
	"education", "academic background", "academics", "qualifications",
	"education and training",
}

// projectHeadings are headings that open the projects section.
var projectHeadings = []string{
	"projects", "personal projects", "technical projects", "portfolio",
	"selected projects", "academic projects",
}

// certificationHeadings are headings that open the certifications section.
var certificationHeadings = []string{
	"certifications", "certificates", "licenses", "licenses and certifications",
	"certifications and licenses",
}

// skillHeadings are headings that open the skills section.
var skillHeadings = []string{
	"skills", "technical skills", "core competencies", "competencies",
	"technologies", "expertise", "tools",
}

// knownSectionHeadings is the union of every heading the section scanner
// recognizes; a line matching any of these terminates a capture.
var knownSectionHeadings = func() []string {
	groups := [][]string{
		summaryHeadings, experienceHeadings, educationHeadings,
		projectHeadings, certificationHeadings, skillHeadings,
		{"awards", "honors", "publications", "languages", "interests",
			"volunteer", "volunteering", "activities", "references", "leadership"},
	}
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}()

// positionKeywords identify a line as a job title inside an experience block.
var positionKeywords = []string{
	"engineer", "developer", "programmer", "architect", "manager", "director",
	"analyst", "consultant", "designer", "scientist", "specialist",
	"administrator", "coordinator", "lead", "intern", "associate", "officer",
	"technician", "researcher", "president", "founder",
}

// nameExclusionWords reject an ALL-CAPS two-token line as a candidate name
// when the second token is a title or filler word rather than a surname.
var nameExclusionWords = []string{
	"ENGINEER", "DEVELOPER", "PROGRAMMER", "ARCHITECT", "MANAGER", "ANALYST",
	"CONSULTANT", "DESIGNER", "SCIENTIST", "SPECIALIST", "SENIOR", "JUNIOR",
	"LEAD", "PRINCIPAL", "STAFF", "ASSOCIATION", "RESUME", "CURRICULUM",
	"VITAE", "SUMMARY", "PROFILE", "OBJECTIVE", "EXPERIENCE", "EDUCATION",
	"SKILLS", "PROFESSIONAL", "CERTIFIED",
}

// degreeKeywords start a new education entry when matched.
var degreeKeywords = []string{
	"bachelor", "master", "ph.d", "phd", "doctorate", "associate",
	"b.s.", "b.a.", "m.s.", "m.a.", "mba", "b.sc", "m.sc", "b.e.", "m.e.",
	"bs ", "ba ", "ms ", "ma ",
}

// schoolKeywords identify an institution line inside the education section.
var schoolKeywords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// technicalSkillVocab is the fixed technical-skill vocabulary for the
// pattern fallback. Order here is the output order.
var technicalSkillVocab = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#", "C",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "SQL", "HTML",
	"CSS", "React", "Angular", "Vue", "Node.js", "Express", "Django",
	"Flask", "Spring", "FastAPI", ".NET", "GraphQL", "REST",
}

// toolSkillVocab is the fixed tools vocabulary for the pattern fallback.
var toolSkillVocab = []string{
	"Git", "GitHub", "GitLab", "Docker", "Kubernetes", "Jenkins", "Terraform",
	"AWS", "Azure", "GCP", "Linux", "Jira", "Confluence", "PostgreSQL",
	"MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka", "RabbitMQ",
	"Tableau", "Excel", "Figma", "Postman",
}

// softSkillVocab is the fixed soft-skill vocabulary for the pattern fallback.
var softSkillVocab = []string{
	"Leadership", "Communication", "Teamwork", "Problem Solving",
	"Collaboration", "Time Management", "Critical Thinking", "Adaptability",
	"Mentoring", "Project Management", "Public Speaking", "Negotiation",
}

// knownLocations is the curated city+state list tried before the generic
// "City, ST" pattern.
var knownLocations = []string{
	"New York, NY", "San Francisco, CA", "Los Angeles, CA", "San Jose, CA",
	"San Diego, CA", "Seattle, WA", "Austin, TX", "Dallas, TX", "Houston, TX",
	"Chicago, IL", "Boston, MA", "Atlanta, GA", "Denver, CO", "Phoenix, AZ",
	"Portland, OR", "Philadelphia, PA", "Washington, DC", "Miami, FL",
	"Minneapolis, MN", "Charlotte, NC", "Raleigh, NC", "Nashville, TN",
	"Salt Lake City, UT", "Pittsburgh, PA", "Detroit, MI", "Columbus, OH",
}
