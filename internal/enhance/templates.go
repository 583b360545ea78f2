package enhance

// Section names with dedicated enhancement behavior.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
)

const (
	defaultRole   = "professional"
	defaultDomain = "their field"

	// genericSuffix is appended to any section without templates.
	genericSuffix = " [AI Enhanced: This content has been optimized for better impact and clarity.]"
)

// Enumeration order matters: the first match wins.
var (
	roles   = []string{"developer", "engineer", "manager", "analyst", "designer", "consultant"}
	domains = []string{"technology", "software development", "data analysis", "project management", "business strategy"}
)

var summaryTemplates = []string{
	"Results-driven professional with proven expertise in {domain}. Demonstrated ability to lead cross-functional teams and drive strategic initiatives that deliver measurable business impact.",
	"Dynamic {role} with extensive experience in {domain}. Known for innovative problem-solving, exceptional leadership skills, and a track record of exceeding performance targets.",
	"Accomplished professional with deep expertise in {domain}. Combines technical excellence with strategic thinking to deliver solutions that drive organizational growth and efficiency.",
}

var experienceTemplates = []string{
	"• Spearheaded key initiatives that resulted in significant improvements to team productivity and project delivery timelines\n" +
		"• Collaborated with stakeholders across multiple departments to ensure alignment with business objectives\n" +
		"• Implemented best practices and mentored team members to enhance overall performance\n" +
		"• Delivered high-quality solutions while maintaining strict adherence to project deadlines and budget constraints",
	"• Led cross-functional teams to achieve project milestones and deliver exceptional results\n" +
		"• Developed and executed strategic plans that improved operational efficiency by measurable metrics\n" +
		"• Established strong relationships with clients and stakeholders to ensure project success\n" +
		"• Implemented innovative solutions that streamlined processes and reduced operational costs",
	"• Managed complex projects from conception to completion, ensuring all deliverables met quality standards\n" +
		"• Collaborated with diverse teams to solve challenging technical problems and implement scalable solutions\n" +
		"• Conducted thorough analysis and provided actionable insights that informed key business decisions\n" +
		"• Maintained detailed documentation and reporting to track progress and communicate with stakeholders",
}

var educationTemplates = []string{
	"• Completed comprehensive coursework in core areas including advanced topics relevant to the field\n" +
		"• Actively participated in academic projects and research initiatives\n" +
		"• Maintained strong academic performance while engaging in extracurricular activities\n" +
		"• Developed critical thinking and analytical skills through rigorous academic training",
	"• Specialized in relevant subject areas with focus on practical applications and industry trends\n" +
		"• Participated in collaborative projects that enhanced teamwork and communication skills\n" +
		"• Engaged with faculty and peers to expand knowledge and professional network\n" +
		"• Applied theoretical knowledge to real-world scenarios through internships and practical exercises",
	"• Pursued advanced studies in specialized areas with emphasis on innovation and problem-solving\n" +
		"• Contributed to academic community through participation in student organizations and initiatives\n" +
		"• Developed strong foundation in analytical thinking and research methodologies\n" +
		"• Maintained academic excellence while balancing multiple responsibilities and commitments",
}

// Templates returns a copy of the bullet or summary templates for section, or nil if the
// section has none. Summary templates still contain their {role} and {domain} placeholders.
func Templates(section string) []string {
	var src []string
	switch section {
	case SectionSummary:
		src = summaryTemplates
	case SectionExperience:
		src = experienceTemplates
	case SectionEducation:
		src = educationTemplates
	default:
		return nil
	}
	return append([]string(nil), src...)
}
