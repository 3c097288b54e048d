package advisor

import "github.com/hotgigs/careerassist/internal/model/profile"

// entry is one authored reply: the text block and its follow-up
// suggestions.
type entry struct {
	text        string
	suggestions []string
}

// content holds all authored assistant copy. Topic templates are shared
// between roles; the general fallback, starters and welcome line are
// role-specific.
type content struct {
	templates map[Topic]entry
	fallbacks map[profile.Role]entry
	starters  map[profile.Role][]string
	welcome   map[profile.Role]string
}

func (c *content) lookup(topic Topic, role profile.Role) entry {
	if !role.Valid() {
		role = profile.RoleJobSeeker
	}
	if topic != TopicGeneral {
		if e, ok := c.templates[topic]; ok {
			return e
		}
	}
	return c.fallbacks[role]
}

const resumeText = `I can definitely help with your resume! Here's what I can do:

• Analyze your resume against applicant tracking systems
• Replace weak phrasing with strong, quantified achievements
• Tailor your professional summary to the roles you're targeting
• Surface the skills recruiters in your field search for most

Upload your resume on the Resume page, or tell me about your experience and I'll help you structure it for maximum impact.`

const jobSearchText = `Good timing! I'm currently tracking {jobCount} open roles that could match a profile like yours. A few ways to narrow them down:

• Tell me your target title and preferred locations
• Set a salary range so the matches stay realistic
• Keep your skills list current, matching runs on it
• Turn on job alerts to hear about new postings first

Want me to run a match against your profile as it stands today?`

const interviewText = `Interview preparation is one of my favorite topics. Here's how to walk in confident:

• Research the company: product, customers and recent news
• Practice the STAR method for behavioral questions
• Prepare two or three thoughtful questions for your interviewer
• Rehearse out loud, ideally against the clock

I can generate practice questions for a specific role, or we can rehearse your answers together.`

const skillsText = `Investing in your skills is the fastest way to move your career forward. The most in-demand skills we're seeing across {year} postings:

• AI and machine learning fundamentals
• Cloud platforms such as AWS, Azure and GCP
• Data analysis and visualization
• Communication and cross-team leadership

Tell me your target role and I'll map the gap between your current skills and the postings you want.`

const sourcingText = `Let's find you stronger candidates, faster. There are {candidateCount} active candidates on the platform right now matching a typical search in your industry.

• Describe the role and its must-have skills to start a match run
• Use the skill filters to cut through noise early
• Reach out within two days of a profile going active
• Mention specifics from the profile, personalized outreach doubles reply rates

Tell me about the role you're hiring for and I'll draft a search.`

const jobSeekerFallbackText = `I'm here to help with every step of your job search! I can:

• Optimize your resume so it gets past automated filters
• Match you with roles that fit your skills and goals
• Prepare you for interviews, from screening calls to final rounds
• Recommend skills worth learning for your target role

What would you like to work on first?`

const recruiterFallbackText = `I'm here to make hiring easier! I can:

• Source candidates that match your role requirements
• Help you write job descriptions that attract the right people
• Suggest screening questions for your openings
• Share current market and salary insights

What are you working on today?`

const jobSeekerWelcome = `Hi {name}! I'm your AI Career Assistant. I can help you polish your resume, find jobs that match your skills, and get ready for interviews. What would you like to work on today?`

const recruiterWelcome = `Hi {name}! I'm your AI Career Assistant. I can help you source candidates, sharpen your job descriptions, and stay on top of the hiring market. What can I do for you today?`

func defaultContent() *content {
	return &content{
		templates: map[Topic]entry{
			TopicResume: {
				text: resumeText,
				suggestions: []string{
					"Analyze my current resume",
					"Help with professional summary",
					"Optimize for specific job",
					"Review skills section",
				},
			},
			TopicJobSearch: {
				text: jobSearchText,
				suggestions: []string{
					"Show jobs matching my profile",
					"Set up job alerts",
					"Remote opportunities only",
					"Improve my match score",
				},
			},
			TopicInterview: {
				text: interviewText,
				suggestions: []string{
					"Common interview questions",
					"Practice behavioral questions",
					"Technical interview tips",
					"Questions to ask the interviewer",
				},
			},
			TopicSkills: {
				text: skillsText,
				suggestions: []string{
					"Skills for my target role",
					"Free learning resources",
					"Certification recommendations",
					"Trending skills in tech",
				},
			},
			TopicSourcing: {
				text: sourcingText,
				suggestions: []string{
					"Search candidates by skills",
					"Write a better job description",
					"Improve outreach response rates",
					"Plan a screening process",
				},
			},
		},
		fallbacks: map[profile.Role]entry{
			profile.RoleJobSeeker: {
				text: jobSeekerFallbackText,
				suggestions: []string{
					"Help with my resume",
					"Find matching jobs",
					"Interview preparation",
					"Career advice",
				},
			},
			profile.RoleRecruiter: {
				text: recruiterFallbackText,
				suggestions: []string{
					"Find candidates",
					"Post a new job",
					"Screening tips",
					"Market insights",
				},
			},
		},
		starters: map[profile.Role][]string{
			profile.RoleJobSeeker: {
				"How do I improve my resume?",
				"Find jobs that match my skills",
				"Help me prepare for interviews",
				"What skills should I learn?",
			},
			profile.RoleRecruiter: {
				"Find candidates for my opening",
				"Write a better job description",
				"Tips for interviewing candidates",
				"Current hiring market trends",
			},
		},
		welcome: map[profile.Role]string{
			profile.RoleJobSeeker: jobSeekerWelcome,
			profile.RoleRecruiter: recruiterWelcome,
		},
	}
}
