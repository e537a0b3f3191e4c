// Package tips holds the static career-tip catalog served by the API.
// The dataset is compiled in; there is no persistence or mutation behind it.
package tips

import "jobhud/internal/domain/entity"

// Catalog returns the full career-tip dataset. The returned slice is a copy,
// so callers may reorder it freely.
func Catalog() []entity.CareerTip {
	out := make([]entity.CareerTip, len(careerTips))
	copy(out, careerTips)

	return out
}

var careerTips = []entity.CareerTip{
	{
		ID:       1,
		Title:    "Network Actively",
		Tip:      "80% of jobs are filled through networking. Attend industry events, connect on LinkedIn, and don't be afraid to reach out to professionals in your field.",
		Category: "networking",
		Icon:     "people",
	},
	{
		ID:       2,
		Title:    "Tailor Your Resume",
		Tip:      "Customize your resume for each job application. Use keywords from the job description to pass ATS systems and show you're the perfect fit.",
		Category: "resume",
		Icon:     "description",
	},
	{
		ID:       3,
		Title:    "Learn Continuously",
		Tip:      "Dedicate 30 minutes daily to learning new skills. Online courses, podcasts, and industry blogs can keep you competitive in the job market.",
		Category: "skills",
		Icon:     "school",
	},
	{
		ID:       4,
		Title:    "Follow Up",
		Tip:      "Always send a thank-you email within 24 hours after an interview. It shows professionalism and keeps you top of mind.",
		Category: "interview",
		Icon:     "email",
	},
	{
		ID:       5,
		Title:    "Build Your Brand",
		Tip:      "Your online presence matters. Keep your LinkedIn profile updated, share industry insights, and showcase your expertise through posts or articles.",
		Category: "branding",
		Icon:     "star",
	},
	{
		ID:       6,
		Title:    "Practice Interview Skills",
		Tip:      "Record yourself answering common interview questions. This helps you identify areas for improvement and build confidence.",
		Category: "interview",
		Icon:     "videocam",
	},
	{
		ID:       7,
		Title:    "Set Career Goals",
		Tip:      "Define clear short-term and long-term career goals. Write them down and review them monthly to stay focused and motivated.",
		Category: "motivation",
		Icon:     "flag",
	},
	{
		ID:       8,
		Title:    "Research Companies",
		Tip:      "Before applying, research the company culture, values, and recent news. This knowledge helps you stand out in interviews.",
		Category: "job_search",
		Icon:     "search",
	},
	{
		ID:       9,
		Title:    "Optimize LinkedIn",
		Tip:      "Use a professional photo, write a compelling headline, and get recommendations. A complete profile gets 21x more views.",
		Category: "networking",
		Icon:     "badge",
	},
	{
		ID:       10,
		Title:    "Stay Positive",
		Tip:      "Job searching can be tough. Celebrate small wins, maintain a routine, and remember that rejection is redirection to something better.",
		Category: "motivation",
		Icon:     "favorite",
	},
	{
		ID:       11,
		Title:    "Quantify Achievements",
		Tip:      "Use numbers in your resume: 'Increased sales by 30%' is more impactful than 'Improved sales performance'.",
		Category: "resume",
		Icon:     "trending_up",
	},
	{
		ID:       12,
		Title:    "Ask Smart Questions",
		Tip:      "Prepare thoughtful questions for your interviewer. It shows genuine interest and helps you evaluate if the role is right for you.",
		Category: "interview",
		Icon:     "help",
	},
	{
		ID:       13,
		Title:    "Build a Portfolio",
		Tip:      "Create a portfolio showcasing your best work. Whether it's projects, designs, or writing samples, visual proof speaks volumes.",
		Category: "skills",
		Icon:     "work",
	},
	{
		ID:       14,
		Title:    "Time Management",
		Tip:      "Treat job searching like a job. Set daily goals, schedule applications, and take breaks to avoid burnout.",
		Category: "job_search",
		Icon:     "schedule",
	},
	{
		ID:       15,
		Title:    "Seek Feedback",
		Tip:      "Ask for feedback after rejections. Many recruiters appreciate the initiative and their insights can help you improve.",
		Category: "job_search",
		Icon:     "feedback",
	},
	{
		ID:       16,
		Title:    "Dress for Success",
		Tip:      "First impressions matter. Dress professionally for interviews, even if it's virtual. It boosts your confidence too!",
		Category: "interview",
		Icon:     "checkroom",
	},
	{
		ID:       17,
		Title:    "Use Job Alerts",
		Tip:      "Set up job alerts on multiple platforms. Being among the first applicants significantly increases your chances.",
		Category: "job_search",
		Icon:     "notifications",
	},
	{
		ID:       18,
		Title:    "Develop Soft Skills",
		Tip:      "Communication, teamwork, and problem-solving are highly valued. Practice these skills in every interaction.",
		Category: "skills",
		Icon:     "psychology",
	},
	{
		ID:       19,
		Title:    "Stay Updated",
		Tip:      "Follow industry trends and news. Being knowledgeable about your field makes you a more attractive candidate.",
		Category: "skills",
		Icon:     "newspaper",
	},
	{
		ID:       20,
		Title:    "Believe in Yourself",
		Tip:      "You have unique skills and experiences. Confidence in your abilities will shine through in applications and interviews.",
		Category: "motivation",
		Icon:     "emoji_events",
	},
}
