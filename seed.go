package sitecore

// seedProjects returns the default portfolio case studies. The in-memory
// store inserts them at construction; the setup endpoint inserts them into
// the database when the portfolio is empty.
func seedProjects() []NewPortfolioProject {
	return []NewPortfolioProject{
		{
			Title:     "NexaPay Financial Suite",
			Industry:  "FinTech",
			Problem:   "A leading financial institution needed a modern mobile banking solution to compete with digital-first banks.",
			Solution:  "We developed a comprehensive mobile banking app with biometric authentication, real-time transactions, and AI-powered financial insights.",
			Outcome:   "300% increase in mobile transactions, 4.8 app store rating, 1M+ downloads in first year.",
			TechStack: []string{"React Native", "Node.js", "PostgreSQL", "AWS", "Plaid API"},
			Image:     "fintech",
			Featured:  true,
			Order:     1,
		},
		{
			Title:     "MediConnect Health Platform",
			Industry:  "Healthcare",
			Problem:   "A healthcare network struggled with patient engagement and appointment management across multiple facilities.",
			Solution:  "Built an integrated health platform with telemedicine, appointment scheduling, and secure patient portal.",
			Outcome:   "50% reduction in no-shows, 85% patient satisfaction score, seamless multi-facility coordination.",
			TechStack: []string{"Next.js", "TypeScript", "MongoDB", "WebRTC", "HIPAA Compliant"},
			Image:     "healthcare",
			Order:     2,
		},
		{
			Title:     "LuxeMarket Commerce",
			Industry:  "E-commerce",
			Problem:   "A luxury retail brand needed an online presence that matched their premium in-store experience.",
			Solution:  "Created a high-end e-commerce platform with 3D product visualization, AR try-on, and personalized recommendations.",
			Outcome:   "200% increase in online sales, 45% higher average order value, 60% return customer rate.",
			TechStack: []string{"React", "Three.js", "Shopify Plus", "AI Recommendations", "CDN"},
			Image:     "ecommerce",
			Order:     3,
		},
		{
			Title:     "FleetIQ Logistics",
			Industry:  "Logistics",
			Problem:   "A logistics company faced inefficiencies in route planning and fleet management across 500+ vehicles.",
			Solution:  "Developed an AI-powered fleet management system with predictive maintenance and dynamic route optimization.",
			Outcome:   "30% fuel savings, 40% reduction in delivery times, 99.5% on-time delivery rate.",
			TechStack: []string{"Python", "TensorFlow", "React", "IoT Sensors", "Google Maps API"},
			Image:     "logistics",
			Order:     4,
		},
		{
			Title:     "EduVerse Learning",
			Industry:  "EdTech",
			Problem:   "An educational institution needed to modernize their learning management and student engagement approach.",
			Solution:  "Built an immersive learning platform with gamification, adaptive learning paths, and real-time collaboration.",
			Outcome:   "40% improvement in course completion, 3x student engagement, adopted by 50+ institutions.",
			TechStack: []string{"Vue.js", "Node.js", "PostgreSQL", "WebSocket", "ML Algorithms"},
			Image:     "education",
			Order:     5,
		},
	}
}

// seedBlogPost returns the sample published post seeded into the in-memory store.
func seedBlogPost() NewBlogPost {
	return NewBlogPost{
		Title:     "Why Custom Software Beats Off-the-Shelf for Growing Businesses",
		Slug:      "custom-software-vs-off-the-shelf",
		Excerpt:   "Off-the-shelf tools get you started fast, but growing businesses hit their limits sooner than expected. Here is how to know when it is time to build.",
		Content:   "Every growing business reaches a point where spreadsheets and generic SaaS tools stop fitting the way it actually works. License costs climb with headcount, workflows bend around the tool instead of the other way round, and the data you need lives in five disconnected systems.\n\nCustom software flips that equation: the system models your process, integrates your data, and scales on your terms. In this post we walk through the signals that tell you it is time to invest, and how to scope a first build that pays for itself.",
		Author:    "Ventrox Team",
		Category:  "Engineering",
		Published: true,
	}
}
