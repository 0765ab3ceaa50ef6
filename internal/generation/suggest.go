package generation

import "strings"

const (
	minKeywordInput = 2
	maxKeywordHits  = 5
)

var suggestionKeywords = []string{
	"Introduction to", "Overview of", "Benefits of", "Challenges in", "Best practices for",
	"How to implement", "Step-by-step guide to", "Common mistakes in", "Future trends in", "Case study:",
	"Comparison between", "Tools and resources for", "Getting started with", "Advanced techniques in", "Troubleshooting",
	"Performance optimization", "Security considerations", "Cost analysis of", "ROI of", "Implementation strategy",
	"Key features of", "Pros and cons of", "Market analysis", "User experience", "Technical requirements",
	"Integration with", "Scalability of", "Maintenance of", "Training and support", "Migration to",
	"Monitoring and analytics", "Backup and recovery", "Compliance and regulations", "Industry standards", "Emerging technologies",
	"Digital transformation", "Cloud computing", "Artificial intelligence", "Machine learning", "Data analytics",
	"Cybersecurity", "Mobile development", "Web development", "DevOps practices", "Agile methodology",
	"Project management", "Team collaboration", "Remote work strategies", "Customer engagement", "Brand building",
	"Content marketing", "Social media strategy", "Email marketing", "SEO optimization", "Conversion optimization",
	"User acquisition", "Customer retention", "Market research", "Competitive analysis",
}

var trendingTopics = []string{
	"AI & Machine Learning",
	"Web Development",
	"Digital Marketing",
	"Remote Work",
	"Tech Trends",
}

// SuggestKeywords filters the built-in phrase list by case-insensitive
// substring, keeping list order and at most five hits.
func SuggestKeywords(input string) []string {
	if len([]rune(input)) < minKeywordInput {
		return nil
	}
	needle := strings.ToLower(input)
	var out []string
	for _, k := range suggestionKeywords {
		if strings.Contains(strings.ToLower(k), needle) {
			out = append(out, k)
			if len(out) == maxKeywordHits {
				break
			}
		}
	}
	return out
}

func TrendingTopics() []string {
	return append([]string(nil), trendingTopics...)
}
