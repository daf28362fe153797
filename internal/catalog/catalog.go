// Package catalog holds the fixed content the site plays back: demo scripts,
// canned assistant replies, prompts, testimonials and the seeded sidebar.
// Every accessor returns a fresh copy so callers can't mutate shared data.
package catalog

import "flowgenie-backend/internal/models"

// CannedResponses returns the assistant replies the chat simulator picks from.
func CannedResponses() []string {
	return []string{
		"I can help you create a workflow for that. Here's how you can approach it:\n\n1. First, you'll need to set up a trigger for your automation\n2. Then, connect to the relevant services\n3. Process the data using n8n's built-in functions\n4. Finally, set up the desired output action",
		"That's an interesting automation idea. Let me walk you through the steps:\n\n1. Start by choosing the right trigger event\n2. Connect to your data source\n3. Add transformation steps as needed\n4. Configure the final action to complete your workflow",
		"I'd be happy to help with that automation. Here's a step-by-step approach:\n\n1. Set up your initial trigger condition\n2. Connect to the necessary APIs or services\n3. Add logic nodes to handle your specific requirements\n4. Configure the output actions to complete your workflow",
		"Here's how you can build that automation in n8n:\n\n1. Begin with the appropriate trigger node\n2. Add HTTP Request nodes to connect to external services\n3. Use Function nodes to transform your data\n4. Finish with action nodes to execute the final steps",
	}
}

// ExamplePrompts returns the suggestions shown on an empty chat.
func ExamplePrompts() []models.ExamplePrompt {
	return []models.ExamplePrompt{
		{Icon: "sparkles", Text: "How do I create a workflow that posts to Twitter when I publish a blog?"},
		{Icon: "zap", Text: "Create an automation that sends welcome emails to new customers"},
		{Icon: "database", Text: "How can I sync data between Airtable and Google Sheets automatically?"},
		{Icon: "globe", Text: "Build a workflow that monitors website uptime and sends alerts"},
	}
}

// Testimonials returns the quotes cycled by the carousel.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Quote:  "FlowGenie saved me hours of work. I was able to create a complex email automation workflow in minutes!",
			Author: "Sarah Johnson",
			Role:   "Marketing Manager",
		},
		{
			Quote:  "As a non-technical founder, I never thought I could build automations myself. FlowGenie changed that completely.",
			Author: "Michael Chen",
			Role:   "Startup Founder",
		},
		{
			Quote:  "The JSON export feature is a game-changer. I can now create and share workflows with my team effortlessly.",
			Author: "Alex Rodriguez",
			Role:   "Operations Director",
		},
	}
}

// SeedConversations returns the sidebar entries present on a fresh start.
func SeedConversations() []models.Conversation {
	return []models.Conversation{
		{ID: "1", Name: "Email Automation", Active: true, Pinned: true},
		{ID: "2", Name: "Twitter Integration"},
		{ID: "3", Name: "CRM Data Sync"},
		{ID: "4", Name: "Website Monitoring"},
		{ID: "5", Name: "Lead Generation", Pinned: true},
	}
}
