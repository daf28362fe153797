package catalog

import "flowgenie-backend/internal/models"

// DemoExamples returns the scripts played by the use-case demo, in display order.
func DemoExamples() []models.DemoExample {
	examples := []models.DemoExample{
		{
			ID:           "twitter-spreadsheet",
			UserQuestion: "How do I post Tweets from a spreadsheet every hour?",
			AIResponse:   "Here's how to automate posting tweets from a spreadsheet every hour:",
			Steps: []models.Step{
				{Title: "Schedule Trigger:", Description: "Set up a Schedule node to run every hour"},
				{Title: "Google Sheets:", Description: "Connect to your spreadsheet and read rows"},
				{Title: "Twitter:", Description: "Configure the Twitter node to post tweets"},
				{Title: "Filter:", Description: "Add a filter to avoid reposting the same content"},
			},
			Payload: `{
  "nodes": [
    {
      "parameters": {
        "rule": { "interval": [{ "field": "hours", "minuteInterval": 1 }] }
      },
      "name": "Schedule Trigger",
      "type": "n8n-nodes-base.scheduleTrigger"
    },
    {
      "parameters": {
        "operation": "read",
        "sheetName": "Tweets"
      },
      "name": "Google Sheets"
    }
  ]
}`,
		},
		{
			ID:           "email-leads",
			UserQuestion: "Can you create a workflow that sends personalized emails to new leads from my CRM?",
			AIResponse:   "Here's how to set up automated personalized emails for new leads:",
			Steps: []models.Step{
				{Title: "Webhook Trigger:", Description: "Create a webhook to receive new lead notifications from your CRM"},
				{Title: "HTTP Request:", Description: "Fetch additional lead data from your CRM API if needed"},
				{Title: "Function Node:", Description: "Personalize email content based on lead information"},
				{Title: "Email Send:", Description: "Configure SMTP settings and send the personalized email"},
			},
			Payload: `{
  "nodes": [
    {
      "parameters": {
        "httpMethod": "POST",
        "path": "new-lead",
        "responseMode": "onReceived"
      },
      "name": "Webhook",
      "type": "n8n-nodes-base.webhook"
    },
    {
      "parameters": {
        "functionCode": "// Personalize email content"
      },
      "name": "Personalize Email"
    }
  ]
}`,
		},
		{
			ID:           "data-sync",
			UserQuestion: "How can I sync customer data between Shopify and my Airtable database?",
			AIResponse:   "Here's a workflow to synchronize customer data between Shopify and Airtable:",
			Steps: []models.Step{
				{Title: "Shopify Trigger:", Description: "Set up a webhook for new/updated customer events"},
				{Title: "Airtable Search:", Description: "Check if the customer already exists in Airtable"},
				{Title: "IF Node:", Description: "Create conditional paths for new vs. existing customers"},
				{Title: "Airtable Create/Update:", Description: "Add new records or update existing ones"},
			},
			Payload: `{
  "nodes": [
    {
      "parameters": {
        "authentication": "oAuth2",
        "resource": "customer",
        "operation": "getAll"
      },
      "name": "Shopify",
      "type": "n8n-nodes-base.shopify"
    },
    {
      "parameters": {
        "application": "airtable",
        "operation": "upsert",
        "baseId": "appXXXXXXXXXXXXXX"
      },
      "name": "Airtable"
    }
  ]
}`,
		},
		{
			ID:           "support-ticket",
			UserQuestion: "I need a workflow that creates Jira tickets from customer support emails",
			AIResponse:   "Here's how to automate creating Jira tickets from support emails:",
			Steps: []models.Step{
				{Title: "IMAP Email:", Description: "Monitor a support email inbox for new messages"},
				{Title: "Text Analysis:", Description: "Extract key information and categorize the issue"},
				{Title: "Jira Create:", Description: "Create a new ticket with appropriate priority and details"},
				{Title: "Email Reply:", Description: "Send an automated acknowledgment to the customer"},
			},
			Payload: `{
  "nodes": [
    {
      "parameters": {
        "authentication": "basicAuth",
        "mailbox": "INBOX",
        "action": "getAll"
      },
      "name": "IMAP Email",
      "type": "n8n-nodes-base.imapEmail"
    },
    {
      "parameters": {
        "authentication": "basicAuth",
        "projectKey": "SUPPORT",
        "issueTypeId": 10001
      },
      "name": "Jira",
      "type": "n8n-nodes-base.jira"
    }
  ]
}`,
		},
	}
	return examples
}
