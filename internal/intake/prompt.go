package intake

const noticeSchema = `{
  "success": true,
  "extractedNotice": {
    "title": "System Update",
    "insights": "Apply patch before downtime",
    "deadline": "2025-09-25",
    "severity": "High",
    "authorizedBy": "CTO Office",
    "departments": ["Engineering", "Operations"]
  }
}`

const filePrompt = `We have departments Engineering, Design, Operations and Finance, and severity levels High, Medium and Low.
Extract the notice details from the attached document and generate JSON in the format:
` + noticeSchema + `
Use null for a missing deadline or authorizer. Departments must be taken from the list above.
Return only valid JSON. Do NOT include backticks, explanations, or markdown.`

const textPrompt = `We have departments Engineering, Design, Operations and Finance, and severity levels High, Medium and Low.
Extract the notice details from the text below and generate JSON in the format:
` + noticeSchema + `
Use null for a missing deadline or authorizer. Departments must be taken from the list above.
Return only valid JSON. Do NOT include backticks, explanations, or markdown.

Text:
`
