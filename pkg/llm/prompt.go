package llm

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const fence = "```"

// systemPrompt frames every explanation request.
const systemPrompt = `You are a senior network analyst. Given raw netcat (nc) output, provide a concise,
useful explanation for a technical user. Focus on:
- What the output implies (e.g., service banners, protocol hints, open/closed behavior).
- Likely service and version (with uncertainty clearly stated).
- Common next steps to validate (safe/legit methods; no illegal activity).
- If output is empty or ambiguous, explain likely reasons (e.g., -z scans, filtered ports, TLS needed).
Keep it practical and brief unless details are significant.`

// userPromptTemplate embeds the command that ran, its exit code, and the
// captured output.
const userPromptTemplate = `Raw nc command:
` + fence + `
{{.Command}}
` + fence + `

Exit code: {{.ExitCode}}

Output (stdout and stderr combined):
` + fence + `
{{.Output}}
` + fence + `

Please explain what this likely means, including probable service/protocol inferences,
and recommended next steps to validate safely.
`

// RenderUserPrompt builds the user prompt for one netcat run. Blank output
// is rendered as "(empty)" so the model can tell silence from omission.
func RenderUserPrompt(req Request) (string, error) {
	data := req
	if strings.TrimSpace(data.Output) == "" {
		data.Output = "(empty)"
	}

	tmpl, err := template.New("explain").Parse(userPromptTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt template: %w", err)
	}

	var prompt bytes.Buffer
	if err := tmpl.Execute(&prompt, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return prompt.String(), nil
}
