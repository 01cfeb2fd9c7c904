package enrich

import (
	"fmt"
	"unicode/utf8"
)

// DocumentInstruction is the fixed system instruction for document
// analysis. The response contract is a single strict JSON object.
const DocumentInstruction = `You are an expert medical AI assistant. Analyze the uploaded medical document.
Return a strict JSON object with the following structure:
{
    "doc_type": "prescription" | "lab_report" | "xray" | "wound" | "discharge_summary" | "other",
    "summary_short": ["bullet 1", "bullet 2", "bullet 3"],
    "summary_detailed": "A comprehensive paragraph explaining the clinical findings and significance.",
    "medicines": [
        {"name": "Drug Name", "dosage": "500mg", "frequency": "1-0-1", "duration": "5 days"}
    ],
    "lab_values": [
        {"name": "Test Name", "value": "120", "unit": "mg/dL", "flag": "High/Low/Normal"}
    ],
    "suggestions": ["suggestion 1", "suggestion 2"],
    "patient_name": "Name if found",
    "doctor_name": "Name if found",
    "date": "YYYY-MM-DD"
}
- If it is a prescription, list ALL medicines clearly.
- If it is a lab report, highlight any abnormal (High/Low) values.
- The 'suggestions' field should include recommended next steps, precautions, or specific drugs to ask a doctor about if appropriate.
Do not include markdown formatting like ` + "```json ... ```" + `. Just the raw JSON string.`

// DocumentPrompt builds the user prompt for document analysis from a
// bounded excerpt of the extracted text. The excerpt is cut on a rune
// boundary so multibyte text stays valid UTF-8.
func DocumentPrompt(text string, limit int) string {
	if limit > 0 && len(text) > limit {
		for limit > 0 && !utf8.RuneStart(text[limit]) {
			limit--
		}
		text = text[:limit]
	}
	return fmt.Sprintf("Analyze this medical document. Extracted text (if any): %s", text)
}
