package tokenizer

import "encoding/json"

// textPart mirrors the slice of a generateContent part needed for counting.
// Non-text parts (inline data, file references) decode to an empty string and
// are skipped.
type textPart struct {
	Text string `json:"text"`
}

// partsHolder is any payload element carrying a parts array.
type partsHolder struct {
	Parts []textPart `json:"parts"`
}

// generatePayload mirrors the text-bearing fields of a generateContent body.
type generatePayload struct {
	Contents          []partsHolder `json:"contents"`
	SystemInstruction *partsHolder  `json:"systemInstruction"`
}

// ExtractTexts pulls the text parts out of a generateContent payload, in
// order: system instruction first, then contents. A payload that does not
// decode (or carries no text) yields nil.
func ExtractTexts(payload []byte) []string {
	var body generatePayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil
	}

	var texts []string
	appendParts := func(parts []textPart) {
		for _, p := range parts {
			if p.Text != "" {
				texts = append(texts, p.Text)
			}
		}
	}

	if body.SystemInstruction != nil {
		appendParts(body.SystemInstruction.Parts)
	}
	for _, content := range body.Contents {
		appendParts(content.Parts)
	}

	return texts
}
