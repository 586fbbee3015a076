package email

// PreviewData holds sample values for rendering each template locally
// with `salon email preview`.
var PreviewData = map[Template]map[string]string{
	TemplateContactNotification: {
		"MessageID":  "3f2a3c1e-5b7d-4f0a-9c2e-1a2b3c4d5e6f",
		"Name":       "Ayşe Yılmaz",
		"Email":      "ayse@example.com",
		"Message":    "Merhaba,\nCumartesi günü saç boyama için randevu almak istiyorum.",
		"ReceivedAt": "2026-03-01 10:30",
	},
}

// Preview renders name with its sample data.
func Preview(name Template) (string, error) {
	return Render(name, PreviewData[name])
}
