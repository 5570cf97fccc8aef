package genai

// Schema describes a structured-output constraint in the generateContent
// responseSchema format. Type names are uppercase per the wire contract.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

var citizenRecordSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"nik":           {Type: "STRING"},
		"name":          {Type: "STRING"},
		"pob":           {Type: "STRING", Description: "Tempat Lahir"},
		"dob":           {Type: "STRING", Description: "Tanggal Lahir (YYYY-MM-DD)"},
		"gender":        {Type: "STRING", Description: "Laki-laki atau Perempuan"},
		"religion":      {Type: "STRING"},
		"maritalStatus": {Type: "STRING"},
		"occupation":    {Type: "STRING"},
		"address":       {Type: "STRING"},
	},
	Required: []string{"nik", "name"},
}
