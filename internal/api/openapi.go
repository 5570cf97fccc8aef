package api

import (
	"rukun/pkg/openapi"
)

// BuildSpec assembles the OpenAPI 3.1 document for the API module.
func BuildSpec(cfg openapi.Config, version, basePath string) *openapi.Spec {
	spec := openapi.NewSpec(cfg.Title, version)
	spec.SetDescription(cfg.Description)
	spec.AddServer(basePath)

	spec.Components.AddSchemas(domainSchemas())

	addCitizenPaths(spec)
	addFamilyPaths(spec)
	addTreasuryPaths(spec)
	addLetterPaths(spec)
	addDashboardPaths(spec)

	return spec
}

func domainSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Citizen": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                {Type: "string", Format: "uuid"},
				"nik":               {Type: "string", Description: "National identity number"},
				"name":              {Type: "string"},
				"pob":               {Type: "string", Description: "Place of birth"},
				"dob":               {Type: "string", Format: "date", Description: "Date of birth"},
				"gender":            {Type: "string", Enum: []any{"Laki-laki", "Perempuan"}},
				"religion":          {Type: "string"},
				"marital_status":    {Type: "string"},
				"occupation":        {Type: "string"},
				"address":           {Type: "string"},
				"is_head_of_family": {Type: "boolean"},
				"family_card_id":    {Type: "string", Format: "uuid"},
			},
			Required: []string{"nik", "name"},
		},
		"ExtractionResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status": {Type: "string", Enum: []any{"complete", "partial", "empty"}},
				"record": openapi.SchemaRef("Citizen"),
				"reason": {Type: "string", Enum: []any{"transport", "decode"}},
			},
			Required: []string{"status"},
		},
		"FamilyCard": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Format: "uuid"},
				"no_kk":     {Type: "string", Description: "Family card number"},
				"head_name": {Type: "string"},
				"address":   {Type: "string"},
				"rt":        {Type: "string"},
				"rw":        {Type: "string"},
			},
			Required: []string{"no_kk", "head_name"},
		},
		"Transaction": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"date":        {Type: "string", Format: "date"},
				"description": {Type: "string"},
				"amount":      {Type: "integer", Description: "Amount in whole rupiah"},
				"type":        {Type: "string", Enum: []any{"INCOME", "EXPENSE"}},
				"category":    {Type: "string"},
			},
			Required: []string{"date", "description", "amount", "type"},
		},
		"Summary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"balance":       {Type: "integer"},
				"total_income":  {Type: "integer"},
				"total_expense": {Type: "integer"},
			},
		},
		"Letter": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"type":       {Type: "string", Enum: []any{"Surat Pengantar", "Surat Keterangan Domisili", "Surat Keterangan Tidak Mampu", "Surat Kematian"}},
				"citizen_id": {Type: "string", Format: "uuid"},
				"date":       {Type: "string", Format: "date"},
				"purpose":    {Type: "string"},
				"content":    {Type: "string", Description: "Generated letter body; absent while pending"},
				"created_at": {Type: "string", Format: "date-time"},
			},
			Required: []string{"type", "citizen_id", "purpose"},
		},
		"Stats": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total_citizens":  {Type: "integer"},
				"male_count":      {Type: "integer"},
				"female_count":    {Type: "integer"},
				"family_count":    {Type: "integer"},
				"pending_letters": {Type: "integer"},
				"age_bands": {
					Type: "array",
					Items: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"name":  {Type: "string"},
							"value": {Type: "integer"},
						},
					},
				},
				"finance": openapi.SchemaRef("Summary"),
			},
		},
		"Insight": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"insight": {Type: "string", Description: "Generated commentary; a fixed fallback message when generation fails"},
			},
		},
		"ExtractRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"text": {Type: "string", Description: "Free-form citizen or KTP text"},
			},
			Required: []string{"text"},
		},
		"DraftRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"type":       {Type: "string", Enum: []any{"Surat Pengantar", "Surat Keterangan Domisili", "Surat Keterangan Tidak Mampu", "Surat Kematian"}},
				"citizen_id": {Type: "string", Format: "uuid"},
				"date":       {Type: "string", Format: "date"},
				"purpose":    {Type: "string"},
			},
			Required: []string{"type", "citizen_id", "purpose"},
		},
	}
}

func listParams() []*openapi.Parameter {
	return []*openapi.Parameter{
		openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
		openapi.QueryParam("page_size", "integer", "Results per page", false),
		openapi.QueryParam("search", "string", "Substring search", false),
		openapi.QueryParam("sort", "string", "Comma-separated sort fields; prefix with - for descending", false),
	}
}

func addCitizenPaths(spec *openapi.Spec) {
	tags := []string{"citizens"}

	spec.Paths["/citizens"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List citizens",
			Tags:       tags,
			Parameters: listParams(),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged citizens", "Citizen"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Register a citizen",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("Citizen", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Registered citizen", "Citizen"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/citizens/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a citizen",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Citizen ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Citizen", "Citizen"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary:     "Update a citizen",
			Tags:        tags,
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Citizen ID")},
			RequestBody: openapi.RequestBodyJSON("Citizen", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated citizen", "Citizen"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Remove a citizen",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Citizen ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Removed"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/citizens/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search citizens",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged citizens", "Citizen"),
			},
		},
	}

	spec.Paths["/citizens/extract"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Extract a citizen record from free-form text",
			Description: "Parses KTP or registration text through the model gateway. A result missing mandatory fields (name, NIK) is returned with status 422 so it can prefill a correction form.",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("ExtractRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Complete extraction", "ExtractionResult"),
				422: openapi.ResponseJSON("Partial or empty extraction", "ExtractionResult"),
			},
		},
	}
}

func addFamilyPaths(spec *openapi.Spec) {
	tags := []string{"families"}

	spec.Paths["/families"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List family cards",
			Tags:       tags,
			Parameters: listParams(),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged family cards", "FamilyCard"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Register a family card",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("FamilyCard", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Registered family card", "FamilyCard"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/families/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a family card",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Family card ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Family card", "FamilyCard"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Remove a family card",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Family card ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Removed; members are detached"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/families/{id}/members"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List family card members",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Family card ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Member citizens", "Citizen"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/families/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search family cards",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged family cards", "FamilyCard"),
			},
		},
	}
}

func addTreasuryPaths(spec *openapi.Spec) {
	tags := []string{"treasury"}

	spec.Paths["/treasury/transactions"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List transactions",
			Tags:       tags,
			Parameters: listParams(),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged transactions", "Transaction"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Record a transaction",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("Transaction", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Recorded transaction", "Transaction"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/treasury/transactions/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a transaction",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Transaction ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Transaction", "Transaction"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Remove a transaction",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Transaction ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Removed"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/treasury/transactions/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search transactions",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged transactions", "Transaction"),
			},
		},
	}

	spec.Paths["/treasury/summary"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Ledger totals",
			Tags:    tags,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Ledger summary", "Summary"),
			},
		},
	}

	spec.Paths["/treasury/insight"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate financial commentary",
			Description: "Builds a ledger snapshot (totals plus the five most recent transactions) and asks the model for a short evaluation. Always returns text; failures degrade to a fixed fallback message.",
			Tags:        tags,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Financial commentary", "Insight"),
			},
		},
	}
}

func addLetterPaths(spec *openapi.Spec) {
	tags := []string{"letters"}

	spec.Paths["/letters"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List letters",
			Tags:       tags,
			Parameters: listParams(),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged letters", "Letter"),
			},
		},
	}

	spec.Paths["/letters/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a letter",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Letter ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Letter", "Letter"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Remove a letter",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Letter ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Removed"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/letters/draft"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Draft a letter",
			Description: "Generates the letter body through the model gateway and stores the letter. If generation fails, the letter is stored without content and remains printable with a placeholder body.",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("DraftRequest", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Drafted letter", "Letter"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/letters/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search letters",
			Tags:        tags,
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paged letters", "Letter"),
			},
		},
	}

	spec.Paths["/letters/{id}/print"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Printable letter page",
			Tags:       tags,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Letter ID")},
			Responses: map[int]*openapi.Response{
				200: {Description: "HTML letter with letterhead and signature frame"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addDashboardPaths(spec *openapi.Spec) {
	tags := []string{"dashboard"}

	spec.Paths["/dashboard/stats"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Aggregated neighborhood profile",
			Tags:    tags,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Dashboard stats", "Stats"),
			},
		},
	}

	spec.Paths["/dashboard/insight"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate demographic commentary",
			Description: "Feeds the current stats to the model. Always returns text; failures degrade to a fixed fallback message.",
			Tags:        tags,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Demographic commentary", "Insight"),
			},
		},
	}
}
