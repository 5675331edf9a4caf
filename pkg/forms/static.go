package forms

// Static field sets for each operation. These mirror what the host renders
// before any template is selected; the team -> workspace -> template cascade
// re-computes dynamic fields on every change.

// TeamField is the first field in the selection cascade.
func TeamField() CompiledField {
	return CompiledField{
		Key:                 "teamId",
		Label:               "Team",
		Type:                FieldTypeString,
		Required:            true,
		Dynamic:             "team_list.id.name",
		AltersDynamicFields: true,
		HelpText:            "Select a team from your Rynko account.",
	}
}

// WorkspaceField is the second field in the cascade, filtered by team.
func WorkspaceField() CompiledField {
	return CompiledField{
		Key:                 "workspaceId",
		Label:               "Workspace",
		Type:                FieldTypeString,
		Required:            true,
		Dynamic:             "workspace_list.id.name",
		AltersDynamicFields: true,
		HelpText:            "Select a workspace within the selected team.",
	}
}

func templateField(label, dynamic, helpText string) CompiledField {
	return CompiledField{
		Key:                 "templateId",
		Label:               label,
		Type:                FieldTypeString,
		Required:            true,
		Dynamic:             dynamic,
		AltersDynamicFields: true,
		HelpText:            helpText,
	}
}

func legacyVariablesField(example string) CompiledField {
	return CompiledField{
		Key:      "variables",
		Label:    "Template Variables (JSON - Legacy)",
		Type:     FieldTypeString,
		Required: false,
		HelpText: "JSON object with template variables. Use this for complex variables or if you prefer JSON format. Example: " +
			example + ". Note: Dynamic variable fields will appear above when you select a template.",
	}
}

func fileNameField(noun string) CompiledField {
	return CompiledField{
		Key:      "fileName",
		Label:    "File Name",
		Type:     FieldTypeString,
		Required: false,
		HelpText: "Custom file name for the generated " + noun + " (without extension). Default: template name.",
	}
}

func waitField(defaultValue, helpText string) CompiledField {
	return CompiledField{
		Key:      "waitForCompletion",
		Label:    "Wait for Completion",
		Type:     FieldTypeBoolean,
		Required: false,
		Default:  defaultValue,
		HelpText: helpText,
	}
}

// FormatField offers the output format choice on the generic generate
// action and on batch generation.
func FormatField() CompiledField {
	return CompiledField{
		Key:      "format",
		Label:    "Output Format",
		Type:     FieldTypeString,
		Required: true,
		Choices:  map[string]string{"pdf": "PDF", "excel": "Excel"},
		HelpText: "Choose the output format for the generated document.",
	}
}

// CommonDocumentFields are the static inputs shared by the generic
// generate-document action.
func CommonDocumentFields() []CompiledField {
	return []CompiledField{
		TeamField(),
		WorkspaceField(),
		templateField("Template", "template_list.id.name",
			"Select a template from the selected workspace."),
		legacyVariablesField(`{"customerName": "John", "invoiceNumber": "12345"}`),
		fileNameField("document"),
		waitField("true",
			"Wait for the document to be generated before continuing. If false, returns a job ID immediately."),
	}
}

// PDFFields are the static inputs for the PDF-only action.
func PDFFields() []CompiledField {
	return []CompiledField{
		TeamField(),
		WorkspaceField(),
		templateField("PDF Template", "template_list_pdf.id.name",
			"Select a PDF template from the selected workspace."),
		legacyVariablesField(`{"customerName": "John", "invoiceNumber": "12345"}`),
		fileNameField("PDF"),
		waitField("true", "Wait for the PDF to be generated before continuing."),
	}
}

// ExcelFields are the static inputs for the Excel-only action.
func ExcelFields() []CompiledField {
	return []CompiledField{
		TeamField(),
		WorkspaceField(),
		templateField("Excel Template", "template_list_excel.id.name",
			"Select an Excel template from the selected workspace."),
		legacyVariablesField(`{"customerName": "John", "items": [...]}`),
		fileNameField("Excel file"),
		waitField("true", "Wait for the Excel file to be generated before continuing."),
	}
}

// BatchFields are the static inputs for batch generation.
func BatchFields() []CompiledField {
	return []CompiledField{
		TeamField(),
		WorkspaceField(),
		templateField("Template", "template_list.id.name",
			"Select a template from the selected workspace."),
		FormatField(),
		{
			Key:      "documents",
			Label:    "Documents",
			Type:     FieldTypeString,
			Required: true,
			HelpText: `JSON array of document configurations. Each item should have "variables" and optionally "fileName". ` +
				`Example: [{"variables": {"name": "John"}, "fileName": "doc-1"}, {"variables": {"name": "Jane"}, "fileName": "doc-2"}]`,
		},
		waitField("false",
			"Wait for all documents to be generated. For large batches, set to false and use the Document Completed trigger instead."),
	}
}

// OutputField describes one mappable key of an operation's result.
type OutputField struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// DocumentOutputFields describe a document generation result.
func DocumentOutputFields() []OutputField {
	return []OutputField{
		{Key: "id", Label: "Job ID", Type: FieldTypeString},
		{Key: "status", Label: "Status", Type: FieldTypeString},
		{Key: "templateId", Label: "Template ID", Type: FieldTypeString},
		{Key: "templateName", Label: "Template Name", Type: FieldTypeString},
		{Key: "format", Label: "Format", Type: FieldTypeString},
		{Key: "fileName", Label: "File Name", Type: FieldTypeString},
		{Key: "downloadUrl", Label: "Download URL", Type: FieldTypeString},
		{Key: "fileSize", Label: "File Size (bytes)", Type: FieldTypeInteger},
		{Key: "createdAt", Label: "Created At", Type: FieldTypeDatetime},
		{Key: "completedAt", Label: "Completed At", Type: FieldTypeDatetime},
	}
}

// BatchOutputFields describe a batch generation result.
func BatchOutputFields() []OutputField {
	return []OutputField{
		{Key: "id", Label: "Batch ID", Type: FieldTypeString},
		{Key: "status", Label: "Status", Type: FieldTypeString},
		{Key: "templateId", Label: "Template ID", Type: FieldTypeString},
		{Key: "format", Label: "Format", Type: FieldTypeString},
		{Key: "totalDocuments", Label: "Total Documents", Type: FieldTypeInteger},
		{Key: "successCount", Label: "Success Count", Type: FieldTypeInteger},
		{Key: "failureCount", Label: "Failure Count", Type: FieldTypeInteger},
		{Key: "downloadUrl", Label: "Download URL (ZIP)", Type: FieldTypeString},
		{Key: "createdAt", Label: "Created At", Type: FieldTypeDatetime},
		{Key: "completedAt", Label: "Completed At", Type: FieldTypeDatetime},
	}
}
