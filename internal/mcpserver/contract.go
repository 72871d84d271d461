package mcpserver

// FormatContract describes the FXDA document-template JSON structure for
// LLM consumers working with the generation tools.
const FormatContract = `# FXDA Format Contract

FXDA is a JSON document-description format encoding pages, text content and
positioned form fields.

## Structure

` + "```" + `json
{
  "version": "1.0",
  "documentId": "fxda-<unique>",
  "documentName": "Non-Disclosure Agreement",
  "description": "AI-generated non-disclosure agreement",
  "category": "Legal",
  "pages": [
    {
      "pageNumber": 1,
      "width": 612,
      "height": 792,
      "content": "NON-DISCLOSURE AGREEMENT\n\n..."
    }
  ],
  "fields": [
    {
      "id": "party1_signature",
      "type": "signature",
      "name": "First Party Signature",
      "x": 50, "y": 610, "width": 200, "height": 50,
      "page": 1,
      "required": true,
      "party": 1
    }
  ],
  "metadata": {
    "createdAt": "2025-06-01T12:00:00Z",
    "createdBy": "AI Assistant",
    "templateType": "legal",
    "version": 1
  },
  "workflowPresetId": "nda-standard",
  "tags": ["nda", "confidential"]
}
` + "```" + `

## Rules

1. **Coordinates are page points** (72 per inch); the default page is US
   letter, 612x792. Fields must lie within their page's bounds.
2. **pageNumber values are 1-based and contiguous** across the pages array.
3. **Field ids are unique** within a document.
4. **Field types**: text, signature, date, checkbox, dropdown, initial,
   company. Dropdown fields carry an ordered "options" list.
5. **party** identifies the signing party (1, 2, 3, ...) that owns a field;
   global fields (for example the effective date) omit it.
6. **An empty "fields" array is valid** and means fields have not been
   requested yet; use the suggest_fields tool to populate it.
7. **category** is one of Legal, HR, Procurement, General.
8. **workflowPresetId** references the external preset catalog; use the
   list_workflow_presets tool for valid ids.
`
