// Package catalog holds the read-only workflow preset catalog and the
// in-memory template registry.
package catalog

import "github.com/starford/fxda/internal/models"

// presets is the externally owned workflow catalog. The core only ever
// reads it; ids here are what the derivation engine suggests.
var presets = []models.WorkflowPreset{
	{
		ID:               "nda-standard",
		Name:             "Standard NDA Workflow",
		Description:      "Two-party mutual NDA with sequential signing and legal approval.",
		Parties:          2,
		SigningOrder:     "sequential",
		RequiresApproval: true,
		SecurityLevel:    "high",
		ReminderDays:     3,
		ExpirationDays:   30,
		Category:         "Legal",
	},
	{
		ID:               "hr-offer",
		Name:             "HR Offer Letter Workflow",
		Description:      "Candidate signs first, then the hiring manager countersigns.",
		Parties:          2,
		SigningOrder:     "sequential",
		RequiresApproval: true,
		SecurityLevel:    "standard",
		ReminderDays:     2,
		ExpirationDays:   14,
		Category:         "HR",
	},
	{
		ID:               "vendor-contract",
		Name:             "Vendor Contract Workflow",
		Description:      "Procurement review followed by parallel vendor and buyer signatures.",
		Parties:          2,
		SigningOrder:     "parallel",
		RequiresApproval: true,
		SecurityLevel:    "enterprise",
		ReminderDays:     5,
		ExpirationDays:   60,
		Category:         "Procurement",
	},
	{
		ID:               "simple-agreement",
		Name:             "Simple Agreement Workflow",
		Description:      "Lightweight parallel signing with no approval step.",
		Parties:          2,
		SigningOrder:     "parallel",
		RequiresApproval: false,
		SecurityLevel:    "standard",
		ReminderDays:     7,
		ExpirationDays:   90,
		Category:         "General",
	},
}

// Presets returns a copy of the workflow preset catalog.
func Presets() []models.WorkflowPreset {
	out := make([]models.WorkflowPreset, len(presets))
	copy(out, presets)
	return out
}

// PresetByID looks up a preset by id.
func PresetByID(id string) (models.WorkflowPreset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return models.WorkflowPreset{}, false
}
