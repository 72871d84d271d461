package catalog

// sampleTemplates is the starter set a fresh server exposes before any
// user-saved templates exist. Ids are fixed so reseeding is harmless.
var sampleTemplates = []Entry{
	{
		ID:               "tpl-sample-nda",
		Name:             "Mutual Non-Disclosure Agreement",
		Description:      "Two-party mutual NDA with confidentiality clause and sequential signing.",
		Category:         "Legal",
		Tags:             []string{"nda", "confidential"},
		WorkflowPresetID: "nda-standard",
	},
	{
		ID:               "tpl-sample-offer",
		Name:             "Employment Offer Letter",
		Description:      "Standard offer letter countersigned by the hiring manager.",
		Category:         "HR",
		Tags:             []string{"offer", "employment"},
		WorkflowPresetID: "hr-offer",
	},
	{
		ID:               "tpl-sample-vendor",
		Name:             "Vendor Service Agreement",
		Description:      "Procurement-reviewed services contract with parallel signatures.",
		Category:         "Procurement",
		Tags:             []string{"vendor", "contract"},
		WorkflowPresetID: "vendor-contract",
	},
}

// SeedSamples inserts the starter templates into the registry. Entries that
// already exist under a sample id are left untouched.
func (r *Registry) SeedSamples() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for _, s := range sampleTemplates {
		if _, ok := r.entries[s.ID]; ok {
			continue
		}
		s.Version = 1
		s.CreatedAt = now
		s.UpdatedAt = now
		s.CreatedBy = "AI Assistant"
		s.Validated = true

		stored := s
		r.entries[stored.ID] = &stored
	}
}
