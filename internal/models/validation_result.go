package models

// ValidationResult reports the outcome of validating a diff input text.
// Errors are fatal and block computation; warnings are advisory only.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AddError records a fatal validation failure and marks the result invalid.
func (vr *ValidationResult) AddError(msg string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, msg)
}

// AddWarning records a non-fatal advisory.
func (vr *ValidationResult) AddWarning(msg string) {
	vr.Warnings = append(vr.Warnings, msg)
}
