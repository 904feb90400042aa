package dto

// Shared shape for the four lookup tables (edu types, categories,
// levels, days): a single name column each.
type ReferenceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}
