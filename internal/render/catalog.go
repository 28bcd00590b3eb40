package render

import "fmt"

// TemplateInfo describes one entry of the fixed template catalog.
type TemplateInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PreviewURL  string `json:"previewUrl"`
}

// catalogSize is fixed; template IDs are template1..template20.
const catalogSize = 20

var descriptions = [catalogSize]string{
	"Design clássico e profissional.",
	"Design moderno e criativo.",
	"Design minimalista e elegante.",
	"Design moderno e profissional.",
	"Design clássico e minimalista.",
	"Design criativo e moderno.",
	"Design profissional e elegante.",
	"Design moderno e minimalista.",
	"Design clássico e criativo.",
	"Design elegante e profissional.",
	"Design moderno e profissional.",
	"Design clássico e minimalista.",
	"Design criativo e moderno.",
	"Design profissional e elegante.",
	"Design moderno e minimalista.",
	"Design clássico e criativo.",
	"Design elegante e profissional.",
	"Design moderno e profissional.",
	"Design clássico e minimalista.",
	"Design criativo e moderno.",
}

// Catalog lists every available template in display order.
func Catalog() []TemplateInfo {
	out := make([]TemplateInfo, 0, catalogSize)
	for i := 0; i < catalogSize; i++ {
		id := fmt.Sprintf("template%d", i+1)
		out = append(out, TemplateInfo{
			ID:          id,
			Title:       fmt.Sprintf("Modelo %d", i+1),
			Description: descriptions[i],
			PreviewURL:  fmt.Sprintf("/images/%s.png", id),
		})
	}
	return out
}

// IsKnown reports whether id names a template in the catalog.
func IsKnown(id string) bool {
	for i := 1; i <= catalogSize; i++ {
		if id == fmt.Sprintf("template%d", i) {
			return true
		}
	}
	return false
}
