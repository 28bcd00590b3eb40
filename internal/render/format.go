package render

import (
	"html/template"

	"cv-builder/internal/cvs"
)

// Every template shares these mappings; they are injected once through the
// FuncMap instead of being re-implemented per template.

// LevelLabel maps a proficiency level to its display label.
func LevelLabel(level string) string {
	switch level {
	case cvs.LevelBasic:
		return "Básico"
	case cvs.LevelGood:
		return "Bom"
	default:
		return "Fluente"
	}
}

// GenderLabel maps a gender value to its display label.
func GenderLabel(gender string) string {
	switch gender {
	case "male":
		return "Masculino"
	case "female":
		return "Feminino"
	default:
		return "Outro"
	}
}

// FuncMap exposes the shared presentation mappings to templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"levelLabel":  LevelLabel,
		"genderLabel": GenderLabel,
	}
}
