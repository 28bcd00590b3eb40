package main

// Renders a sample CV through the real engine and sanity-checks the output:
//   go run ./cmd/renderdemo
// Requires a local Chrome; set CHROME_PATH if it is not on the default path.

import (
	"context"
	"log"
	"os"
	"strings"

	"cv-builder/internal/cvs"
	"cv-builder/internal/extract"
	"cv-builder/internal/render"
	"cv-builder/internal/shared/config"
)

func main() {
	cfg := config.Load()

	renderer, err := render.NewRenderer(render.NewChromeEngine(cfg.ChromePath))
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	doc := sampleCV()
	templateID := "template1"
	if len(os.Args) > 1 {
		templateID = os.Args[1]
	}

	artifact, err := renderer.Render(context.Background(), templateID, doc)
	if err != nil {
		log.Fatalf("render %s: %v", templateID, err)
	}

	if err := os.WriteFile(artifact.Filename, artifact.Data, 0o644); err != nil {
		log.Fatalf("write %s: %v", artifact.Filename, err)
	}
	log.Printf("wrote %s (%d bytes)", artifact.Filename, len(artifact.Data))

	text, err := extract.PDFText(artifact.Data)
	if err != nil {
		log.Fatalf("verify pdf: %v", err)
	}
	for _, want := range []string{"Engineer - Acme", "BSc - State U"} {
		if !strings.Contains(text, want) {
			log.Fatalf("verify pdf: missing %q in extracted text", want)
		}
	}
	log.Printf("pdf verified: sections present")
}

func sampleCV() cvs.CVDocument {
	return cvs.CVDocument{
		FirstName:   "Ana",
		LastName:    "Silva",
		Role:        "Engineer",
		Email:       "ana.silva@example.com",
		LinkedIn:    "https://linkedin.com/in/anasilva",
		Location:    "Luanda",
		Summary:     "Engenheira de software com dez anos de experiência.",
		Nationality: "Angolana",
		PhoneNumber: "+244 900 000 000",
		DateOfBirth: "1990-05-01",
		Gender:      "female",
		Skills:      []string{"Go", "Python", "Rust"},
		Experiences: []cvs.Experience{
			{
				CompanyName: "Acme",
				Title:       "Engineer",
				Duties:      []string{"Desenvolvimento backend", "Revisão de código"},
				StartDate:   "2020-01-01",
				Current:     true,
			},
		},
		Educations: []cvs.Education{
			{School: "State U", Degree: "BSc", YearOfCompletion: "2019"},
		},
		Languages: []cvs.Language{
			{Language: "Português", SpeakingLevel: "fluent", ReadingLevel: "fluent", WritingLevel: "fluent"},
			{Language: "Inglês", SpeakingLevel: "good", ReadingLevel: "good", WritingLevel: "basic"},
		},
		AdditionalInformation: []string{"Carta de condução categoria B"},
		References: []cvs.Reference{
			{Name: "João Santos", Position: "CTO, Acme", Phone: "+244 911 111 111"},
		},
	}
}
