package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

// BrochureComposer renders the project brochure template to HTML, ready
// for the PDF renderer.
type BrochureComposer struct {
	tmplPath string
}

func NewBrochureComposer() *BrochureComposer {
	return &BrochureComposer{tmplPath: filepath.Join("templates", "brochure.html")}
}

type brochureData struct {
	Project *entity.Project
	Plots   []*entity.Plot
}

func (c *BrochureComposer) Compose(project *entity.Project, plots []*entity.Plot) (string, error) {
	t, err := template.ParseFiles(c.tmplPath)
	if err != nil {
		return "", fmt.Errorf("reading brochure template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, brochureData{Project: project, Plots: plots}); err != nil {
		return "", fmt.Errorf("rendering brochure template: %w", err)
	}
	return buf.String(), nil
}
