package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidDocument(t *testing.T) {
	t.Parallel()

	doc, err := Load(writeTemp(t, `
template: business-card
brand_color: "#1e40af"
title: Acme Corp
contact:
  name: Jo Smith
  email: jo@acme.example
qr: https://acme.example
`))
	require.NoError(t, err)
	require.Equal(t, "business-card", doc.Template)
	require.Equal(t, 252.0, doc.Page.Width, "default trim applied")
	require.Equal(t, 144.0, doc.Page.Height)
}

func TestLoadRejectsBadColor(t *testing.T) {
	t.Parallel()

	_, err := Load(writeTemp(t, `
template: invoice
brand_color: navy-ish
`))
	require.Error(t, err)
}

func TestLoadRejectsMissingTemplate(t *testing.T) {
	t.Parallel()

	_, err := Load(writeTemp(t, `
brand_color: "#123456"
`))
	require.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeTemp(t, "template: [unclosed"))
	require.Error(t, err)
}

func TestApplyDefaultsUnknownTemplateFallsBackToA4(t *testing.T) {
	t.Parallel()

	doc := Document{Template: "poster", BrandColor: "#112233"}
	doc.ApplyDefaults()
	require.Equal(t, Page{Width: 595, Height: 842}, doc.Page)
}

func TestExplicitPageSurvivesDefaults(t *testing.T) {
	t.Parallel()

	doc := Document{Template: "business-card", Page: Page{Width: 100, Height: 50}}
	doc.ApplyDefaults()
	require.Equal(t, Page{Width: 100, Height: 50}, doc.Page)
}

func TestValidateTableSpec(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Template:   "invoice",
		BrandColor: "#1e40af",
		Table: &TableSpec{
			Columns: []TableColumn{{Label: "Item", Align: "sideways"}},
		},
	}
	require.Error(t, Validate(doc))

	doc.Table.Columns[0].Align = "right"
	require.NoError(t, Validate(doc))
}
