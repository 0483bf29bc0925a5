package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Abdelrahman Negm", p.Profile().Name)
	assert.Len(t, p.Skills(), 14)
	require.Len(t, p.Projects(), 5)

	roze := p.Projects()[0]
	assert.Len(t, roze.Details, 8)
	require.IsType(t, StoreLinks{}, roze.Links)
	assert.Equal(t, []LinkKind{KindWebsite, KindAppStore, KindPlayStore}, kinds(roze.Buttons()))

	natgas := p.Projects()[1]
	assert.Equal(t, LabeledURL{Label: "Apple TestFlight", Href: "https://testflight.apple.com/join/6YQ4wEgF"}, natgas.Links)

	bus := p.Projects()[3]
	assert.Nil(t, bus.Links)
	assert.Empty(t, bus.Buttons())
	assert.Empty(t, bus.Details)
}

func kinds(bs []Button) []LinkKind {
	var out []LinkKind
	for _, b := range bs {
		out = append(out, b.Kind)
	}
	return out
}

func TestLoad_RejectsBothLinkShapes(t *testing.T) {
	doc := `
profile:
  name: Someone
projects:
  - name: Both
    links:
      website: https://example.com
    url:
      label: Store
      href: https://example.com/store
`
	_, err := Load(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrInvalidContent)
	assert.Contains(t, err.Error(), "both links and url")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "missing profile name", doc: "skills: [Go]\n", want: "profile name"},
		{name: "unknown field", doc: "profile:\n  name: A\n  nickname: B\n", want: "nickname"},
		{name: "project without name", doc: "profile:\n  name: A\nprojects:\n  - date: 2024\n", want: "name is required"},
		{name: "relative url", doc: "profile:\n  name: A\nprojects:\n  - name: P\n    url:\n      label: L\n      href: /local\n", want: "absolute"},
		{name: "url without label", doc: "profile:\n  name: A\nprojects:\n  - name: P\n    url:\n      href: https://x.io\n", want: "label"},
		{name: "duplicate", doc: "profile:\n  name: A\nprojects:\n  - name: P\n  - name: P\n", want: "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrInvalidContent)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_EmptyLinksMeansNone(t *testing.T) {
	p, err := Load(strings.NewReader("profile:\n  name: A\nprojects:\n  - name: P\n    links: {}\n"))
	require.NoError(t, err)
	assert.Nil(t, p.Projects()[0].Links)
}

func TestAccessorsReturnCopies(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	projects := p.Projects()
	projects[0].Details[0] = "mutated"
	projects[0].Name = "mutated"
	skills := p.Skills()
	skills[0] = "mutated"
	prof := p.Profile()
	prof.Socials[0].Label = "mutated"

	assert.Equal(t, "Used Bloc for state management", p.Projects()[0].Details[0])
	assert.Equal(t, "Roze Moon", p.Projects()[0].Name)
	assert.Equal(t, "Flutter", p.Skills()[0])
	assert.Equal(t, "LinkedIn", p.Profile().Socials[0].Label)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: File Person\n"), 0644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "File Person", p.Profile().Name)

	p, err = LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "Abdelrahman Negm", p.Profile().Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
