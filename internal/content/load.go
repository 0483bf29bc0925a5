package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

var ErrInvalidContent = errors.New("invalid portfolio content")

type linkDoc struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type storeLinksDoc struct {
	Website   string `yaml:"website"`
	AppStore  string `yaml:"appStore"`
	PlayStore string `yaml:"playStore"`
}

type projectDoc struct {
	Name        string         `yaml:"name"`
	Date        string         `yaml:"date"`
	Description string         `yaml:"description"`
	Details     []string       `yaml:"details"`
	Image       string         `yaml:"image"`
	Links       *storeLinksDoc `yaml:"links"`
	URL         *linkDoc       `yaml:"url"`
}

type portfolioDoc struct {
	Profile struct {
		Name      string    `yaml:"name"`
		Title     string    `yaml:"title"`
		Email     string    `yaml:"email"`
		Phone     string    `yaml:"phone"`
		Location  string    `yaml:"location"`
		Avatar    string    `yaml:"avatar"`
		About     string    `yaml:"about"`
		Resume    linkDoc   `yaml:"resume"`
		WhatsApp  linkDoc   `yaml:"whatsapp"`
		Socials   []linkDoc `yaml:"socials"`
		Copyright string    `yaml:"copyright"`
	} `yaml:"profile"`
	Skills     []string `yaml:"skills"`
	Experience []struct {
		Title   string   `yaml:"title"`
		Company string   `yaml:"company"`
		Start   string   `yaml:"start"`
		End     string   `yaml:"end"`
		Bullets []string `yaml:"bullets"`
	} `yaml:"experience"`
	Featured struct {
		Name  string  `yaml:"name"`
		Image string  `yaml:"image"`
		Blurb string  `yaml:"blurb"`
		CTA   linkDoc `yaml:"cta"`
	} `yaml:"featured"`
	Projects []projectDoc `yaml:"projects"`
}

// Default returns the portfolio compiled into the binary.
func Default() (*Portfolio, error) {
	return Load(bytes.NewReader(defaultPortfolio))
}

// LoadFile reads a portfolio from path, or the built-in one when path is empty.
func LoadFile(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*Portfolio, error) {
	var doc portfolioDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if strings.TrimSpace(doc.Profile.Name) == "" {
		return nil, fmt.Errorf("%w: profile name is required", ErrInvalidContent)
	}

	p := &Portfolio{
		profile: Profile{
			Name:      doc.Profile.Name,
			Title:     doc.Profile.Title,
			Email:     doc.Profile.Email,
			Phone:     doc.Profile.Phone,
			Location:  doc.Profile.Location,
			Avatar:    doc.Profile.Avatar,
			About:     strings.TrimSpace(doc.Profile.About),
			Resume:    Link(doc.Profile.Resume),
			WhatsApp:  Link(doc.Profile.WhatsApp),
			Copyright: doc.Profile.Copyright,
		},
		skills: append([]string(nil), doc.Skills...),
		featured: Featured{
			Name:  doc.Featured.Name,
			Image: doc.Featured.Image,
			Blurb: strings.TrimSpace(doc.Featured.Blurb),
			CTA:   Link(doc.Featured.CTA),
		},
	}
	for _, s := range doc.Profile.Socials {
		if err := checkHref(s.Href); err != nil {
			return nil, fmt.Errorf("%w: social %q: %v", ErrInvalidContent, s.Label, err)
		}
		p.profile.Socials = append(p.profile.Socials, Link(s))
	}
	for _, j := range doc.Experience {
		p.experience = append(p.experience, Job{
			Title:   j.Title,
			Company: j.Company,
			Start:   j.Start,
			End:     j.End,
			Bullets: append([]string(nil), j.Bullets...),
		})
	}

	seen := make(map[string]bool, len(doc.Projects))
	for i, pd := range doc.Projects {
		pr, err := convertProject(pd)
		if err != nil {
			return nil, fmt.Errorf("%w: project %d: %v", ErrInvalidContent, i, err)
		}
		if seen[pr.Name] {
			return nil, fmt.Errorf("%w: duplicate project %q", ErrInvalidContent, pr.Name)
		}
		seen[pr.Name] = true
		p.projects = append(p.projects, pr)
	}
	return p, nil
}

func convertProject(pd projectDoc) (Project, error) {
	if strings.TrimSpace(pd.Name) == "" {
		return Project{}, errors.New("name is required")
	}
	pr := Project{
		Name:        pd.Name,
		Date:        pd.Date,
		Description: strings.TrimSpace(pd.Description),
		Details:     append([]string(nil), pd.Details...),
		Image:       pd.Image,
	}

	switch {
	case pd.Links != nil && pd.URL != nil:
		return Project{}, fmt.Errorf("%q has both links and url", pd.Name)
	case pd.Links != nil:
		sl := StoreLinks(*pd.Links)
		for _, b := range sl.Buttons() {
			if err := checkHref(b.Href); err != nil {
				return Project{}, fmt.Errorf("%q %s link: %v", pd.Name, b.Kind, err)
			}
		}
		if len(sl.Buttons()) > 0 {
			pr.Links = sl
		}
	case pd.URL != nil:
		if pd.URL.Label == "" {
			return Project{}, fmt.Errorf("%q url needs a label", pd.Name)
		}
		if err := checkHref(pd.URL.Href); err != nil {
			return Project{}, fmt.Errorf("%q url: %v", pd.Name, err)
		}
		pr.Links = LabeledURL(*pd.URL)
	}
	return pr, nil
}

func checkHref(href string) error {
	u, err := url.Parse(href)
	if err != nil {
		return err
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", href)
	}
	return nil
}
