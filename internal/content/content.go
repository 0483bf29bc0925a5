// Package content holds the static records the portfolio renders:
// profile, skills, experience and projects. Records are loaded once and
// never mutated; every accessor hands out a copy.
package content

// Link is a labeled external URL.
type Link struct {
	Label string
	Href  string
}

type LinkKind string

const (
	KindWebsite   LinkKind = "website"
	KindAppStore  LinkKind = "appStore"
	KindPlayStore LinkKind = "playStore"
	KindURL       LinkKind = "url"
)

// Button is one rendered external link of a project card.
type Button struct {
	Kind  LinkKind
	Label string
	Href  string
}

// LinkSet is the link shape of a project: StoreLinks, LabeledURL, or nil
// for a project without links.
type LinkSet interface {
	Buttons() []Button
	isLinkSet()
}

// StoreLinks are the named storefront links. Any of them may be empty.
type StoreLinks struct {
	Website   string
	AppStore  string
	PlayStore string
}

func (s StoreLinks) Buttons() []Button {
	var out []Button
	if s.Website != "" {
		out = append(out, Button{Kind: KindWebsite, Label: "Website", Href: s.Website})
	}
	if s.AppStore != "" {
		out = append(out, Button{Kind: KindAppStore, Label: "App Store", Href: s.AppStore})
	}
	if s.PlayStore != "" {
		out = append(out, Button{Kind: KindPlayStore, Label: "Play Store", Href: s.PlayStore})
	}
	return out
}

func (StoreLinks) isLinkSet() {}

// LabeledURL is a single link with its own caption.
type LabeledURL Link

func (u LabeledURL) Buttons() []Button {
	return []Button{{Kind: KindURL, Label: u.Label, Href: u.Href}}
}

func (LabeledURL) isLinkSet() {}

type Project struct {
	Name        string
	Date        string
	Description string
	Details     []string
	Image       string
	Links       LinkSet
}

// Buttons returns the project's external links in display order.
func (p Project) Buttons() []Button {
	if p.Links == nil {
		return nil
	}
	return p.Links.Buttons()
}

func (p Project) clone() Project {
	p.Details = append([]string(nil), p.Details...)
	return p
}

type Job struct {
	Title   string
	Company string
	Start   string
	End     string
	Bullets []string
}

type Profile struct {
	Name      string
	Title     string
	Email     string
	Phone     string
	Location  string
	Avatar    string
	About     string
	Resume    Link
	WhatsApp  Link
	Socials   []Link
	Copyright string
}

// Featured is the "latest project" card on the main view.
type Featured struct {
	Name  string
	Image string
	Blurb string
	CTA   Link
}

type Portfolio struct {
	profile    Profile
	skills     []string
	experience []Job
	featured   Featured
	projects   []Project
}

func (p *Portfolio) Profile() Profile {
	out := p.profile
	out.Socials = append([]Link(nil), p.profile.Socials...)
	return out
}

func (p *Portfolio) Skills() []string {
	return append([]string(nil), p.skills...)
}

func (p *Portfolio) Experience() []Job {
	out := make([]Job, len(p.experience))
	for i, j := range p.experience {
		j.Bullets = append([]string(nil), j.Bullets...)
		out[i] = j
	}
	return out
}

func (p *Portfolio) Featured() Featured { return p.featured }

func (p *Portfolio) Projects() []Project {
	out := make([]Project, len(p.projects))
	for i, pr := range p.projects {
		out[i] = pr.clone()
	}
	return out
}
