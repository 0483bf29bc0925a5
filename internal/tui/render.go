package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/prefs"
)

// page is rendered viewport content plus the first line of every
// anchored section.
type page struct {
	body    string
	anchors map[string]int
}

type pageBuilder struct {
	b       strings.Builder
	lines   int
	anchors map[string]int
}

func (pb *pageBuilder) section(anchor, block string) {
	if anchor != "" {
		pb.anchors[anchor] = pb.lines
	}
	pb.b.WriteString(block)
	pb.b.WriteString("\n\n")
	pb.lines += lipgloss.Height(block) + 1
}

func (pb *pageBuilder) page() page {
	return page{body: strings.TrimRight(pb.b.String(), "\n"), anchors: pb.anchors}
}

func cardWidth(width int) int {
	if width < 24 {
		return 20
	}
	return width - 4
}

func renderMain(p *content.Portfolio, st Styles, width int) page {
	pb := &pageBuilder{anchors: make(map[string]int)}
	w := cardWidth(width)
	prof := p.Profile()

	var contact []string
	for _, s := range []string{prof.Email, prof.Phone, prof.Location} {
		if s != "" {
			contact = append(contact, st.Muted.Render(s))
		}
	}
	pb.section("", strings.Join(contact, "  ·  "))

	pb.section(string(prefs.TabAbout), st.Card.Width(w).Render(
		st.Section.Render("About Me")+"\n"+st.Body.Width(w-4).Render(prof.About)))

	f := p.Featured()
	featured := st.Section.Render("Latest Project") + "\n" +
		st.Subtitle.Bold(true).Render(f.Name) + "\n" +
		st.Body.Width(w-4).Render(f.Blurb)
	if f.CTA.Href != "" {
		featured += "\n" + st.Muted.Render(f.CTA.Label+": "+f.CTA.Href)
	}
	featured += "\n" + st.Hint.Render("press p for more projects →")
	pb.section(string(prefs.TabProjects), st.Card.Width(w).Render(featured))

	var chips []string
	for _, s := range p.Skills() {
		chips = append(chips, st.Chip.Render(s))
	}
	pb.section(string(prefs.TabSkills), st.Card.Width(w).Render(
		st.Section.Render("Skills")+"\n"+wrapInline(chips, w-4)))

	if jobs := p.Experience(); len(jobs) > 0 {
		var b strings.Builder
		b.WriteString(st.Section.Render("Experience"))
		for _, j := range jobs {
			b.WriteString("\n" + st.Subtitle.Bold(true).Render(j.Title+" · "+j.Company))
			b.WriteString("\n" + st.Muted.Render(j.Start+" - "+j.End))
			for _, bullet := range j.Bullets {
				b.WriteString("\n" + st.Body.Width(w-4).Render("• "+bullet))
			}
		}
		pb.section("experience", st.Card.Width(w).Render(b.String()))
	}

	pb.section("", footer(prof, st))
	return pb.page()
}

func renderProjects(p *content.Portfolio, st Styles, width int) page {
	pb := &pageBuilder{anchors: make(map[string]int)}
	w := cardWidth(width)

	pb.section("", st.Title.Render("My Projects")+"  "+st.Hint.Render("esc: back to home"))
	for _, pr := range p.Projects() {
		var b strings.Builder
		b.WriteString(st.Subtitle.Bold(true).Render(pr.Name))
		b.WriteString("\n" + st.Muted.Render(pr.Date))
		b.WriteString("\n" + st.Body.Width(w-4).Render(pr.Description))
		for _, d := range pr.Details {
			b.WriteString("\n" + st.Body.Width(w-4).Render("• "+d))
		}
		for _, btn := range pr.Buttons() {
			b.WriteString("\n" + st.Title.Render(linkLabel(btn)))
		}
		pb.section("", st.Card.Width(w).Render(b.String()))
	}
	pb.section("", footer(p.Profile(), st))
	return pb.page()
}

func footer(prof content.Profile, st Styles) string {
	var links []string
	for _, s := range prof.Socials {
		links = append(links, s.Label+" "+s.Href)
	}
	out := st.Muted.Render(strings.Join(links, "   "))
	if prof.Copyright != "" {
		out += "\n" + st.Muted.Render(prof.Copyright)
	}
	return out
}

// wrapInline lays rendered chips out left to right, breaking lines at width.
func wrapInline(items []string, width int) string {
	var lines []string
	var cur string
	for _, it := range items {
		switch {
		case cur == "":
			cur = it
		case lipgloss.Width(cur)+1+lipgloss.Width(it) > width:
			lines = append(lines, cur)
			cur = it
		default:
			cur += " " + it
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
