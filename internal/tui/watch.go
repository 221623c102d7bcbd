// Package tui renders a live advisor view: the snapshot file is
// re-analyzed on an interval and the current recommendation is drawn in
// place. The view is read-only like everything else in the advisor.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/advisor"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/config"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/loader"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/rank"
	"github.com/tomyanzhiyuan/cookieclickervision/pkg/format"
)

// WatchInterval is how often the snapshot file is re-read; flag-tunable
var WatchInterval = 2 * time.Second

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	topStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	altStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// Watch runs the live view until the user quits
func Watch(adv *advisor.Advisor, snapshotPath string, conf *config.Configuration) error {
	m := watchModel{
		adv:          adv,
		snapshotPath: snapshotPath,
		conf:         conf,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

type tickMsg time.Time

type watchModel struct {
	adv          *advisor.Advisor
	snapshotPath string
	conf         *config.Configuration

	rec     *models.Recommendation
	lastErr error
	updated time.Time
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(refreshNow, tick())
}

func refreshNow() tea.Msg {
	return tickMsg(time.Now())
}

func tick() tea.Cmd {
	return tea.Tick(WatchInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.refresh(), nil
		case "p":
			// Toggle between the two addressable policies.
			if m.adv.PolicyName() == rank.GreedyName {
				m.adv.SetPolicy(rank.NewRelaxed())
			} else {
				m.adv.SetPolicy(rank.NewGreedy(m.conf.PaybackCeilingSeconds))
			}
			return m.refresh(), nil
		}
	case tickMsg:
		return m.refresh(), tick()
	}
	return m, nil
}

func (m watchModel) refresh() watchModel {
	m.updated = time.Now()
	snap, err := loader.LoadSnapshot(m.snapshotPath)
	if err != nil {
		m.lastErr = err
		return m
	}
	rec, err := m.adv.Analyze(snap)
	if err != nil {
		m.lastErr = err
		m.rec = nil
		return m
	}
	m.lastErr = nil
	m.rec = rec
	return m
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🍪 Cookie Clicker Vision — live advisor"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s | policy: %s | updated %s",
		m.snapshotPath, m.adv.PolicyName(), m.updated.Format("15:04:05"))))
	b.WriteString("\n\n")

	switch {
	case m.lastErr != nil:
		b.WriteString(errStyle.Render(failureLine(m.lastErr)))
		b.WriteString("\n")
	case m.rec == nil:
		b.WriteString(dimStyle.Render("waiting for first analysis..."))
		b.WriteString("\n")
	default:
		b.WriteString(renderRecommendation(m.rec))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("r refresh · p toggle policy · q quit"))
	b.WriteString("\n")
	return b.String()
}

func renderRecommendation(rec *models.Recommendation) string {
	var b strings.Builder

	b.WriteString(dimStyle.Render(fmt.Sprintf("bank %s · rate %s/s",
		format.Cookies(rec.State.Currency), format.Cookies(rec.State.Rate))))
	b.WriteString("\n\n")

	b.WriteString(topStyle.Render(fmt.Sprintf("▶ %s", rec.Top.Name)))
	b.WriteString("\n")
	b.WriteString(altStyle.Render(candidateLine(rec.Top)))
	b.WriteString("\n")

	if len(rec.Alternatives) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("alternatives:"))
		b.WriteString("\n")
		for i, alt := range rec.Alternatives {
			b.WriteString(altStyle.Render(fmt.Sprintf("  %d. %-24s %s", i+2, alt.Name, candidateLine(alt))))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func candidateLine(c models.Candidate) string {
	return fmt.Sprintf("cost %s · gain %s/s · payback %s",
		format.Cookies(c.Cost), format.Cookies(c.RateDelta), format.Duration(c.PaybackTime))
}

func failureLine(err error) string {
	if f, ok := advisor.FailureOf(err); ok {
		return fmt.Sprintf("✗ %s: %v", f.Kind, f.Err)
	}
	return fmt.Sprintf("✗ %v", err)
}
