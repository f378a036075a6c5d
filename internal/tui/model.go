package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rihla/internal/content"
	"rihla/internal/engine"
)

type journeyModel struct {
	store *engine.Store

	width  int
	height int

	selected int // selected journey day, 1..content.TotalDays
	lastLog  string
}

func newJourneyModel(store *engine.Store) journeyModel {
	day := store.State().CurrentDayID
	if day > content.TotalDays {
		day = content.TotalDays
	}
	return journeyModel{
		store:    store,
		selected: day,
		lastLog:  "Bismillah.",
	}
}

func (m journeyModel) Init() tea.Cmd {
	return nil
}

func (m journeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 1 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < content.TotalDays {
				m.selected++
			}
			return m, nil
		case "g":
			m.selected = m.store.State().CurrentDayID
			if m.selected > content.TotalDays {
				m.selected = content.TotalDays
			}
			m.lastLog = "Jumped to current day."
			return m, nil
		case "c", " ":
			return m.completeSelected(), nil
		case "f":
			if m.store.UseStreakFreeze() {
				m.lastLog = "Streak freeze active."
			} else {
				m.lastLog = "Cannot freeze (no credits, already frozen, or no streak)."
			}
			return m, nil
		case "e":
			m.store.EndStreakFreeze()
			m.lastLog = "Freeze ended."
			return m, nil
		case "R":
			if m.store.RecoverStreak() {
				m.lastLog = fmt.Sprintf("Streak recovered: %d days.", m.store.State().Streak)
			} else {
				m.lastLog = "Streak recovery not available."
			}
			return m, nil
		case "1", "2", "3", "4", "5":
			idx := int(msg.String()[0] - '1')
			p := engine.Prayers[idx]
			if m.store.LogPrayer(string(p)) {
				m.lastLog = fmt.Sprintf("Logged %s.", p)
			} else {
				m.lastLog = fmt.Sprintf("%s already logged today.", p)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m journeyModel) completeSelected() journeyModel {
	res := m.store.MarkDayComplete(m.selected)
	if !res.Applied {
		m.lastLog = fmt.Sprintf("Day %d is already complete.", m.selected)
		return m
	}
	log := fmt.Sprintf("Day %d complete: +%d XP", res.DayID, res.XPAwarded)
	if res.LevelUp {
		log += fmt.Sprintf(", level %d → %d", res.LevelBefore, res.LevelAfter)
	}
	for _, b := range res.NewBadges {
		log += fmt.Sprintf(", badge %s %s", b.Icon, b.Name)
	}
	m.lastLog = log
	m.selected = m.store.State().CurrentDayID
	if m.selected > content.TotalDays {
		m.selected = content.TotalDays
	}
	return m
}

func (m journeyModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m journeyModel) renderHeader() string {
	info := m.store.CurrentLevel()
	st := m.store.State()
	span := info.NextMinXP - info.MinXP
	bar := progressBar(st.XP-info.MinXP, span, 30)
	if info.NextMinXP == 0 {
		bar = progressBar(1, 1, 30)
	}
	return fmt.Sprintf("Rihla | Level %d %s | XP %d %s", info.Level, info.Name, st.XP, bar)
}

func (m journeyModel) renderSidebar() string {
	st := m.store.State()
	lines := []string{"Progress"}
	lines = append(lines, fmt.Sprintf("- days: %d/%d (%.1f%%)", len(st.CompletedDayIDs), content.TotalDays, m.store.JourneyProgress()))
	streak := fmt.Sprintf("- streak: %d (best %d)", st.Streak, st.LongestStreak)
	if st.ActiveFreeze {
		streak += " [frozen]"
	}
	lines = append(lines, streak)
	lines = append(lines, fmt.Sprintf("- freezes: %d", st.FreezeDaysAvailable))
	lines = append(lines, fmt.Sprintf("- prayers today: %d/5", st.PrayerLog.Count()))
	lines = append(lines, fmt.Sprintf("- badges: %d/%d", len(st.UnlockedBadges), len(engine.AllBadges())))
	if m.store.CanRecoverStreak() {
		lines = append(lines, "- streak recovery available! (R)")
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete day")
	lines = append(lines, "- g: go to current day")
	lines = append(lines, "- 1-5: log prayer")
	lines = append(lines, "- f/e: freeze / end freeze")
	lines = append(lines, "- R: recover streak")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m journeyModel) renderMain() string {
	st := m.store.State()
	rows := m.visibleRows()
	half := rows / 2
	first := m.selected - half
	if first < 1 {
		first = 1
	}
	last := first + rows - 1
	if last > content.TotalDays {
		last = content.TotalDays
		if first > last-rows+1 {
			first = last - rows + 1
			if first < 1 {
				first = 1
			}
		}
	}

	var out []string
	out = append(out, "Journey")
	for id := first; id <= last; id++ {
		d, _ := content.Get(id)
		cursor := "  "
		if id == m.selected {
			cursor = "> "
		}
		marker := "· "
		switch {
		case st.DayCompleted(id):
			marker = "✓ "
		case id == st.CurrentDayID:
			marker = "▶ "
		}
		out = append(out, fmt.Sprintf("%s%s%s", cursor, marker, d.Title))
	}
	out = append(out, "")
	if d, ok := content.Get(m.selected); ok {
		out = append(out, fmt.Sprintf("Phase: %s", d.Phase))
		out = append(out, fmt.Sprintf("Reflect: %s", d.Reflection))
	}
	return strings.Join(out, "\n")
}

func (m journeyModel) visibleRows() int {
	rows := 13
	if m.height > 0 {
		rows = m.height - 10
		if rows < 5 {
			rows = 5
		}
		if rows > 25 {
			rows = 25
		}
	}
	return rows
}

func (m journeyModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
