// Package tui provides the Bubble Tea configuration wizard.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordforge/internal/model"
)

type stepKind int

const (
	stepText stepKind = iota
	stepBool
	stepInt
)

type step struct {
	name   string
	prompt string
	hint   string
	kind   stepKind
}

const (
	stepSeeds = iota
	stepUsernameFile
	stepUseDates
	stepStartYear
	stepEndYear
	stepUseCommon
	stepUseKeyboard
	stepLeet
	stepUppercase
	stepNumbers
	stepSpecial
	stepOutput
	stepMaxWords
	stepConfirm
)

var steps = []step{
	{name: "seeds", prompt: "Seed words (comma-separated)", hint: "company, usernames, product names", kind: stepText},
	{name: "username-file", prompt: "Username file (blank to skip)", hint: "one username per line", kind: stepText},
	{name: "use-dates", prompt: "Include date patterns? [y/n]", hint: "admin2024, admin01 ...", kind: stepBool},
	{name: "start-year", prompt: "Start year", kind: stepInt},
	{name: "end-year", prompt: "End year", kind: stepInt},
	{name: "use-common", prompt: "Include common weak passwords? [y/n]", hint: "123456, qwerty ...", kind: stepBool},
	{name: "use-keyboard", prompt: "Include keyboard patterns? [y/n]", hint: "qwerty, 1qaz2wsx ...", kind: stepBool},
	{name: "leet", prompt: "Leet-speak mutations? [y/n]", hint: "a->@, e->3, i->1", kind: stepBool},
	{name: "uppercase", prompt: "Case variations? [y/n]", hint: "Password, PASSWORD", kind: stepBool},
	{name: "numbers", prompt: "Number suffixes? [y/n]", hint: "password123", kind: stepBool},
	{name: "special", prompt: "Special characters? [y/n]", hint: "password!, @password", kind: stepBool},
	{name: "output", prompt: "Output file", kind: stepText},
	{name: "max-words", prompt: "Max words (0 = unlimited)", kind: stepInt},
	{name: "confirm", prompt: "Generate with these settings? [y/n]", kind: stepBool},
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the configuration wizard.
type Model struct {
	cfg     model.GenerationConfig
	stepIdx int
	input   textinput.Model
	errMsg  string

	// Done is true when the operator confirmed the assembled config;
	// Aborted is true when the wizard was cancelled.
	Done    bool
	Aborted bool
}

// NewModel constructs a wizard pre-filled with defaults.
func NewModel(defaults model.GenerationConfig) *Model {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 512
	m := &Model{
		cfg:   defaults,
		input: input,
	}
	m.applyPlaceholder()
	return m
}

// Config returns the assembled configuration. Valid only when Done.
func (m *Model) Config() model.GenerationConfig {
	return m.cfg
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.Done || m.Aborted {
		return ""
	}
	current := steps[m.stepIdx]
	var b strings.Builder
	b.WriteString(titleStyle.Render("wordforge — dictionary setup"))
	b.WriteString("\n\n")
	if m.stepIdx == stepConfirm {
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
	}
	b.WriteString(promptStyle.Render(fmt.Sprintf("[%d/%d] %s", m.stepIdx+1, len(steps), current.prompt)))
	b.WriteString("\n")
	if current.hint != "" {
		b.WriteString(hintStyle.Render("  " + current.hint))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter to accept · esc to abort"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if err := m.applyAnswer(m.stepIdx, value); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""

	if m.stepIdx == stepConfirm {
		if m.Done {
			return m, tea.Quit
		}
		// Declined: restart at the first step.
		m.stepIdx = stepSeeds
		m.resetInput()
		return m, nil
	}

	m.stepIdx = m.nextStep(m.stepIdx)
	m.resetInput()
	return m, nil
}

// applyAnswer parses one answer into the config. A blank answer keeps
// the current (default) value except for required fields.
func (m *Model) applyAnswer(idx int, value string) error {
	switch idx {
	case stepSeeds:
		seeds := SplitSeeds(value)
		if len(seeds) == 0 && len(m.cfg.SeedWords) == 0 {
			return fmt.Errorf("at least one seed word is required")
		}
		if len(seeds) > 0 {
			m.cfg.SeedWords = seeds
		}
	case stepUsernameFile:
		if value != "" {
			if _, err := os.Stat(value); err != nil {
				return fmt.Errorf("file not found: %s", value)
			}
		}
		m.cfg.UsernameFile = value
	case stepUseDates:
		v, err := ParseBool(value, m.cfg.UseDates)
		if err != nil {
			return err
		}
		m.cfg.UseDates = v
	case stepStartYear:
		v, err := ParseInt(value, m.cfg.StartYear)
		if err != nil {
			return err
		}
		m.cfg.StartYear = v
	case stepEndYear:
		v, err := ParseInt(value, m.cfg.EndYear)
		if err != nil {
			return err
		}
		if v < m.cfg.StartYear {
			return fmt.Errorf("end year must not precede %d", m.cfg.StartYear)
		}
		m.cfg.EndYear = v
	case stepUseCommon:
		v, err := ParseBool(value, m.cfg.UseCommon)
		if err != nil {
			return err
		}
		m.cfg.UseCommon = v
	case stepUseKeyboard:
		v, err := ParseBool(value, m.cfg.UseKeyboard)
		if err != nil {
			return err
		}
		m.cfg.UseKeyboard = v
	case stepLeet:
		v, err := ParseBool(value, m.cfg.Mutations.LeetSpeak)
		if err != nil {
			return err
		}
		m.cfg.Mutations.LeetSpeak = v
	case stepUppercase:
		v, err := ParseBool(value, m.cfg.Mutations.Uppercase)
		if err != nil {
			return err
		}
		m.cfg.Mutations.Uppercase = v
	case stepNumbers:
		v, err := ParseBool(value, m.cfg.Mutations.Numbers)
		if err != nil {
			return err
		}
		m.cfg.Mutations.Numbers = v
	case stepSpecial:
		v, err := ParseBool(value, m.cfg.Mutations.Special)
		if err != nil {
			return err
		}
		m.cfg.Mutations.Special = v
	case stepOutput:
		if value != "" {
			m.cfg.OutputFile = value
		}
		if m.cfg.OutputFile == "" {
			return fmt.Errorf("output file is required")
		}
	case stepMaxWords:
		v, err := ParseInt(value, m.cfg.MaxWords)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("max words must be >= 0")
		}
		m.cfg.MaxWords = v
	case stepConfirm:
		v, err := ParseBool(value, true)
		if err != nil {
			return err
		}
		m.Done = v
	}
	return nil
}

// nextStep returns the following step index, skipping the year
// prompts when date patterns are disabled.
func (m *Model) nextStep(idx int) int {
	next := idx + 1
	if next == stepStartYear && !m.cfg.UseDates {
		next = stepUseCommon
	}
	return next
}

func (m *Model) resetInput() {
	m.input.SetValue("")
	m.applyPlaceholder()
}

func (m *Model) applyPlaceholder() {
	switch m.stepIdx {
	case stepSeeds:
		m.input.Placeholder = strings.Join(m.cfg.SeedWords, ",")
	case stepStartYear:
		m.input.Placeholder = strconv.Itoa(m.cfg.StartYear)
	case stepEndYear:
		m.input.Placeholder = strconv.Itoa(m.cfg.EndYear)
	case stepOutput:
		m.input.Placeholder = m.cfg.OutputFile
	case stepMaxWords:
		m.input.Placeholder = strconv.Itoa(m.cfg.MaxWords)
	case stepConfirm:
		m.input.Placeholder = "y"
	default:
		m.input.Placeholder = ""
	}
}

func (m *Model) renderSummary() string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	lines := []string{
		fmt.Sprintf("  seeds:     %s", strings.Join(m.cfg.SeedWords, ", ")),
		fmt.Sprintf("  usernames: %s", orNone(m.cfg.UsernameFile)),
		fmt.Sprintf("  dates:     %s", dateSummary(m.cfg)),
		fmt.Sprintf("  common:    %s   keyboard: %s", onOff(m.cfg.UseCommon), onOff(m.cfg.UseKeyboard)),
		fmt.Sprintf("  mutations: leet %s · case %s · numbers %s · special %s",
			onOff(m.cfg.Mutations.LeetSpeak), onOff(m.cfg.Mutations.Uppercase),
			onOff(m.cfg.Mutations.Numbers), onOff(m.cfg.Mutations.Special)),
		fmt.Sprintf("  output:    %s (max %d)", m.cfg.OutputFile, m.cfg.MaxWords),
	}
	return hintStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}

func dateSummary(cfg model.GenerationConfig) string {
	if !cfg.UseDates {
		return "off"
	}
	return fmt.Sprintf("%d-%d", cfg.StartYear, cfg.EndYear)
}

// SplitSeeds splits a comma-separated seed list, trimming entries and
// dropping blanks.
func SplitSeeds(value string) []string {
	var seeds []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seeds = append(seeds, part)
	}
	return seeds
}

// ParseBool interprets a y/n answer; blank keeps the fallback.
func ParseBool(value string, fallback bool) (bool, error) {
	switch strings.ToLower(value) {
	case "":
		return fallback, nil
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("answer y or n")
}

// ParseInt parses a decimal answer; blank keeps the fallback.
func ParseInt(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", value)
	}
	return v, nil
}
