// Package tui is the interactive resume upload form.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/resumecheck/internal/form"
	"github.com/amishk599/resumecheck/internal/model"
	"github.com/amishk599/resumecheck/internal/report"
	"github.com/amishk599/resumecheck/internal/resume"
)

type focusField int

const (
	focusFile focusField = iota
	focusJobDescription
	focusSubmit
	focusCount
)

const (
	defaultWidth  = 80
	defaultHeight = 30
	jobDescLines  = 6
)

// uploadDoneMsg carries the outcome of the single request of a submission.
type uploadDoneMsg struct {
	result *model.AnalysisResult
	err    error
}

// Options prefill the form.
type Options struct {
	File           string
	JobDescription string
	AltScreen      bool
}

type uploadModel struct {
	form     *form.Form
	uploader model.ResumeUploader
	inspect  func(path string) (model.ResumeFile, error)

	fileInput textinput.Model
	jobInput  textarea.Model
	spinner   spinner.Model
	results   viewport.Model
	focus     focusField

	width  int
	height int
}

func newUploadModel(f *form.Form, uploader model.ResumeUploader, opts Options) uploadModel {
	fi := textinput.New()
	fi.Placeholder = "path/to/resume.pdf"
	fi.Prompt = "› "
	fi.CharLimit = 4096

	ta := textarea.New()
	ta.Placeholder = "Paste the job description here for better skill matching..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(jobDescLines)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	m := uploadModel{
		form:      f,
		uploader:  uploader,
		inspect:   resume.Inspect,
		fileInput: fi,
		jobInput:  ta,
		spinner:   sp,
		results:   viewport.New(defaultWidth, 1),
	}

	if opts.JobDescription != "" {
		m.jobInput.SetValue(opts.JobDescription)
		m.form.SetJobDescription(opts.JobDescription)
	}
	if opts.File != "" {
		m.fileInput.SetValue(opts.File)
		m.pickFile(opts.File)
	}

	m.resize(defaultWidth, defaultHeight)
	m.setFocus(focusFile)
	return m
}

func (m uploadModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case uploadDoneMsg:
		m.form.Resolve(msg.result, msg.err)
		m.refreshResults()
		return m, nil

	case spinner.TickMsg:
		if !m.form.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m uploadModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch m.focus {
	case focusFile:
		if msg.Type == tea.KeyEnter {
			m.pickFile(m.fileInput.Value())
			m.refreshResults()
			return m, nil
		}
	case focusSubmit:
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			if !m.form.CanSubmit() {
				return m, nil
			}
			return m.submit()
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and mirrors the job
// description into the form.
func (m uploadModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusFile:
		m.fileInput, cmd = m.fileInput.Update(msg)
	case focusJobDescription:
		m.jobInput, cmd = m.jobInput.Update(msg)
		m.form.SetJobDescription(m.jobInput.Value())
	}
	return m, cmd
}

// submit starts a submission unless one is already loading. A missing file
// is reported by the form without sending anything.
func (m uploadModel) submit() (tea.Model, tea.Cmd) {
	if m.form.Loading() {
		return m, nil
	}
	sub, ok := m.form.Begin()
	m.refreshResults()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, m.uploadCmd(sub))
}

func (m uploadModel) uploadCmd(sub model.Submission) tea.Cmd {
	uploader := m.uploader
	return func() tea.Msg {
		result, err := uploader.Upload(context.Background(), sub)
		return uploadDoneMsg{result: result, err: err}
	}
}

// pickFile inspects path and offers it to the form. An empty path behaves
// like a cancelled picker: nothing selected, PDF prompt shown.
func (m *uploadModel) pickFile(path string) {
	if strings.TrimSpace(path) == "" {
		m.form.SelectFile(model.ResumeFile{})
		return
	}
	f, err := m.inspect(path)
	if err != nil {
		m.form.RejectFile(fmt.Sprintf("Cannot read %s: %s", f.Name, resume.Reason(err)))
		return
	}
	m.form.SelectFile(f)
}

func (m *uploadModel) setFocus(f focusField) {
	m.focus = f
	m.fileInput.Blur()
	m.jobInput.Blur()
	switch f {
	case focusFile:
		m.fileInput.Focus()
	case focusJobDescription:
		m.jobInput.Focus()
	}
}

func (m *uploadModel) resize(width, height int) {
	m.width = max(width, 40)
	m.height = max(height, 12)
	m.fileInput.Width = m.width - 6
	m.jobInput.SetWidth(m.width - 2)
	m.refreshResults()
}

// refreshResults sizes the results viewport to the space left under the
// form and re-renders the report.
func (m *uploadModel) refreshResults() {
	used := lipgloss.Height(m.formView()) + 1 // status bar
	m.results.Width = m.width - 4
	m.results.Height = max(m.height-used-2, 3) // report border
	if r := m.form.Result(); r != nil {
		m.results.SetContent(report.Render(*r, m.width-4))
	} else {
		m.results.SetContent("")
	}
}

func (m uploadModel) View() string {
	var b strings.Builder
	b.WriteString(m.formView())
	if m.form.Result() != nil {
		b.WriteString(reportBorderStyle.Width(m.width - 2).Render(m.results.View()))
		b.WriteByte('\n')
	}
	b.WriteString(statusBarStyle.Width(m.width).Render(
		" tab next field  enter select file  ctrl+s analyze  pgup/pgdn scroll  esc quit"))
	return b.String()
}

func (m uploadModel) formView() string {
	var b strings.Builder
	b.WriteString(appTitleStyle.Render("AI Resume Analyzer"))
	b.WriteByte('\n')

	b.WriteString(m.label(focusFile, "Upload Resume (PDF only)"))
	b.WriteByte('\n')
	b.WriteString(m.fileInput.View())
	b.WriteByte('\n')
	if f := m.form.File(); f != nil {
		b.WriteString(selectedFileStyle.Render("✔ Selected: " + describeFile(*f)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString(m.label(focusJobDescription, "Job Description (Optional)"))
	b.WriteByte('\n')
	b.WriteString(m.jobInput.View())
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render("Adding a job description will provide more accurate skill matching and recommendations"))
	b.WriteString("\n\n")

	if msg := m.form.ErrorMessage(); msg != "" {
		b.WriteString(errorBannerStyle.Render("✖ " + msg))
		b.WriteByte('\n')
	}

	b.WriteString(m.buttonView())
	b.WriteString("\n\n")
	return b.String()
}

func (m uploadModel) label(f focusField, text string) string {
	if m.focus == f {
		return activeLabelStyle.Render(text)
	}
	return fieldLabelStyle.Render(text)
}

func (m uploadModel) buttonView() string {
	switch {
	case m.form.Loading():
		return disabledButtonStyle.Render(m.spinner.View() + " Analyzing Resume...")
	case !m.form.CanSubmit():
		return disabledButtonStyle.Render("Analyze Resume")
	case m.focus == focusSubmit:
		return focusedButtonStyle.Render("Analyze Resume")
	default:
		return buttonStyle.Render("Analyze Resume")
	}
}

func describeFile(f model.ResumeFile) string {
	s := f.Name
	if f.Pages == 1 {
		s += " · 1 page"
	} else if f.Pages > 1 {
		s += fmt.Sprintf(" · %d pages", f.Pages)
	}
	return s
}

// Run launches the interactive upload form and blocks until the user quits.
func Run(f *form.Form, uploader model.ResumeUploader, opts Options) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newUploadModel(f, uploader, opts), programOpts...)
	_, err := p.Run()
	return err
}
