package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
)

type archiveSection int

const (
	sectionAnalyses archiveSection = iota
	sectionChats
	sectionEdits
)

var archiveSections = []string{"Анализы ИИ", "Чаты", "Изменения записей"}

type archiveLoadedMsg struct {
	analyses []models.ArchivedAnalysis
	chats    []models.ArchivedChat
	edits    []models.ArchivedRecordEdit
	err      error
}

type archiveDeletedMsg struct {
	err error
}

// archiveScreen browses the saved analyses, chats and record edits.
type archiveScreen struct {
	ctx      context.Context
	api      adapter.ServerAdapter
	copyText func(string) error

	analyses []models.ArchivedAnalysis
	chats    []models.ArchivedChat
	edits    []models.ArchivedRecordEdit

	section archiveSection
	cursor  cursor
	loading bool

	detail  bool
	text    textView
	confirm *confirmModel
}

func newArchiveScreen(ctx context.Context, api adapter.ServerAdapter, copyText func(string) error) *archiveScreen {
	return &archiveScreen{ctx: ctx, api: api, copyText: copyText, text: newTextView()}
}

func (s *archiveScreen) Init() tea.Cmd {
	s.loading = true
	return s.cmdLoad()
}

func (s *archiveScreen) Capturing() bool {
	return s.confirm != nil || s.detail
}

func (s *archiveScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case archiveLoadedMsg:
		s.loading = false
		if msg.err != nil {
			return failed("Не удалось загрузить архив", msg.err)
		}
		s.analyses, s.chats, s.edits = msg.analyses, msg.chats, msg.edits
		s.cursor.clamp(s.len())
		return nil
	case archiveDeletedMsg:
		if msg.err != nil {
			return failed("Не удалось удалить", msg.err)
		}
		return tea.Batch(notice("Удалено из архива"), s.cmdLoad())
	case tea.WindowSizeMsg:
		s.text.resize(msg)
		return nil
	case tea.KeyMsg:
		return s.updateKey(msg)
	}
	return nil
}

func (s *archiveScreen) updateKey(msg tea.KeyMsg) tea.Cmd {
	if s.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			s.confirm = nil
			return s.cmdDelete()
		case key.Matches(msg, keys.no, keys.esc):
			s.confirm = nil
		}
		return nil
	}

	if s.detail {
		switch {
		case key.Matches(msg, keys.esc):
			s.detail = false
		case key.Matches(msg, keys.copy):
			return copyToClipboard(s.copyText, s.text.text)
		default:
			return s.text.update(msg)
		}
		return nil
	}

	if s.cursor.move(msg, s.len()) {
		return nil
	}

	switch {
	case key.Matches(msg, keys.left):
		s.section = (s.section + archiveSection(len(archiveSections)) - 1) % archiveSection(len(archiveSections))
		s.cursor = cursor{}
	case key.Matches(msg, keys.right):
		s.section = (s.section + 1) % archiveSection(len(archiveSections))
		s.cursor = cursor{}
	case key.Matches(msg, keys.enter):
		if s.cursor.valid(s.len()) {
			s.text.setText(s.detailText())
			s.detail = true
		}
	case key.Matches(msg, keys.delete):
		if s.cursor.valid(s.len()) {
			s.confirm = &confirmModel{message: s.deleteQuestion()}
		}
	case key.Matches(msg, keys.reload):
		s.loading = true
		return s.cmdLoad()
	}
	return nil
}

func (s *archiveScreen) len() int {
	switch s.section {
	case sectionAnalyses:
		return len(s.analyses)
	case sectionChats:
		return len(s.chats)
	}
	return len(s.edits)
}

func (s *archiveScreen) deleteQuestion() string {
	switch s.section {
	case sectionAnalyses:
		return "Вы уверены, что хотите удалить этот анализ?"
	case sectionChats:
		return "Вы уверены, что хотите удалить этот чат?"
	}
	return "Вы уверены, что хотите удалить эту запись из истории?"
}

func (s *archiveScreen) detailText() string {
	i := s.cursor.idx
	switch s.section {
	case sectionAnalyses:
		a := s.analyses[i]
		return a.Analysis.Text + "\n" + sourcesText(a.Analysis.Sources)
	case sectionChats:
		var b strings.Builder
		for _, m := range s.chats[i].Messages {
			if m.Role == models.ChatRoleUser {
				b.WriteString("Вы: ")
			} else {
				b.WriteString("Ассистент: ")
			}
			b.WriteString(m.Text)
			b.WriteString("\n\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	e := s.edits[i]
	return "Было:  " + recordLine(e.OriginalRecord) + "\nСтало: " + recordLine(e.UpdatedRecord)
}

func recordLine(r models.HealthRecord) string {
	return fmt.Sprintf("%s │ глюкоза %s │ давление %s │ %s", r.Datetime, glucoseText(r), pressureText(r), valueOrDash(r.Comment))
}

func (s *archiveScreen) rows() []string {
	var rows []string
	switch s.section {
	case sectionAnalyses:
		for _, a := range s.analyses {
			rows = append(rows, fitText(a.Datetime, 16)+" │ "+fitText(a.Analysis.Text, 50))
		}
	case sectionChats:
		for _, c := range s.chats {
			rows = append(rows, fitText(c.Datetime, 16)+" │ "+fitText(chatTitle(c), 50))
		}
	case sectionEdits:
		for _, e := range s.edits {
			rows = append(rows, fitText(e.Datetime, 16)+" │ запись от "+e.OriginalRecord.Datetime)
		}
	}
	return rows
}

// chatTitle is the first question of a chat.
func chatTitle(c models.ArchivedChat) string {
	for _, m := range c.Messages {
		if m.Role == models.ChatRoleUser {
			return m.Text
		}
	}
	return "Сохраненный чат"
}

func (s *archiveScreen) HotKeys() string {
	switch {
	case s.confirm != nil:
		return "y: да │ n: нет"
	case s.detail:
		return "esc: назад │ c: копировать │ ↑/↓: прокрутка"
	}
	return "←/→: раздел │ ↑/↓: навигация │ enter: открыть │ ctrl+d: удалить │ r: обновить"
}

func (s *archiveScreen) View() string {
	if s.confirm != nil {
		return s.confirm.View()
	}
	if s.detail {
		return titleStyle.Render(archiveSections[s.section]) + "\n\n" + s.text.View()
	}

	var b strings.Builder
	for i, name := range archiveSections {
		if archiveSection(i) == s.section {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(tabStyle.Render(name))
		}
		if i < len(archiveSections)-1 {
			b.WriteString("   ")
		}
	}
	b.WriteString("\n\n")

	switch rows := s.rows(); {
	case s.loading:
		b.WriteString("Загрузка...")
	case len(rows) == 0:
		b.WriteString("Архив пуст")
	default:
		for i, row := range rows {
			b.WriteString(cursorMark(i == s.cursor.idx) + " " + row + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *archiveScreen) cmdLoad() tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		analyses, err := api.ListAnalyses(ctx)
		if err != nil {
			return archiveLoadedMsg{err: err}
		}
		chats, err := api.ListChats(ctx)
		if err != nil {
			return archiveLoadedMsg{err: err}
		}
		edits, err := api.ListEdits(ctx)
		if err != nil {
			return archiveLoadedMsg{err: err}
		}
		return archiveLoadedMsg{analyses: analyses, chats: chats, edits: edits}
	}
}

func (s *archiveScreen) cmdDelete() tea.Cmd {
	if !s.cursor.valid(s.len()) {
		return nil
	}

	ctx, api := s.ctx, s.api
	var del func() error
	switch i := s.cursor.idx; s.section {
	case sectionAnalyses:
		id := s.analyses[i].ID
		del = func() error { return api.DeleteAnalysis(ctx, id) }
	case sectionChats:
		id := s.chats[i].ID
		del = func() error { return api.DeleteChat(ctx, id) }
	default:
		id := s.edits[i].ID
		del = func() error { return api.DeleteEdit(ctx, id) }
	}

	return func() tea.Msg {
		return archiveDeletedMsg{err: del()}
	}
}
