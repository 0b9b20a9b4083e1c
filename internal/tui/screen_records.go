// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
)

type recordsMode int

const (
	recordsList recordsMode = iota
	recordsForm
	recordsConfirm
	recordsImport
	recordsExport
)

type recordsLoadedMsg struct {
	records []models.HealthRecord
	err     error
}

type recordSavedMsg struct {
	record models.HealthRecord
	edited bool
	err    error
}

type recordDeletedMsg struct {
	id  string
	err error
}

type recordsImportedMsg struct {
	result models.ImportResult
	err    error
}

type recordsExportedMsg struct {
	path string
	err  error
}

// recordsScreen is the diary: the history table, the add/edit form, and
// CSV import and export.
type recordsScreen struct {
	ctx context.Context
	api adapter.ServerAdapter
	now func() time.Time

	records []models.HealthRecord
	cursor  cursor
	loading bool
	mode    recordsMode

	form     form
	editing  *models.HealthRecord
	formErr  string
	saving   bool
	confirm  *confirmModel
	pathTask *promptModel
}

func newRecordsScreen(ctx context.Context, api adapter.ServerAdapter) *recordsScreen {
	return &recordsScreen{ctx: ctx, api: api, now: time.Now}
}

func (s *recordsScreen) Init() tea.Cmd {
	s.loading = true
	return s.cmdLoad()
}

func (s *recordsScreen) Capturing() bool {
	return s.mode != recordsList
}

func (s *recordsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			return failed("Не удалось загрузить дневник", msg.err)
		}
		s.records = msg.records
		models.SortByDatetimeDesc(s.records)
		s.cursor.clamp(len(s.records))
		return nil
	case recordSavedMsg:
		s.saving = false
		if msg.err != nil {
			return failed("Не удалось сохранить запись", msg.err)
		}
		s.closeForm()
		if msg.edited {
			return tea.Batch(notice("Запись обновлена"), s.cmdLoad())
		}
		return tea.Batch(notice("Запись добавлена"), s.cmdLoad())
	case recordDeletedMsg:
		if msg.err != nil {
			return failed("Не удалось удалить запись", msg.err)
		}
		return tea.Batch(notice("Запись удалена"), s.cmdLoad())
	case recordsImportedMsg:
		if msg.err != nil {
			return failed("Ошибка при импорте файла", msg.err)
		}
		if msg.result.Imported == 0 {
			return notice(msgNothingToImport)
		}
		return tea.Batch(notice(fmt.Sprintf("Успешно импортировано %d записей.", msg.result.Imported)), s.cmdLoad())
	case recordsExportedMsg:
		if errors.Is(msg.err, adapter.ErrNotFound) {
			return alert(msgNoDataToExport)
		}
		if msg.err != nil {
			return failed("Не удалось экспортировать дневник", msg.err)
		}
		return notice("Дневник сохранен в " + msg.path)
	case tea.KeyMsg:
		return s.updateKey(msg)
	}

	switch s.mode {
	case recordsForm:
		return s.form.update(msg)
	case recordsImport, recordsExport:
		return s.pathTask.update(msg)
	}
	return nil
}

func (s *recordsScreen) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch s.mode {
	case recordsForm:
		return s.updateForm(msg)
	case recordsConfirm:
		return s.updateConfirm(msg)
	case recordsImport, recordsExport:
		return s.updatePath(msg)
	}

	if s.cursor.move(msg, len(s.records)) {
		return nil
	}

	switch {
	case key.Matches(msg, keys.add):
		s.openForm(nil)
		return nil
	case key.Matches(msg, keys.edit, keys.enter):
		if r, ok := s.current(); ok {
			s.openForm(&r)
		}
		return nil
	case key.Matches(msg, keys.delete):
		if r, ok := s.current(); ok {
			s.confirm = &confirmModel{message: "Вы уверены, что хотите удалить запись от " + r.Datetime + "?"}
			s.mode = recordsConfirm
		}
		return nil
	case key.Matches(msg, keys.reload):
		s.loading = true
		return s.cmdLoad()
	case key.Matches(msg, keys.importCSV):
		s.pathTask = newPrompt("Импорт из CSV: путь к файлу", "diary.csv")
		s.mode = recordsImport
		return nil
	case key.Matches(msg, keys.exportCSV):
		s.pathTask = newPrompt("Экспорт в CSV: путь к файлу", "diary.csv")
		s.pathTask.input.SetValue("diary-" + s.now().Format("2006-01-02") + ".csv")
		s.mode = recordsExport
		return nil
	}
	return nil
}

func (s *recordsScreen) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		s.closeForm()
		return nil
	case key.Matches(msg, keys.enter):
		if s.saving {
			return nil
		}

		base := models.HealthRecord{}
		if s.editing != nil {
			base = *s.editing
		}
		record, summary, ok := recordFromForm(s.ctx, &s.form, base)
		s.formErr = summary
		if !ok {
			return nil
		}

		s.saving = true
		return s.cmdSave(record, s.editing != nil)
	}
	return s.form.update(msg)
}

func (s *recordsScreen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		s.confirm = nil
		s.mode = recordsList
		if r, ok := s.current(); ok {
			return s.cmdDelete(r.ID)
		}
	case key.Matches(msg, keys.no, keys.esc):
		s.confirm = nil
		s.mode = recordsList
	}
	return nil
}

func (s *recordsScreen) updatePath(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		s.pathTask = nil
		s.mode = recordsList
		return nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(s.pathTask.value())
		if path == "" {
			return nil
		}
		mode := s.mode
		s.pathTask = nil
		s.mode = recordsList
		if mode == recordsImport {
			return s.cmdImport(path)
		}
		return s.cmdExport(path)
	}
	return s.pathTask.update(msg)
}

func (s *recordsScreen) openForm(r *models.HealthRecord) {
	s.form = newRecordForm()
	s.editing = r
	s.formErr = ""
	if r != nil {
		fillRecordForm(&s.form, *r)
	} else {
		s.form.set(fieldDatetime, s.now().Format(recordDatetimeLayout))
	}
	s.mode = recordsForm
}

func (s *recordsScreen) closeForm() {
	s.editing = nil
	s.formErr = ""
	s.saving = false
	s.mode = recordsList
}

func (s *recordsScreen) current() (models.HealthRecord, bool) {
	if !s.cursor.valid(len(s.records)) {
		return models.HealthRecord{}, false
	}
	return s.records[s.cursor.idx], true
}

func (s *recordsScreen) HotKeys() string {
	switch s.mode {
	case recordsForm:
		return "tab: след. поле │ enter: сохранить │ esc: отмена"
	case recordsConfirm:
		return "y: да │ n: нет"
	case recordsImport, recordsExport:
		return "enter: подтвердить │ esc: отмена"
	}
	return "↑/↓: навигация │ a: добавить │ e: изменить │ ctrl+d: удалить │ i: импорт │ x: экспорт │ r: обновить"
}

func (s *recordsScreen) View() string {
	switch s.mode {
	case recordsForm:
		return s.viewForm()
	case recordsConfirm:
		return s.confirm.View()
	case recordsImport, recordsExport:
		return s.pathTask.View()
	}

	if s.loading {
		return "Загрузка..."
	}
	if len(s.records) == 0 {
		return msgEmptyList
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-16s │ %-8s │ %-8s │ %s\n", "Дата", "Глюкоза", "Давление", "Комментарий"))
	b.WriteString("  " + strings.Repeat("─", 17) + "┼" + strings.Repeat("─", 10) + "┼" + strings.Repeat("─", 10) + "┼" + strings.Repeat("─", 20) + "\n")
	for i, r := range s.records {
		b.WriteString(fmt.Sprintf("%s %-16s │ %-8s │ %-8s │ %s\n",
			cursorMark(i == s.cursor.idx),
			fitText(r.Datetime, 16),
			glucoseText(r),
			pressureText(r),
			fitText(r.Comment, 30),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *recordsScreen) viewForm() string {
	title := "Новая запись"
	if s.editing != nil {
		title = "Изменение записи"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(s.form.view())
	if s.saving {
		b.WriteString("\n\n[Сохранение...]")
	} else {
		b.WriteString("\n\n[Сохранить]")
	}
	if s.formErr != "" {
		b.WriteString("\n\nОшибка: ")
		b.WriteString(s.formErr)
	}
	return b.String()
}

func (s *recordsScreen) cmdLoad() tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		records, err := api.ListRecords(ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (s *recordsScreen) cmdSave(record models.HealthRecord, edited bool) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		var (
			saved models.HealthRecord
			err   error
		)
		if edited {
			saved, err = api.EditRecord(ctx, record)
		} else {
			saved, err = api.AddRecord(ctx, record)
		}
		return recordSavedMsg{record: saved, edited: edited, err: err}
	}
}

func (s *recordsScreen) cmdDelete(id string) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		return recordDeletedMsg{id: id, err: api.DeleteRecord(ctx, id)}
	}
}

func (s *recordsScreen) cmdImport(path string) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return recordsImportedMsg{err: err}
		}
		defer f.Close()

		result, err := api.ImportRecords(ctx, f)
		return recordsImportedMsg{result: result, err: err}
	}
}

func (s *recordsScreen) cmdExport(path string) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return recordsExportedMsg{err: err}
		}

		err = api.ExportRecords(ctx, f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(path)
		}
		return recordsExportedMsg{path: path, err: err}
	}
}
