package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

type labsMode int

const (
	labsList labsMode = iota
	labsType
	labsForm
	labsConfirm
)

const (
	labFieldFile = iota
	labFieldDatetime
)

const (
	msgWrongFileType = "Неверный тип файла. Пожалуйста, загрузите изображение."
	msgFileTooLarge  = "Файл слишком большой. Максимальный размер: 5 МБ."
)

var labTypes = []models.LabResultType{models.LabResultBlood, models.LabResultUrine, models.LabResultOther}

type labsLoadedMsg struct {
	labs []models.LabResult
	err  error
}

type labUploadedMsg struct {
	lab models.LabResult
	err error
}

type labDeletedMsg struct {
	err error
}

// labsScreen lists uploaded laboratory results and uploads new images.
type labsScreen struct {
	ctx context.Context
	api adapter.ServerAdapter
	now func() time.Time

	labs    []models.LabResult
	cursor  cursor
	loading bool
	mode    labsMode

	typeCursor cursor
	form       form
	formErr    string
	uploading  bool
	confirm    *confirmModel
}

func newLabsScreen(ctx context.Context, api adapter.ServerAdapter) *labsScreen {
	return &labsScreen{ctx: ctx, api: api, now: time.Now}
}

func (s *labsScreen) Init() tea.Cmd {
	s.loading = true
	return s.cmdLoad()
}

func (s *labsScreen) Capturing() bool {
	return s.mode != labsList
}

func (s *labsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case labsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			return failed("Не удалось загрузить анализы", msg.err)
		}
		s.labs = msg.labs
		s.cursor.clamp(len(s.labs))
		return nil
	case labUploadedMsg:
		s.uploading = false
		switch {
		case errors.Is(msg.err, utils.ErrNotAnImage):
			s.formErr = msgWrongFileType
			return nil
		case errors.Is(msg.err, utils.ErrImageTooLarge):
			s.formErr = msgFileTooLarge
			return nil
		case msg.err != nil:
			return failed("Не удалось загрузить файл", msg.err)
		}
		s.mode = labsList
		return tea.Batch(notice("Файл "+msg.lab.FileName+" загружен"), s.cmdLoad())
	case labDeletedMsg:
		if msg.err != nil {
			return failed("Не удалось удалить анализ", msg.err)
		}
		return tea.Batch(notice("Анализ удален"), s.cmdLoad())
	case tea.KeyMsg:
		return s.updateKey(msg)
	}

	if s.mode == labsForm {
		return s.form.update(msg)
	}
	return nil
}

func (s *labsScreen) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch s.mode {
	case labsType:
		switch {
		case key.Matches(msg, keys.esc):
			s.mode = labsList
		case key.Matches(msg, keys.enter):
			s.form = newForm("Файл", "Дата и время")
			s.form.inputs[labFieldFile].Placeholder = "/path/to/scan.png"
			s.form.set(labFieldDatetime, s.now().Format(recordDatetimeLayout))
			s.formErr = ""
			s.mode = labsForm
		default:
			s.typeCursor.move(msg, len(labTypes))
		}
		return nil
	case labsForm:
		return s.updateForm(msg)
	case labsConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			s.confirm = nil
			s.mode = labsList
			if l, ok := s.current(); ok {
				return s.cmdDelete(l.ID)
			}
		case key.Matches(msg, keys.no, keys.esc):
			s.confirm = nil
			s.mode = labsList
		}
		return nil
	}

	if s.cursor.move(msg, len(s.labs)) {
		return nil
	}

	switch {
	case key.Matches(msg, keys.add):
		s.typeCursor = cursor{}
		s.mode = labsType
	case key.Matches(msg, keys.delete):
		if _, ok := s.current(); ok {
			s.confirm = &confirmModel{message: "Вы уверены, что хотите удалить этот анализ?"}
			s.mode = labsConfirm
		}
	case key.Matches(msg, keys.reload):
		s.loading = true
		return s.cmdLoad()
	}
	return nil
}

func (s *labsScreen) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		s.mode = labsList
		return nil
	case key.Matches(msg, keys.enter):
		if s.uploading {
			return nil
		}

		path := s.form.value(labFieldFile)
		if path == "" {
			s.formErr = msgFillAllFields
			return nil
		}
		datetime := models.ParseDatetime(s.form.value(labFieldDatetime))
		if datetime.IsZero() {
			s.formErr = msgDatetimeFormat
			return nil
		}

		s.formErr = ""
		s.uploading = true
		return s.cmdUpload(path, labTypes[s.typeCursor.idx], datetime.Format(recordDatetimeLayout))
	}
	return s.form.update(msg)
}

func (s *labsScreen) current() (models.LabResult, bool) {
	if !s.cursor.valid(len(s.labs)) {
		return models.LabResult{}, false
	}
	return s.labs[s.cursor.idx], true
}

func (s *labsScreen) HotKeys() string {
	switch s.mode {
	case labsType:
		return "↑/↓: тип │ enter: выбрать │ esc: отмена"
	case labsForm:
		return "tab: след. поле │ enter: загрузить │ esc: отмена"
	case labsConfirm:
		return "y: да │ n: нет"
	}
	return "↑/↓: навигация │ a: загрузить │ ctrl+d: удалить │ r: обновить"
}

func (s *labsScreen) View() string {
	switch s.mode {
	case labsType:
		var b strings.Builder
		b.WriteString("Тип анализа\n\n")
		for i, t := range labTypes {
			b.WriteString(cursorMark(i == s.typeCursor.idx) + " " + labTypeLabel(t) + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	case labsForm:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Загрузка: " + labTypeLabel(labTypes[s.typeCursor.idx])))
		b.WriteString("\n\n")
		b.WriteString(s.form.view())
		if s.uploading {
			b.WriteString("\n\n[Загрузка...]")
		}
		if s.formErr != "" {
			b.WriteString("\n\nОшибка: " + s.formErr)
		}
		return b.String()
	case labsConfirm:
		return s.confirm.View()
	}

	if s.loading {
		return "Загрузка..."
	}
	if len(s.labs) == 0 {
		return "Анализы еще не загружены"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-16s │ %-12s │ %s\n", "Дата", "Тип", "Файл"))
	b.WriteString("  " + strings.Repeat("─", 17) + "┼" + strings.Repeat("─", 14) + "┼" + strings.Repeat("─", 24) + "\n")
	for i, l := range s.labs {
		b.WriteString(fmt.Sprintf("%s %-16s │ %-12s │ %s\n",
			cursorMark(i == s.cursor.idx),
			fitText(l.Datetime, 16),
			labTypeLabel(l.Type),
			fitText(l.FileName, 40),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *labsScreen) cmdLoad() tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		labs, err := api.ListLabResults(ctx)
		return labsLoadedMsg{labs: labs, err: err}
	}
}

func (s *labsScreen) cmdUpload(path string, labType models.LabResultType, datetime string) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		img, err := utils.ReadImageFile(path)
		if err != nil {
			return labUploadedMsg{err: err}
		}

		lab, err := api.AddLabResult(ctx, models.LabResult{
			Datetime:    datetime,
			Type:        labType,
			FileName:    img.Name,
			FileType:    img.MIMEType,
			FileContent: img.Content,
		})
		return labUploadedMsg{lab: lab, err: err}
	}
}

func (s *labsScreen) cmdDelete(id string) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		return labDeletedMsg{err: api.DeleteLabResult(ctx, id)}
	}
}
