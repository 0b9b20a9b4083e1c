package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/dia-companion/models"
)

// GreetingText opens every assistant conversation.
const GreetingText = "Здравствуйте! Я ваш AI-ассистент по вопросам диабета. Чем могу помочь? " +
	"Вы можете задать вопросы о питании, физических нагрузках или общие вопросы о диабете."

// DefaultImagePrompt is used when an image is sent without a prompt.
const DefaultImagePrompt = "Проанализируй это блюдо с точки зрения диабетика. " +
	"Оцени примерное количество углеводов, белков и жиров. " +
	"Дай рекомендации, подходит ли это блюдо для рациона."

const analysisPromptTemplate = `Проанализируй следующие данные о здоровье пациента с диабетом. Данные отсортированы по дате, новые сначала.

Данные:
%s
%s
Основываясь на этих данных и актуальной медицинской информации из веба, предоставь краткий анализ и общие рекомендации по трем направлениям:
1. Медицинские аспекты: на что обратить внимание, есть ли опасные тенденции (только общие наблюдения, без конкретных медицинских назначений).
2. Питание: общие рекомендации с учетом колебаний уровня глюкозы.
3. Физические нагрузки: какие виды активности могут быть полезны.

Ответ должен быть структурированным, в формате Markdown. Будь краток и ясен.
Важно: укажи, что эта информация не заменяет консультацию врача.`

func buildAnalysisPrompt(records []models.HealthRecord, labs []models.LabResult) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding records: %w", err)
	}

	var labNote string
	if len(labs) > 0 {
		lines := make([]string, 0, len(labs)+1)
		lines = append(lines, "\nК запросу приложены изображения последних лабораторных анализов:")
		for i, lab := range labs {
			lines = append(lines, fmt.Sprintf("%d. %s, тип: %s, файл: %s", i+1, lab.Datetime, lab.Type, lab.FileName))
		}
		labNote = strings.Join(lines, "\n") + "\n"
	}

	return fmt.Sprintf(analysisPromptTemplate, data, labNote), nil
}
