// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/dia-companion/internal/adapter"
)

const (
	msgServerUnavailable   = "Отсутствует сеть или Сервер недоступен"
	msgSessionExpired      = "Сессия истекла, войдите снова"
	msgWrongCredentials    = "Неверный email или пароль."
	msgUserExists          = "Пользователь с таким email уже существует"
	msgAssistantDown       = "Ассистент недоступен. Попробуйте позже."
	msgFillAllFields       = "Пожалуйста, заполните все поля."
	msgPasswordsDiffer     = "Пароли не совпадают"
	msgRegistered          = "Регистрация прошла успешно! Теперь вы можете войти."
	msgNothingToImport     = "Нет новых записей для импорта. Возможно, все записи в файле уже существуют в дневнике."
	msgNoDataToExport      = "Нет данных для экспорта."
	msgNotEnoughRecords    = "Нужно как минимум 3 записи для анализа."
	msgCannotDeleteSelf    = "Вы не можете удалить свою собственную учетную запись."
	msgNothingToCopy       = "Нечего копировать"
	msgCopied              = "Скопировано"
	msgEmptyList           = "Нет записей"
	msgNeedOneMeasurement  = "Введите хотя бы один показатель: глюкозу или давление."
	msgChatFailed          = "К сожалению, произошла ошибка. Пожалуйста, попробуйте еще раз."
	msgImageAnalysisFailed = "Не удалось проанализировать изображение. Попробуйте снова."
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnauthorized):
		return msgSessionExpired
	case errors.Is(err, adapter.ErrBadGateway):
		return msgAssistantDown
	}
	return humanizeServerUnavailableError(err)
}

func humanizeLoginError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return msgWrongCredentials
	case errors.Is(err, adapter.ErrConflict):
		return msgUserExists
	}
	return humanizeServerUnavailableError(err)
}
