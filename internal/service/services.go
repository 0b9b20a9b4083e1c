package service

import (
	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
)

type Services struct {
	DiaryService     DiaryService
	LabService       LabService
	ArchiveService   ArchiveService
	AssistantService AssistantService
	AdminService     AdminService
	AuthService      AuthService
	AppInfoService   AppInfoService
}

// NewServices wires every service to storages. ai may be nil when no AI key
// is configured.
func NewServices(storages *store.Storages, ai adapter.Assistant, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DiaryService:     NewDiaryService(storages.Diary, storages.RecordEdits, logger),
		LabService:       NewLabService(storages.LabResults, logger),
		ArchiveService:   NewArchiveService(storages.Analyses, storages.Chats, storages.RecordEdits, logger),
		AssistantService: NewAssistantService(ai, storages, logger),
		AdminService:     NewAdminService(storages.Users, logger),
		AuthService:      NewAuthService(storages.Users, cfg.App, logger),
		AppInfoService:   appInfo,
	}, nil
}
