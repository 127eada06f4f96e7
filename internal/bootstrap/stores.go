package bootstrap

import (
	"github.com/voiceowl/transcription-backend/internal/streaming"
	"github.com/voiceowl/transcription-backend/internal/transcription"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideStreamingStore(db *gorm.DB) *streaming.Store {
	return streaming.NewStore(db)
}

func ProvideTranscriptionStore(db *gorm.DB) *transcription.Store {
	return transcription.NewStore(db)
}

func RunMigrations(streamingStore *streaming.Store, transcriptionStore *transcription.Store) error {
	if err := streamingStore.Migrate(); err != nil {
		return err
	}
	return transcriptionStore.Migrate()
}

var StoresModule = fx.Options(
	fx.Provide(
		ProvideStreamingStore,
		ProvideTranscriptionStore,
	),
	fx.Invoke(RunMigrations),
)
