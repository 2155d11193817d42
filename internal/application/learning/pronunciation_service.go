package learning

import (
	"context"

	"github.com/wordnest/backend/internal/domain/learning"
	"go.uber.org/zap"
)

// pronunciationFolder is the upload subfolder for pronunciation recordings.
const pronunciationFolder = "pronunciations"

// PronunciationService manages the spoken renderings attached to items.
type PronunciationService struct {
	prons  learning.PronunciationRepository
	items  learning.ItemRepository
	files  FileStore
	logger *zap.Logger
}

// NewPronunciationService creates a new PronunciationService
func NewPronunciationService(
	prons learning.PronunciationRepository,
	items learning.ItemRepository,
	files FileStore,
	logger *zap.Logger,
) *PronunciationService {
	return &PronunciationService{
		prons:  prons,
		items:  items,
		files:  files,
		logger: logger,
	}
}

// Create attaches a pronunciation to an item. An audio recording is optional;
// without one the text is left to client-side speech synthesis.
func (s *PronunciationService) Create(ctx context.Context, input CreatePronunciationInput) (*learning.Pronunciation, error) {
	if _, err := s.items.FindByID(ctx, input.ItemID); err != nil {
		return nil, err
	}

	pron, err := learning.NewPronunciation(input.ItemID, input.Text, input.Language)
	if err != nil {
		return nil, err
	}

	if file := resolveUpload(input.Files, SlotVoice); file != nil {
		url, err := s.files.Save(ctx, pronunciationFolder, file)
		if err != nil {
			return nil, err
		}
		pron.AudioURL = &url
	}

	if err := s.prons.Create(ctx, pron); err != nil {
		return nil, err
	}

	s.logger.Info("Pronunciation created",
		zap.Uint("item_id", pron.ItemID),
		zap.String("language", pron.Language))

	return pron, nil
}

// ListByItem returns all pronunciations attached to an item
func (s *PronunciationService) ListByItem(ctx context.Context, itemID uint) ([]learning.Pronunciation, error) {
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.prons.FindByItem(ctx, itemID)
}

// Update applies a partial update to a pronunciation. Empty fields are left
// unchanged; an uploaded recording replaces the current one.
func (s *PronunciationService) Update(ctx context.Context, id uint, input UpdatePronunciationInput) (*learning.Pronunciation, error) {
	pron, err := s.prons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Text != "" {
		pron.Text = input.Text
	}
	if input.Language != "" {
		pron.Language = input.Language
	}
	if file := resolveUpload(input.Files, SlotVoice); file != nil {
		url, err := s.files.Save(ctx, pronunciationFolder, file)
		if err != nil {
			return nil, err
		}
		pron.AudioURL = &url
	}

	if err := s.prons.Save(ctx, pron); err != nil {
		return nil, err
	}

	return pron, nil
}

// Delete removes a pronunciation
func (s *PronunciationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.prons.FindByID(ctx, id); err != nil {
		return err
	}
	return s.prons.Delete(ctx, id)
}
