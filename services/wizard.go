package services

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
	"hotel-admin-backend/validator"
)

// WizardSession holds one in-progress room draft. Sessions are discarded
// on cancel or successful submit; there is no draft auto-save.
type WizardSession struct {
	ID    string            `json:"id"`
	Step  models.WizardStep `json:"step"`
	Draft models.RoomDraft  `json:"draft"`
}

// WizardService drives room-creation sessions through the four steps:
// basic info → features/services → images → preview.
type WizardService struct {
	mu          sync.Mutex
	sessions    map[string]*WizardSession
	store       *RoomStore
	activities  *ActivityLog
	submitDelay time.Duration
}

func NewWizardService(store *RoomStore, activities *ActivityLog, submitDelay time.Duration) *WizardService {
	return &WizardService{
		sessions:    make(map[string]*WizardSession),
		store:       store,
		activities:  activities,
		submitDelay: submitDelay,
	}
}

// NewSession opens a fresh session at step 1 with an empty draft.
func (s *WizardService) NewSession() WizardSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &WizardSession{
		ID:   uuid.NewString(),
		Step: models.StepBasicInfo,
	}
	s.sessions[session.ID] = session
	return *session
}

// Session returns a snapshot of the session state.
func (s *WizardService) Session(id string) (WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return WizardSession{}, err
	}
	return *session, nil
}

// Cancel abandons the session unconditionally, at any step.
func (s *WizardService) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// SubmitBasicInfo validates step 1 and advances on success. Every failing
// field is reported so the form can flag them all at once; the step stays
// unchanged when any check fails.
func (s *WizardService) SubmitBasicInfo(id string, form models.BasicInfoForm) (validator.FieldErrors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepBasicInfo {
		return nil, stepError(session.Step, models.StepBasicInfo)
	}

	// The optional fields land in the draft whether or not the step
	// validates.
	session.Draft.RoomName = form.RoomName
	session.Draft.Description = form.Description

	fields := validator.ValidateBasicInfo(form)
	if len(fields) > 0 {
		return fields, nil
	}

	session.Draft.RoomNumber = strings.TrimSpace(form.RoomNumber)
	session.Draft.RoomType = form.RoomType
	session.Draft.Floor = form.Floor
	session.Draft.MaxGuests = strings.TrimSpace(form.MaxGuests)
	session.Draft.PricePerNight = strings.TrimSpace(form.PricePerNight)
	session.Step = models.StepFeatures
	return nil, nil
}

// SubmitFeatures stores both selections, then enforces the step-2 rule:
// at least one feature, services optional.
func (s *WizardService) SubmitFeatures(id string, features []models.Feature, services []models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return err
	}
	if session.Step != models.StepFeatures {
		return stepError(session.Step, models.StepFeatures)
	}

	session.Draft.Features = features
	session.Draft.Services = services

	if err := validator.ValidateFeatures(features); err != nil {
		return err
	}

	session.Step = models.StepImages
	return nil
}

// StageImages replaces the staged batch with the accepted files from a new
// one. See image_staging.go for the per-file rules.
func (s *WizardService) StageImages(id string, files []ImageFile) (StagingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return StagingResult{}, err
	}
	if session.Step != models.StepImages {
		return StagingResult{}, stepError(session.Step, models.StepImages)
	}

	result, err := stageBatch(files)
	if err != nil {
		return StagingResult{}, err
	}

	session.Draft.Images = result.Staged
	return result, nil
}

// RemoveImage drops the staged image at index. The remaining images keep
// their relative order and are re-indexed from zero. Removal is only
// allowed on the staging step so a confirmed draft cannot lose its last
// image; retreating to the step re-enables it.
func (s *WizardService) RemoveImage(id string, index int) ([]models.StagedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepImages {
		return nil, stepError(session.Step, models.StepImages)
	}

	images := session.Draft.Images
	if index < 0 || index >= len(images) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Image not found", errors.ErrImageIndex)
	}

	session.Draft.Images = append(images[:index], images[index+1:]...)
	return session.Draft.Images, nil
}

// ConfirmImages advances past step 3; at least one staged image required.
func (s *WizardService) ConfirmImages(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return err
	}
	if session.Step != models.StepImages {
		return stepError(session.Step, models.StepImages)
	}

	if len(session.Draft.Images) == 0 {
		return errors.NewAppError(errors.ErrCodeImageRequired, "Please upload at least one room image", nil)
	}

	session.Step = models.StepPreview
	return nil
}

// Retreat moves back without validation; only backward moves are allowed.
func (s *WizardService) Retreat(id string, to models.WizardStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return err
	}

	if to < models.StepBasicInfo || to >= session.Step {
		return errors.NewAppError(errors.ErrCodeInvalidStep,
			fmt.Sprintf("Cannot go back to step %d from step %d", to, session.Step), nil)
	}

	session.Step = to
	return nil
}

// Preview projects the current draft; available at any step so the
// preview can refresh live as fields change.
func (s *WizardService) Preview(id string) (models.RoomPreview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(id)
	if err != nil {
		return models.RoomPreview{}, err
	}
	return BuildPreview(session.Draft), nil
}

// Submit persists the drafted room. On conflict or storage failure the
// session is retained so the user can retry without re-entering data; on
// success it is discarded and an activity entry is logged.
func (s *WizardService) Submit(ctx context.Context, id string) (models.Room, error) {
	s.mu.Lock()
	session, err := s.session(id)
	if err != nil {
		s.mu.Unlock()
		return models.Room{}, err
	}
	if session.Step != models.StepPreview {
		s.mu.Unlock()
		return models.Room{}, stepError(session.Step, models.StepPreview)
	}
	draft := session.Draft
	s.mu.Unlock()

	// Emulated network latency; kept configurable, zero by default.
	if s.submitDelay > 0 {
		select {
		case <-time.After(s.submitDelay):
		case <-ctx.Done():
			return models.Room{}, ctx.Err()
		}
	}

	now := time.Now()
	room := buildRoom(draft, now)

	if err := s.store.SaveRoom(room); err != nil {
		return models.Room{}, err
	}

	if err := s.activities.Append(RoomAddedEntry(room, now)); err != nil {
		log.Printf("⚠️ activity log append failed for %s: %v", room.ID, err)
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return room, nil
}

func (s *WizardService) session(id string) (*WizardSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeSessionNotFound, "Wizard session not found", errors.ErrSessionNotFound)
	}
	return session, nil
}

func stepError(current, want models.WizardStep) error {
	return errors.NewAppError(errors.ErrCodeInvalidStep,
		fmt.Sprintf("Wizard is on step %d, not step %d", current, want), nil)
}

func buildRoom(draft models.RoomDraft, now time.Time) models.Room {
	number, _ := strconv.Atoi(draft.RoomNumber)
	guests, _ := strconv.Atoi(draft.MaxGuests)
	price, _ := strconv.ParseFloat(draft.PricePerNight, 64)

	name := draft.RoomName
	if name == "" {
		name = "Room " + draft.RoomNumber
	}

	timestamp := now.UTC().Format(time.RFC3339)
	return models.Room{
		ID:          newRoomID(now),
		Number:      number,
		Type:        models.RoomType(draft.RoomType),
		Name:        name,
		Floor:       models.Floor(draft.Floor),
		MaxGuests:   guests,
		Price:       int(price),
		Description: draft.Description,
		Features:    draft.Features,
		Services:    draft.Services,
		Images:      draft.Images,
		Status:      models.RoomStatusAvailable,
		CreatedAt:   timestamp,
		LastCleaned: timestamp,
	}
}

// newRoomID generates "ROOM-{millisecond timestamp}-{0..999}".
func newRoomID(now time.Time) string {
	return fmt.Sprintf("ROOM-%d-%d", now.UnixMilli(), rand.IntN(1000))
}
