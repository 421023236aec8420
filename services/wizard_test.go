package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
)

func newTestWizard(t *testing.T) (*WizardService, *RoomStore, *ActivityLog) {
	t.Helper()

	db := newTestDB(t)
	store := NewRoomStore(db)
	activities := NewActivityLog(db)
	return NewWizardService(store, activities, 0), store, activities
}

func basicInfo() models.BasicInfoForm {
	return models.BasicInfoForm{
		RoomNumber:    "101",
		RoomType:      "double",
		Floor:         "2",
		MaxGuests:     "2",
		PricePerNight: "150",
	}
}

func jpeg(name string) ImageFile {
	return ImageFile{Name: name, Size: 1024, Type: "image/jpeg", Data: []byte("fake")}
}

// advanceToPreview drives a session through steps 1-3 with valid input.
func advanceToPreview(t *testing.T, wizard *WizardService, id string) {
	t.Helper()

	fields, err := wizard.SubmitBasicInfo(id, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)

	require.NoError(t, wizard.SubmitFeatures(id, []models.Feature{"wifi", "tv"}, []models.Service{"breakfast"}))

	_, err = wizard.StageImages(id, []ImageFile{jpeg("front.jpg")})
	require.NoError(t, err)
	require.NoError(t, wizard.ConfirmImages(id))
}

func TestWizardHappyPath(t *testing.T) {
	wizard, store, activities := newTestWizard(t)

	session := wizard.NewSession()
	assert.Equal(t, models.StepBasicInfo, session.Step)

	advanceToPreview(t, wizard, session.ID)

	room, err := wizard.Submit(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ROOM-\d+-\d+$`), room.ID)
	assert.Equal(t, 101, room.Number)
	assert.Equal(t, models.RoomTypeDouble, room.Type)
	assert.Equal(t, "Room 101", room.Name)
	assert.Equal(t, 2, room.MaxGuests)
	assert.Equal(t, 150, room.Price)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)
	assert.NotEmpty(t, room.CreatedAt)
	assert.Equal(t, room.CreatedAt, room.LastCleaned)

	rooms, err := store.Rooms()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, room.ID, rooms[0].ID)

	entries, err := activities.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityRoomAdded, entries[0].Type)
	assert.Equal(t, "New room added: Room 101 (Room 101)", entries[0].Message)

	// The session is gone once the room is saved.
	_, err = wizard.Session(session.ID)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSessionNotFound))
}

func TestWizardBasicInfoRejectionKeepsStep(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	form := basicInfo()
	form.PricePerNight = "10"
	form.RoomName = "Garden View"
	form.Description = "Quiet corner room"

	fields, err := wizard.SubmitBasicInfo(session.ID, form)
	require.NoError(t, err)
	assert.Contains(t, fields, "pricePerNight")

	current, err := wizard.Session(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepBasicInfo, current.Step)

	// Optional fields land in the draft even when the step is rejected.
	assert.Equal(t, "Garden View", current.Draft.RoomName)
	assert.Equal(t, "Quiet corner room", current.Draft.Description)
	assert.Empty(t, current.Draft.PricePerNight)
}

func TestWizardFeaturesRequired(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	fields, err := wizard.SubmitBasicInfo(session.ID, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)

	err = wizard.SubmitFeatures(session.ID, nil, []models.Service{"spa"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	current, err := wizard.Session(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepFeatures, current.Step)
	// The failed selection is still recorded on the draft.
	assert.Equal(t, []models.Service{"spa"}, current.Draft.Services)
}

func TestWizardStepOrderEnforced(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	err := wizard.SubmitFeatures(session.ID, []models.Feature{"wifi"}, nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStep))

	_, err = wizard.StageImages(session.ID, []ImageFile{jpeg("a.jpg")})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStep))

	_, err = wizard.Submit(context.Background(), session.ID)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStep))
}

func TestWizardStageImagesBatchOverLimit(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	fields, err := wizard.SubmitBasicInfo(session.ID, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NoError(t, wizard.SubmitFeatures(session.ID, []models.Feature{"wifi"}, nil))

	batch := make([]ImageFile, 6)
	for i := range batch {
		batch[i] = jpeg("img.jpg")
	}

	_, err = wizard.StageImages(session.ID, batch)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTooManyImages))

	// Nothing from the oversized batch is staged.
	current, err := wizard.Session(session.ID)
	require.NoError(t, err)
	assert.Empty(t, current.Draft.Images)
}

func TestWizardStageImagesSkipsInvalidFiles(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	fields, err := wizard.SubmitBasicInfo(session.ID, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NoError(t, wizard.SubmitFeatures(session.ID, []models.Feature{"wifi"}, nil))

	batch := []ImageFile{
		jpeg("first.jpg"),
		{Name: "notes.pdf", Size: 1024, Type: "application/pdf", Data: []byte("pdf")},
		{Name: "huge.jpg", Size: 6 << 20, Type: "image/jpeg", Data: []byte("big")},
		jpeg("second.jpg"),
	}

	result, err := wizard.StageImages(session.ID, batch)
	require.NoError(t, err)

	require.Len(t, result.Staged, 2)
	assert.Equal(t, "first.jpg", result.Staged[0].Name)
	assert.Equal(t, "second.jpg", result.Staged[1].Name)
	assert.Equal(t, "data:image/jpeg;base64,ZmFrZQ==", result.Staged[0].Data)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "Only image files are allowed", result.Skipped[0].Message)
	assert.Equal(t, "Image huge.jpg is too large (max 5MB)", result.Skipped[1].Message)
}

func TestWizardStageImagesReplacesBatch(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	fields, err := wizard.SubmitBasicInfo(session.ID, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NoError(t, wizard.SubmitFeatures(session.ID, []models.Feature{"wifi"}, nil))

	_, err = wizard.StageImages(session.ID, []ImageFile{jpeg("old.jpg")})
	require.NoError(t, err)

	result, err := wizard.StageImages(session.ID, []ImageFile{jpeg("new-1.jpg"), jpeg("new-2.jpg")})
	require.NoError(t, err)
	require.Len(t, result.Staged, 2)
	assert.Equal(t, "new-1.jpg", result.Staged[0].Name)
}

func TestWizardRemoveImageReindexes(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	fields, err := wizard.SubmitBasicInfo(session.ID, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NoError(t, wizard.SubmitFeatures(session.ID, []models.Feature{"wifi"}, nil))

	_, err = wizard.StageImages(session.ID, []ImageFile{jpeg("a.jpg"), jpeg("b.jpg"), jpeg("c.jpg")})
	require.NoError(t, err)

	images, err := wizard.RemoveImage(session.ID, 1)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "a.jpg", images[0].Name)
	assert.Equal(t, "c.jpg", images[1].Name)

	_, err = wizard.RemoveImage(session.ID, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrImageIndex)
}

func TestWizardRemoveImageRequiresImageStep(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()
	advanceToPreview(t, wizard, session.ID)

	// Once the images are confirmed, removal is off the table.
	_, err := wizard.RemoveImage(session.ID, 0)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStep))

	current, err := wizard.Session(session.ID)
	require.NoError(t, err)
	require.Len(t, current.Draft.Images, 1)

	// The confirmed draft still submits with its image intact.
	room, err := wizard.Submit(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, room.Images, 1)
}

func TestWizardRemoveImageAfterRetreat(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()
	advanceToPreview(t, wizard, session.ID)

	require.NoError(t, wizard.Retreat(session.ID, models.StepImages))

	images, err := wizard.RemoveImage(session.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, images)

	// With the last image gone, confirming demands a fresh upload.
	err = wizard.ConfirmImages(session.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeImageRequired))
}

func TestWizardConfirmImagesRequiresOne(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	fields, err := wizard.SubmitBasicInfo(session.ID, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NoError(t, wizard.SubmitFeatures(session.ID, []models.Feature{"wifi"}, nil))

	err = wizard.ConfirmImages(session.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeImageRequired))

	_, err = wizard.StageImages(session.ID, []ImageFile{jpeg("a.jpg")})
	require.NoError(t, err)
	require.NoError(t, wizard.ConfirmImages(session.ID))

	current, err := wizard.Session(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPreview, current.Step)
}

func TestWizardRetreatOnlyBackward(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	fields, err := wizard.SubmitBasicInfo(session.ID, basicInfo())
	require.NoError(t, err)
	require.Empty(t, fields)

	err = wizard.Retreat(session.ID, models.StepImages)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStep))

	require.NoError(t, wizard.Retreat(session.ID, models.StepBasicInfo))

	current, err := wizard.Session(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepBasicInfo, current.Step)
	// Retreating never clears what was already entered.
	assert.Equal(t, "101", current.Draft.RoomNumber)
}

func TestWizardSubmitConflictKeepsSession(t *testing.T) {
	wizard, store, _ := newTestWizard(t)

	first := wizard.NewSession()
	advanceToPreview(t, wizard, first.ID)
	_, err := wizard.Submit(context.Background(), first.ID)
	require.NoError(t, err)

	second := wizard.NewSession()
	advanceToPreview(t, wizard, second.ID)
	_, err = wizard.Submit(context.Background(), second.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))

	rooms, err := store.Rooms()
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	// The session survives the failure so the user can fix the number.
	current, err := wizard.Session(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPreview, current.Step)
	assert.Equal(t, "101", current.Draft.RoomNumber)
}

func TestWizardCancel(t *testing.T) {
	wizard, _, _ := newTestWizard(t)
	session := wizard.NewSession()

	require.NoError(t, wizard.Cancel(session.ID))

	err := wizard.Cancel(session.ID)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSessionNotFound))
}

func TestWizardUnknownSession(t *testing.T) {
	wizard, _, _ := newTestWizard(t)

	_, err := wizard.Session("nope")
	assert.True(t, errors.HasCode(err, errors.ErrCodeSessionNotFound))
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}
