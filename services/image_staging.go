package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	"hotel-admin-backend/errors"
	"hotel-admin-backend/models"
	"hotel-admin-backend/utils"
)

const (
	maxImagesPerRoom = 5
	maxImageBytes    = 5 << 20 // 5 MiB per file
)

// ImageFile is one file of an upload batch as delivered by the
// file-selection surface: reported name, size, media type and content.
type ImageFile struct {
	Name string
	Size int64
	Type string
	Data []byte
}

// StagingResult reports what a batch produced: the staged images in
// selection order, plus one notice per skipped file.
type StagingResult struct {
	Staged  []models.StagedImage
	Skipped []utils.Notice
}

// stageBatch applies the staging rules: a batch over the cap is rejected
// whole; non-image or oversized files are skipped individually with a
// notice; accepted files are encoded one by one so the staged order
// always matches selection order.
func stageBatch(files []ImageFile) (StagingResult, error) {
	if len(files) > maxImagesPerRoom {
		return StagingResult{}, errors.NewAppError(errors.ErrCodeTooManyImages, "Maximum 5 images allowed", nil)
	}

	var result StagingResult
	for _, file := range files {
		if !strings.HasPrefix(file.Type, "image/") {
			result.Skipped = append(result.Skipped, utils.Notice{
				Message:  "Only image files are allowed",
				Severity: utils.SeverityError,
			})
			continue
		}

		if file.Size > maxImageBytes {
			result.Skipped = append(result.Skipped, utils.Notice{
				Message:  fmt.Sprintf("Image %s is too large (max 5MB)", file.Name),
				Severity: utils.SeverityError,
			})
			continue
		}

		result.Staged = append(result.Staged, models.StagedImage{
			Name: file.Name,
			Data: encodeDataURI(file.Type, file.Data),
			Type: file.Type,
		})
	}
	return result, nil
}

func encodeDataURI(mediaType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}
