package controllers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/models"
	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"
)

type FeaturesPayload struct {
	Features []models.Feature `json:"features"`
	Services []models.Service `json:"services"`
}

type BackPayload struct {
	Step models.WizardStep `json:"step" binding:"required"`
}

// WizardController exposes the four-step room creation flow. Every route
// except StartSession addresses a session by its id.
type WizardController struct {
	Wizard *services.WizardService
}

func NewWizardController(wizard *services.WizardService) *WizardController {
	return &WizardController{Wizard: wizard}
}

// POST /api/wizard
func (ctrl *WizardController) StartSession(c *gin.Context) {
	session := ctrl.Wizard.NewSession()
	utils.JSONSuccess(c, http.StatusCreated, session)
}

// GET /api/wizard/:id
func (ctrl *WizardController) GetSession(c *gin.Context) {
	session, err := ctrl.Wizard.Session(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// DELETE /api/wizard/:id
func (ctrl *WizardController) CancelSession(c *gin.Context) {
	if err := ctrl.Wizard.Cancel(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/wizard/:id/steps/basic
//
// Field errors come back as a map so the form can flag every failing
// field at once rather than stopping at the first.
func (ctrl *WizardController) SubmitBasicInfo(c *gin.Context) {
	var form models.BasicInfoForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	fields, err := ctrl.Wizard.SubmitBasicInfo(c.Param("id"), form)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(fields) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"fields":  fields,
			"notice":  utils.Notice{Message: "Please fill all required fields correctly", Severity: utils.SeverityError},
		})
		return
	}

	session, err := ctrl.Wizard.Session(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// POST /api/wizard/:id/steps/features
func (ctrl *WizardController) SubmitFeatures(c *gin.Context) {
	var payload FeaturesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := ctrl.Wizard.SubmitFeatures(c.Param("id"), payload.Features, payload.Services); err != nil {
		respondError(c, err)
		return
	}

	session, err := ctrl.Wizard.Session(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// POST /api/wizard/:id/images
//
// Multipart upload under the "images" field. The whole batch replaces
// whatever was staged before; files that fail the type or size checks
// are skipped with a warning notice, and a batch over the limit is
// rejected outright.
func (ctrl *WizardController) StageImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	headers := form.File["images"]
	files := make([]services.ImageFile, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			log.Printf("⚠️ could not open upload %s: %v", header.Filename, err)
			utils.JSONError(c, http.StatusBadRequest, "Could not read uploaded file")
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Could not read uploaded file")
			return
		}
		files = append(files, services.ImageFile{
			Name: header.Filename,
			Size: header.Size,
			Type: header.Header.Get("Content-Type"),
			Data: data,
		})
	}

	result, err := ctrl.Wizard.StageImages(c.Param("id"), files)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"images": result.Staged},
		"notices": result.Skipped,
	})
}

// DELETE /api/wizard/:id/images/:index
func (ctrl *WizardController) RemoveImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid image index")
		return
	}

	images, err := ctrl.Wizard.RemoveImage(c.Param("id"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"images": images})
}

// POST /api/wizard/:id/steps/images/confirm
func (ctrl *WizardController) ConfirmImages(c *gin.Context) {
	if err := ctrl.Wizard.ConfirmImages(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	session, err := ctrl.Wizard.Session(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// POST /api/wizard/:id/back
func (ctrl *WizardController) GoBack(c *gin.Context) {
	var payload BackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := ctrl.Wizard.Retreat(c.Param("id"), payload.Step); err != nil {
		respondError(c, err)
		return
	}

	session, err := ctrl.Wizard.Session(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// GET /api/wizard/:id/preview
func (ctrl *WizardController) GetPreview(c *gin.Context) {
	preview, err := ctrl.Wizard.Preview(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, preview)
}

// POST /api/wizard/:id/submit
func (ctrl *WizardController) Submit(c *gin.Context) {
	room, err := ctrl.Wizard.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"data":     room,
		"redirect": "/rooms",
		"notice":   utils.Notice{Message: "Room added successfully!", Severity: utils.SeveritySuccess},
	})
}
