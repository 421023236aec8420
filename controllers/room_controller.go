package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin-backend/models"
	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"
	"hotel-admin-backend/validator"
)

// RoomController serves the room listing pages. The sample dataset backs
// the management grid; the rooms created through the wizard live in the
// durable store and are exposed separately.
type RoomController struct {
	Store   *services.MockStore
	Durable *services.RoomStore
}

func NewRoomController(store *services.MockStore, durable *services.RoomStore) *RoomController {
	return &RoomController{Store: store, Durable: durable}
}

// GET /api/rooms?type=&status=&search=
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	rooms, err := ctrl.Store.Rooms(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.SampleRoom
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validator.ValidateSampleRoom(&room); err != nil {
		respondError(c, err)
		return
	}

	created, err := ctrl.Store.AddRoom(c.Request.Context(), room)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONNotice(c, http.StatusCreated, created, "Room created", utils.SeveritySuccess)
}

// PUT /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	var update services.SampleRoomUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	room, err := ctrl.Store.UpdateRoom(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DELETE /api/rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	room, err := ctrl.Store.DeleteRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONNotice(c, http.StatusOK, room, "Room deleted", utils.SeverityInfo)
}

// GET /api/rooms/persisted
func (ctrl *RoomController) GetPersistedRooms(c *gin.Context) {
	rooms, err := ctrl.Durable.Rooms()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
