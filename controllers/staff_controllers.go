package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/prameswara/restofoh/models"
	"github.com/prameswara/restofoh/utils"
)

var staffRoles = map[string]bool{
	"manager": true,
	"server":  true,
	"host":    true,
	"chef":    true,
	"cleaner": true,
}

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// GetAllStaff -> seluruh staff, bisa difilter ?role=
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	query := sc.DB.Order("name ASC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", staff)
}

// GetStaffByID
func (sc *StaffController) GetStaffByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("staff_id"))
	var member models.Staff
	if err := sc.DB.First(&member, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff detail", member)
}

// CreateStaff
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var body struct {
		Name  string `json:"name" binding:"required"`
		Role  string `json:"role" binding:"required"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !staffRoles[body.Role] {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown role %q", body.Role))
		return
	}

	member := models.Staff{
		Name:   body.Name,
		Role:   body.Role,
		Phone:  body.Phone,
		Email:  body.Email,
		Active: true,
	}
	if err := sc.DB.Create(&member).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Staff created", member)
}

// UpdateStaff
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("staff_id"))

	var body struct {
		Name   *string `json:"name"`
		Role   *string `json:"role"`
		Phone  *string `json:"phone"`
		Email  *string `json:"email"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var member models.Staff
	if err := sc.DB.First(&member, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Role != nil {
		if !staffRoles[*body.Role] {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown role %q", *body.Role))
			return
		}
		member.Role = *body.Role
	}
	if body.Name != nil {
		member.Name = *body.Name
	}
	if body.Phone != nil {
		member.Phone = *body.Phone
	}
	if body.Email != nil {
		member.Email = *body.Email
	}
	if body.Active != nil {
		member.Active = *body.Active
	}

	if err := sc.DB.Save(&member).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff updated", member)
}

// DeleteStaff
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("staff_id"))
	if err := sc.DB.Delete(&models.Staff{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff deleted", gin.H{"staff_id": id})
}
