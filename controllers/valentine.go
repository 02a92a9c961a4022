// controllers/valentine.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/services"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The valentine endpoints keep the public campaign API's envelope:
// {success:true,data} on success, {success:false,error,errorCode?} on
// failure.

func valentineOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func valentineFail(c *gin.Context, status int, message, errorCode string) {
	body := gin.H{"success": false, "error": message}
	if errorCode != "" {
		body["errorCode"] = errorCode
	}
	c.AbortWithStatusJSON(status, body)
}

var valentineWorkshops = []models.ValentineWorkshop{
	models.WorkshopTorno,
	models.WorkshopModelado,
	models.WorkshopPintura,
}

// ValentineGet dispatches action=list|stats|availability|topProspects|get
func ValentineGet(c *gin.Context) {
	switch c.Query("action") {
	case "list":
		valentineList(c)
	case "stats":
		valentineStats(c)
	case "availability":
		valentineAvailability(c)
	case "topProspects":
		valentineTopProspects(c)
	case "get":
		valentineGetOne(c)
	default:
		valentineFail(c, http.StatusBadRequest, "Acción no válida", "")
	}
}

// ValentinePost dispatches action=register|sendLastChanceCampaign
func ValentinePost(c *gin.Context) {
	switch c.Query("action") {
	case "register":
		valentineRegister(c)
	case "sendLastChanceCampaign":
		valentineSendLastChance(c)
	default:
		valentineFail(c, http.StatusBadRequest, "Acción no válida", "")
	}
}

// ValentinePut dispatches action=updateStatus
func ValentinePut(c *gin.Context) {
	if c.Query("action") != "updateStatus" {
		valentineFail(c, http.StatusBadRequest, "Acción no válida", "")
		return
	}
	valentineUpdateStatus(c)
}

// ValentineDelete dispatches action=delete
func ValentineDelete(c *gin.Context) {
	if c.Query("action") != "delete" {
		valentineFail(c, http.StatusBadRequest, "Acción no válida", "")
		return
	}
	valentineDeleteOne(c)
}

func valentineList(c *gin.Context) {
	var regs []models.ValentineRegistration
	query := config.DB.Order("created_at DESC")
	if workshop := c.Query("workshop"); workshop != "" {
		query = query.Where("workshop = ?", workshop)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&regs).Error; err != nil {
		valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		return
	}
	valentineOK(c, http.StatusOK, regs)
}

func valentineStats(c *gin.Context) {
	var regs []models.ValentineRegistration
	if err := config.DB.Find(&regs).Error; err != nil {
		valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		return
	}

	byWorkshop := map[models.ValentineWorkshop]int{}
	byStatus := map[models.ValentineStatus]int{}
	participants := 0
	for _, r := range regs {
		byStatus[r.Status]++
		if r.CountsAgainstCapacity() {
			byWorkshop[r.Workshop] += r.Participants
			participants += r.Participants
		}
	}

	valentineOK(c, http.StatusOK, gin.H{
		"totalRegistrations": len(regs),
		"totalParticipants":  participants,
		"byWorkshop":         byWorkshop,
		"byStatus":           byStatus,
	})
}

func valentineAvailability(c *gin.Context) {
	var regs []models.ValentineRegistration
	if err := config.DB.Find(&regs).Error; err != nil {
		valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		return
	}

	out := make([]services.WorkshopAvailability, 0, len(valentineWorkshops))
	for _, w := range valentineWorkshops {
		out = append(out, services.ComputeWorkshopAvailability(w, regs, Capacity))
	}
	valentineOK(c, http.StatusOK, out)
}

// valentineTopProspects lists past customers without a registration,
// biggest spenders first: the last-chance campaign audience.
func valentineTopProspects(c *gin.Context) {
	var customers []models.Customer
	err := config.DB.
		Where("is_active = ? AND email NOT IN (?)",
			true,
			config.DB.Model(&models.ValentineRegistration{}).Select("email")).
		Order("total_spent DESC").
		Limit(50).
		Find(&customers).Error
	if err != nil {
		valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		return
	}
	valentineOK(c, http.StatusOK, customers)
}

func valentineGetOne(c *gin.Context) {
	ref := c.Query("id")
	if ref == "" {
		valentineFail(c, http.StatusBadRequest, "Falta el parámetro id", "")
		return
	}

	var reg models.ValentineRegistration
	query := config.DB
	if id, err := uuid.Parse(ref); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("code = ?", ref)
	}
	if err := query.First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			valentineFail(c, http.StatusNotFound, "Inscripción no encontrada", "")
		} else {
			valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		}
		return
	}
	valentineOK(c, http.StatusOK, reg)
}

type ValentineRegisterInput struct {
	FullName        string                   `json:"fullName" binding:"required"`
	BirthDate       *time.Time               `json:"birthDate"`
	Phone           string                   `json:"phone" binding:"required"`
	Email           string                   `json:"email" binding:"required,email"`
	Workshop        models.ValentineWorkshop `json:"workshop" binding:"required,oneof=torno_san_valentin modelado_san_valentin pintura_san_valentin"`
	Participants    int                      `json:"participants" binding:"required,min=1,max=2"`
	PaymentProofURL string                   `json:"paymentProofUrl" binding:"required"`
}

func valentineRegister(c *gin.Context) {
	var input ValentineRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		valentineFail(c, http.StatusBadRequest, "Datos de inscripción no válidos: "+err.Error(), "")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		valentineFail(c, http.StatusBadRequest, "El número de teléfono no es válido", "")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var regs []models.ValentineRegistration
	if err := tx.Where("workshop = ?", input.Workshop).Find(&regs).Error; err != nil {
		tx.Rollback()
		valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		return
	}

	if err := services.CheckWorkshopCapacity(input.Workshop, input.Participants, regs, Capacity); err != nil {
		tx.Rollback()
		valentineFail(c, http.StatusBadRequest, err.Error(), services.ErrorCode(err))
		return
	}

	reg := models.ValentineRegistration{
		Code:            utils.NewValentineCode(),
		FullName:        input.FullName,
		BirthDate:       input.BirthDate,
		Phone:           input.Phone,
		Email:           input.Email,
		Workshop:        input.Workshop,
		Participants:    input.Participants,
		PaymentProofURL: input.PaymentProofURL,
		Status:          models.ValentinePending,
	}

	if err := tx.Create(&reg).Error; err != nil {
		tx.Rollback()
		valentineFail(c, http.StatusInternalServerError, "No se pudo guardar la inscripción", "")
		return
	}

	tx.Commit()

	if Notifier != nil {
		Notifier.SendValentineConfirmation(&reg)
	}

	valentineOK(c, http.StatusCreated, reg)
}

type ValentineStatusInput struct {
	ID     string                 `json:"id" binding:"required"`
	Status models.ValentineStatus `json:"status" binding:"required,oneof=pending confirmed cancelled attended"`
}

func valentineUpdateStatus(c *gin.Context) {
	var input ValentineStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		valentineFail(c, http.StatusBadRequest, "Datos no válidos: "+err.Error(), "")
		return
	}

	var reg models.ValentineRegistration
	query := config.DB
	if id, err := uuid.Parse(input.ID); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("code = ?", input.ID)
	}
	if err := query.First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			valentineFail(c, http.StatusNotFound, "Inscripción no encontrada", "")
		} else {
			valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		}
		return
	}

	if !services.CanTransitionValentine(reg.Status, input.Status) {
		valentineFail(c, http.StatusBadRequest, "Cambio de estado no permitido", "INVALID_STATUS_TRANSITION")
		return
	}

	reg.Status = input.Status
	if err := config.DB.Save(&reg).Error; err != nil {
		valentineFail(c, http.StatusInternalServerError, "No se pudo actualizar la inscripción", "")
		return
	}

	valentineOK(c, http.StatusOK, reg)
}

func valentineDeleteOne(c *gin.Context) {
	ref := c.Query("id")
	if ref == "" {
		valentineFail(c, http.StatusBadRequest, "Falta el parámetro id", "")
		return
	}

	query := config.DB
	if id, err := uuid.Parse(ref); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("code = ?", ref)
	}

	result := query.Delete(&models.ValentineRegistration{})
	if result.Error != nil {
		valentineFail(c, http.StatusInternalServerError, "No se pudo eliminar la inscripción", "")
		return
	}
	if result.RowsAffected == 0 {
		valentineFail(c, http.StatusNotFound, "Inscripción no encontrada", "")
		return
	}

	valentineOK(c, http.StatusOK, gin.H{"deleted": true})
}

type LastChanceInput struct {
	Message string `json:"message"`
}

// valentineSendLastChance sends the campaign to every prospect with the
// provider throttle. A send failure is logged per recipient and never
// aborts the run.
func valentineSendLastChance(c *gin.Context) {
	var input LastChanceInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		valentineFail(c, http.StatusBadRequest, "Datos no válidos", "")
		return
	}
	message := input.Message
	if message == "" {
		message = "[Nombre], ¡última oportunidad! Quedan pocas plazas para los talleres de San Valentín de Alma Cerámica."
	}

	var customers []models.Customer
	err := config.DB.
		Where("is_active = ? AND phone <> '' AND email NOT IN (?)",
			true,
			config.DB.Model(&models.ValentineRegistration{}).Select("email")).
		Order("total_spent DESC").
		Find(&customers).Error
	if err != nil {
		valentineFail(c, http.StatusInternalServerError, "Error interno", "")
		return
	}

	if Notifier == nil {
		valentineFail(c, http.StatusInternalServerError, "Notificaciones no configuradas", "")
		return
	}

	prospects := make([]services.Prospect, len(customers))
	for i, cust := range customers {
		prospects[i] = services.Prospect{Name: cust.Name, Phone: cust.Phone}
	}

	sent := Notifier.SendLastChanceCampaign(uuid.Nil, prospects, message)
	log.Printf("Last-chance campaign: %d/%d messages sent", sent, len(prospects))

	valentineOK(c, http.StatusOK, gin.H{"sent": sent, "total": len(prospects)})
}
