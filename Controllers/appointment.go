package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"MediBook/Models"
	"MediBook/Payments"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

type AppointmentInput struct {
	DoctorName  string `json:"doctor_name" form:"doctor_name" binding:"required,min=5"`
	Date        string `json:"date" form:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" form:"time" binding:"required,datetime=15:04"`
	Description string `json:"description" form:"description" binding:"required,min=20"`
}

func FetchAppointments(c *gin.Context) {
	db := getScopedDB(c)

	appointments, err := Models.GetAppointments(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func FetchAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getScopedDB(c)

	appointment, err := Models.GetAppointment(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// createAppointment runs the booking sequence for an existing patient:
// insert the row, open a checkout session, persist the returned URL.
// The insert and the payment call are deliberately not wrapped in one
// transaction; a checkout failure leaves the row behind with status
// pending and no payment link.
func createAppointment(c *gin.Context, patient *Models.Patient, input AppointmentInput) *Models.Appointment {
	db := getScopedDB(c)

	appointment := Models.Appointment{
		DoctorName:  input.DoctorName,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
		PatientID:   patient.ID,
	}
	if err := Models.CreateAppointment(db, &appointment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil
	}

	// Re-read the patient so the checkout description reflects the row
	// as stored.
	stored, err := Models.GetPatient(db, patient.ID)
	if err != nil || stored == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Patient not found"})
		return nil
	}

	url, err := Payments.CreateCheckoutSession(stored.Name)
	if err != nil {
		log.Println("checkout session failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return nil
	}

	if err := Models.SetPaymentLink(db, &appointment, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil
	}
	return &appointment
}

func CreateAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getScopedDB(c)

	patient, err := Models.GetPatient(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var input AppointmentInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	appointment := createAppointment(c, patient, input)
	if appointment == nil {
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input AppointmentInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	appointment, err := Models.UpdateAppointment(db, id, Models.AppointmentUpdate{
		DoctorName:  input.DoctorName,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getScopedDB(c)

	appointment, err := Models.DeleteAppointment(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// Form surface: same sequence, redirect back to the patient on success.

func CreateAppointmentForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getScopedDB(c)

	patient, err := Models.GetPatient(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var input AppointmentInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	if appointment := createAppointment(c, patient, input); appointment == nil {
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/patients/%d", patient.ID))
}

func UpdateAppointmentForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input AppointmentInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	appointment, err := Models.UpdateAppointment(db, id, Models.AppointmentUpdate{
		DoctorName:  input.DoctorName,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/appointments/")
}

func DeleteAppointmentForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getScopedDB(c)

	appointment, err := Models.DeleteAppointment(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/appointments/")
}

func ExportAppointmentsExcel(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)

	var appointments []Models.Appointment
	var err error
	if input.DateFrom != "" && input.DateTo != "" {
		appointments, err = Models.GetAppointmentsBetween(db, input.DateFrom, input.DateTo)
	} else {
		appointments, err = Models.GetAppointments(db)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Time",
		"C1": "Doctor",
		"D1": "Patient ID",
		"E1": "Description",
		"F1": "Payment Status",
	}
	file := excelize.NewFile()
	sheet := "Appointments"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for cell, header := range headers {
		file.SetCellValue(sheet, cell, header)
	}

	for index := range appointments {
		appendRowAppointment(sheet, file, index, appointments)
	}

	filename := "./Appointments.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to write export file"})
		return
	}
	c.File(filename)
}

func appendRowAppointment(sheet string, file *excelize.File, index int, rows []Models.Appointment) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Date)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Time)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].DoctorName)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].PatientID)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Description)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].PaymentStatus)
}
