package Controllers

import (
	"fmt"
	"net/http"

	"MediBook/Models"

	"github.com/gin-gonic/gin"
)

type PatientInput struct {
	Name  string `json:"name" form:"name" binding:"required,min=5"`
	Phone string `json:"phone" form:"phone" binding:"required,len=10"`
	Email string `json:"email" form:"email" binding:"required,email"`
}

type PatientUpdateInput struct {
	Name  string `json:"name" form:"name" binding:"omitempty,min=5"`
	Phone string `json:"phone" form:"phone" binding:"omitempty,len=10"`
	Email string `json:"email" form:"email" binding:"omitempty,email"`
}

func FetchPatients(c *gin.Context) {
	db := getScopedDB(c)

	patients, err := Models.GetPatients(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func FetchPatient(c *gin.Context) {
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
	c.JSON(http.StatusOK, patient)
}

func FetchPatientsByName(c *gin.Context) {
	db := getScopedDB(c)

	patients, err := Models.GetPatientsByName(db, c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// createPatient runs the shared duplicate check and insert. It writes the
// error response itself and returns nil when the create did not go through.
func createPatient(c *gin.Context, input PatientInput) *Models.Patient {
	db := getScopedDB(c)

	existing, err := Models.GetPatientByEmail(db, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return nil
	}

	patient := Models.Patient{Name: input.Name, Phone: input.Phone, Email: input.Email}
	if err := Models.CreatePatient(db, &patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return nil
	}
	return &patient
}

func CreatePatient(c *gin.Context) {
	var input PatientInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	patient := createPatient(c, input)
	if patient == nil {
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func UpdatePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input PatientUpdateInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	if input.Email != "" {
		existing, err := Models.GetPatientByEmail(db, input.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if existing != nil && existing.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
	}

	patient, err := Models.UpdatePatient(db, id, Models.PatientUpdate{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func DeletePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getScopedDB(c)

	patient, err := Models.DeletePatient(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// Form surface: same checks, redirect on success.

func CreatePatientForm(c *gin.Context) {
	var input PatientInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	if patient := createPatient(c, input); patient == nil {
		return
	}
	c.Redirect(http.StatusSeeOther, "/patients/")
}

func UpdatePatientForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input PatientUpdateInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	if input.Email != "" {
		existing, err := Models.GetPatientByEmail(db, input.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if existing != nil && existing.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
	}

	patient, err := Models.UpdatePatient(db, id, Models.PatientUpdate{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/patients/%d", id))
}

func DeletePatientForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getScopedDB(c)

	patient, err := Models.DeletePatient(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/patients/")
}
