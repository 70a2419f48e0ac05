package Models

import (
	"errors"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Name         string        `gorm:"size:255;not null" json:"name"`
	Phone        string        `gorm:"size:255;not null" json:"phone"`
	Email        string        `gorm:"size:255;not null;unique" json:"email"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments"`
}

// PatientUpdate carries the fields a partial update may replace. Empty
// strings mean "leave unchanged".
type PatientUpdate struct {
	Name  string
	Phone string
	Email string
}

func CreatePatient(db *gorm.DB, patient *Patient) error {
	return db.Create(patient).Error
}

// GetPatient returns nil when the id has no matching row.
func GetPatient(db *gorm.DB, id uint) (*Patient, error) {
	var patient Patient
	err := db.Preload("Appointments").First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func GetPatients(db *gorm.DB) ([]Patient, error) {
	var patients []Patient
	if err := db.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// GetPatientsByName matches the name exactly, not as a prefix.
func GetPatientsByName(db *gorm.DB, name string) ([]Patient, error) {
	var patients []Patient
	if err := db.Where("name = ?", name).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func GetPatientByEmail(db *gorm.DB, email string) (*Patient, error) {
	var patient Patient
	err := db.Where("email = ?", email).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// UpdatePatient replaces only the fields set in the update. Returns nil
// when the id has no matching row.
func UpdatePatient(db *gorm.DB, id uint, update PatientUpdate) (*Patient, error) {
	var patient Patient
	err := db.First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		patient.Name = update.Name
	}
	if update.Phone != "" {
		patient.Phone = update.Phone
	}
	if update.Email != "" {
		patient.Email = update.Email
	}

	if err := db.Save(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// DeletePatient removes the patient and every appointment it owns in one
// transaction. Returns the patient as it existed before deletion, or nil
// when the id has no matching row.
func DeletePatient(db *gorm.DB, id uint) (*Patient, error) {
	var patient Patient
	err := db.Preload("Appointments").First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Unscoped().Where("patient_id = ?", patient.ID).Delete(&Appointment{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Unscoped().Delete(&Patient{}, patient.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return &patient, nil
}
