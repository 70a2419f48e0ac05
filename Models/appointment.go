package Models

import (
	"errors"

	"gorm.io/gorm"
)

// Payment status values. An appointment starts out pending and becomes
// linked exactly once, when the creation flow persists a checkout URL.
const (
	PaymentStatusPending = "pending"
	PaymentStatusLinked  = "linked"
)

type Appointment struct {
	gorm.Model
	DoctorName    string `gorm:"size:255;not null" json:"doctor_name"`
	Date          string `gorm:"size:16;not null" json:"date"`
	Time          string `gorm:"size:8;not null" json:"time"`
	Description   string `gorm:"size:1024;not null" json:"description"`
	PatientID     uint   `gorm:"index;not null" json:"patient_id"`
	PaymentLink   string `gorm:"size:1024" json:"payment_link"`
	PaymentStatus string `gorm:"size:32;not null;default:pending" json:"payment_status"`
}

// AppointmentUpdate carries the full replacement field set.
type AppointmentUpdate struct {
	DoctorName  string
	Date        string
	Time        string
	Description string
}

func CreateAppointment(db *gorm.DB, appointment *Appointment) error {
	appointment.PaymentStatus = PaymentStatusPending
	return db.Create(appointment).Error
}

// GetAppointment returns nil when the id has no matching row.
func GetAppointment(db *gorm.DB, id uint) (*Appointment, error) {
	var appointment Appointment
	err := db.First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func GetAppointments(db *gorm.DB) ([]Appointment, error) {
	var appointments []Appointment
	if err := db.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func GetAppointmentsBetween(db *gorm.DB, dateFrom, dateTo string) ([]Appointment, error) {
	var appointments []Appointment
	if err := db.Where("date BETWEEN ? AND ?", dateFrom, dateTo).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateAppointment replaces every writable field. Returns nil when the
// id has no matching row.
func UpdateAppointment(db *gorm.DB, id uint, update AppointmentUpdate) (*Appointment, error) {
	var appointment Appointment
	err := db.First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	appointment.DoctorName = update.DoctorName
	appointment.Date = update.Date
	appointment.Time = update.Time
	appointment.Description = update.Description

	if err := db.Save(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// DeleteAppointment removes the row and returns it as it existed before
// deletion, or nil when the id has no matching row.
func DeleteAppointment(db *gorm.DB, id uint) (*Appointment, error) {
	var appointment Appointment
	err := db.First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := db.Unscoped().Delete(&Appointment{}, appointment.ID).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// SetPaymentLink writes the checkout URL and flips the status to linked.
func SetPaymentLink(db *gorm.DB, appointment *Appointment, url string) error {
	appointment.PaymentLink = url
	appointment.PaymentStatus = PaymentStatusLinked
	return db.Save(appointment).Error
}
