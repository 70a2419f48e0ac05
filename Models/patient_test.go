package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePatientRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	patient := Patient{Name: "Bob Jones", Phone: "1234567890", Email: "bob@x.com"}
	require.NoError(t, CreatePatient(db, &patient))
	assert.NotZero(t, patient.ID)

	stored, err := GetPatient(db, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Bob Jones", stored.Name)
	assert.Equal(t, "1234567890", stored.Phone)
	assert.Equal(t, "bob@x.com", stored.Email)
}

func TestGetPatientAbsent(t *testing.T) {
	db := setupTestDB(t)

	patient, err := GetPatient(db, 42)
	require.NoError(t, err)
	assert.Nil(t, patient)
}

func TestGetPatientsByNameExactMatch(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, CreatePatient(db, &Patient{Name: "Bob Jones", Phone: "1234567890", Email: "bob@x.com"}))
	require.NoError(t, CreatePatient(db, &Patient{Name: "Bob Jonesson", Phone: "1234567891", Email: "bobj@x.com"}))

	patients, err := GetPatientsByName(db, "Bob Jones")
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "bob@x.com", patients[0].Email)

	none, err := GetPatientsByName(db, "Bob")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPatientByEmail(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, CreatePatient(db, &Patient{Name: "Bob Jones", Phone: "1234567890", Email: "bob@x.com"}))

	patient, err := GetPatientByEmail(db, "bob@x.com")
	require.NoError(t, err)
	require.NotNil(t, patient)
	assert.Equal(t, "Bob Jones", patient.Name)

	absent, err := GetPatientByEmail(db, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUpdatePatientPartial(t *testing.T) {
	db := setupTestDB(t)

	patient := Patient{Name: "Bob Jones", Phone: "1234567890", Email: "bob@x.com"}
	require.NoError(t, CreatePatient(db, &patient))

	updated, err := UpdatePatient(db, patient.ID, PatientUpdate{Phone: "0987654321"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "0987654321", updated.Phone)
	assert.Equal(t, "Bob Jones", updated.Name)
	assert.Equal(t, "bob@x.com", updated.Email)
}

func TestUpdatePatientAbsent(t *testing.T) {
	db := setupTestDB(t)

	updated, err := UpdatePatient(db, 42, PatientUpdate{Name: "Ghost Patient"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	patients, err := GetPatients(db)
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestDeletePatientCascades(t *testing.T) {
	db := setupTestDB(t)

	patient := Patient{Name: "Bob Jones", Phone: "1234567890", Email: "bob@x.com"}
	require.NoError(t, CreatePatient(db, &patient))

	first := Appointment{DoctorName: "Dr. Who", Date: "2025-01-01", Time: "10:00", Description: "Routine checkup and consultation", PatientID: patient.ID}
	second := Appointment{DoctorName: "Dr. Strange", Date: "2025-01-02", Time: "11:00", Description: "Follow-up visit for lab results", PatientID: patient.ID}
	require.NoError(t, CreateAppointment(db, &first))
	require.NoError(t, CreateAppointment(db, &second))

	deleted, err := DeletePatient(db, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "bob@x.com", deleted.Email)
	assert.Len(t, deleted.Appointments, 2)

	gone, err := GetPatient(db, patient.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	for _, id := range []uint{first.ID, second.ID} {
		appointment, err := GetAppointment(db, id)
		require.NoError(t, err)
		assert.Nil(t, appointment)
	}
}

func TestDeletePatientAbsent(t *testing.T) {
	db := setupTestDB(t)

	deleted, err := DeletePatient(db, 42)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}
