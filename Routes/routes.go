package Routes

import (
	"MediBook/Controllers"
	"MediBook/Middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))
	router.Use(Middleware.ScopedSession())

	// Checkout redirect landings
	router.GET("/success", Controllers.CheckoutSuccess)
	router.GET("/cancel", Controllers.CheckoutCancel)

	patients := router.Group("/patients")
	{
		patients.GET("/", Controllers.FetchPatients)
		patients.POST("/", Controllers.CreatePatient)
		patients.GET("/name/:name", Controllers.FetchPatientsByName)
		patients.GET("/:id", Controllers.FetchPatient)
		patients.PUT("/:id", Controllers.UpdatePatient)
		patients.DELETE("/:id", Controllers.DeletePatient)
		patients.POST("/:id/appointments/", Controllers.CreateAppointment)

		// Form flow
		patients.POST("/create", Controllers.CreatePatientForm)
		patients.POST("/:id/update", Controllers.UpdatePatientForm)
		patients.POST("/:id/delete", Controllers.DeletePatientForm)
	}

	appointments := router.Group("/appointments")
	{
		appointments.GET("/", Controllers.FetchAppointments)
		appointments.GET("/:id", Controllers.FetchAppointment)
		appointments.PUT("/:id", Controllers.UpdateAppointment)
		appointments.DELETE("/:id", Controllers.DeleteAppointment)
		appointments.POST("/export", Controllers.ExportAppointmentsExcel)

		// Form flow; create takes the owning patient id
		appointments.POST("/:id/create", Controllers.CreateAppointmentForm)
		appointments.POST("/:id/update", Controllers.UpdateAppointmentForm)
		appointments.POST("/:id/delete", Controllers.DeleteAppointmentForm)
	}

	users := router.Group("/users")
	{
		users.GET("/", Controllers.FetchUsers)
		users.POST("/register", Controllers.Register)
		users.POST("/login", Controllers.Login)

		// Form flow
		users.POST("/register/form", Controllers.RegisterForm)
		users.POST("/login/form", Controllers.LoginForm)
	}
}
