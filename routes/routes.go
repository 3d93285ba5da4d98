package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/aiat-sdml/attendance-api/handlers"
	"github.com/aiat-sdml/attendance-api/store"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, st *store.Store) {
	sub := handlers.NewSubjectHandler(st)
	std := handlers.NewStudentHandler(st)
	att := handlers.NewAttendanceHandler(st)
	rep := handlers.NewReportHandler(st)

	e.GET("/health", handlers.Health)

	api := e.Group("/api")

	api.GET("/subjects", sub.List)
	api.POST("/subjects", sub.Create)
	api.DELETE("/subjects/:id", sub.Delete)

	api.GET("/students", std.List)
	api.POST("/students", std.Create)
	api.DELETE("/students/:id", std.Delete)

	api.POST("/save_attendance", att.Save)
	api.GET("/get_attendance", att.Get)
	api.GET("/student_report", rep.StudentReport)
}
