package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtelierGestione/atelier-manager/internal/audit"
	"github.com/AtelierGestione/atelier-manager/internal/cache"
	"github.com/AtelierGestione/atelier-manager/internal/config"
	"github.com/AtelierGestione/atelier-manager/internal/handlers"
	infraRepo "github.com/AtelierGestione/atelier-manager/internal/infra/repository"
	"github.com/AtelierGestione/atelier-manager/internal/middleware"
	"github.com/AtelierGestione/atelier-manager/internal/models"
	ucAppointment "github.com/AtelierGestione/atelier-manager/internal/usecase/appointment"
	ucRecurrence "github.com/AtelierGestione/atelier-manager/internal/usecase/recurrence"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETON)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reportCache := cache.NewReportCache(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	reconcileUC := ucRecurrence.NewReconcile(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	employeeHandler := handlers.NewEmployeeHandler(db)
	productHandler := handlers.NewProductHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		reportCache,
	)

	utilityExpenses := handlers.NewExpenseHandler(db,
		func(date, description string, amount float64) models.UtilityExpense {
			return models.UtilityExpense{Date: date, Description: description, Amount: amount}
		})
	barExpenses := handlers.NewExpenseHandler(db,
		func(date, description string, amount float64) models.BarExpense {
			return models.BarExpense{Date: date, Description: description, Amount: amount}
		})
	maintenanceExpenses := handlers.NewExpenseHandler(db,
		func(date, description string, amount float64) models.MaintenanceExpense {
			return models.MaintenanceExpense{Date: date, Description: description, Amount: amount}
		})
	productExpenses := handlers.NewExpenseHandler(db,
		func(date, description string, amount float64) models.ProductExpense {
			return models.ProductExpense{Date: date, Description: description, Amount: amount}
		})

	reportHandler := handlers.NewReportHandler(db, reportCache)
	adminHandler := handlers.NewAdminHandler(reconcileUC, reportCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVATA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// EMPLOYEES
			// ------------------------------
			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", employeeHandler.Create)
			secured.PATCH("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// PRODUCTS
			// ------------------------------
			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			// ------------------------------
			// EXPENSES
			// ------------------------------
			expenses := secured.Group("/expenses")
			{
				expenses.GET("/utilities", utilityExpenses.List)
				expenses.POST("/utilities", utilityExpenses.Create)
				expenses.DELETE("/utilities/:id", utilityExpenses.Delete)

				expenses.GET("/bar", barExpenses.List)
				expenses.POST("/bar", barExpenses.Create)
				expenses.DELETE("/bar/:id", barExpenses.Delete)

				expenses.GET("/maintenance", maintenanceExpenses.List)
				expenses.POST("/maintenance", maintenanceExpenses.Create)
				expenses.DELETE("/maintenance/:id", maintenanceExpenses.Delete)

				expenses.GET("/products", productExpenses.List)
				expenses.POST("/products", productExpenses.Create)
				expenses.DELETE("/products/:id", productExpenses.Delete)
			}

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/reports/monthly", reportHandler.Monthly)
			secured.GET("/reports/range", reportHandler.Range)
			secured.GET("/reports/employees", reportHandler.ByEmployee)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.POST("/admin/recurrences/reconcile", adminHandler.ReconcileRecurrences)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
