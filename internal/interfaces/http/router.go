package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/auth"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	AccountUC      *usecase.AccountUseCase
	TaskUC         *usecase.TaskUseCase
	LeadUC         *usecase.LeadUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *usecase.DashboardUseCase
	JWTSecret      string
	Accounts       AccountLoader
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	accountHandler := NewAccountHandler(deps.AccountUC)
	vendorHandler := NewVendorHandler(deps.AccountUC, deps.TaskUC)
	taskHandler := NewTaskHandler(deps.TaskUC)
	leadHandler := NewLeadHandler(deps.LeadUC)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	authed := AuthMiddleware(deps.JWTSecret, deps.Accounts)

	// Auth: login público, register detrás del token (admin o vendor).
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authed, authHandler.Register)

	// Panel de admin.
	admin := api.Group("/admin", authed)
	admin.Get("/dashboard", RequireAction(policy.ActionDashboardRead), dashboardHandler.Counts)

	vendors := admin.Group("/vendors")
	vendors.Get("/", RequireAction(policy.ActionVendorList), accountHandler.ListVendors)
	vendors.Post("/", RequireAction(policy.ActionVendorCreate), accountHandler.CreateVendor)
	vendors.Put("/:id", RequireAction(policy.ActionVendorUpdate), accountHandler.UpdateAccount)
	vendors.Delete("/:id", RequireAction(policy.ActionVendorDelete), accountHandler.DeleteAccount)
	vendors.Post("/:id/block", RequireAction(policy.ActionVendorBlock), accountHandler.Block)
	vendors.Post("/:id/unblock", RequireAction(policy.ActionVendorBlock), accountHandler.Unblock)

	employees := admin.Group("/employees")
	employees.Get("/", RequireAction(policy.ActionEmployeeList), accountHandler.ListEmployees)
	employees.Post("/", RequireAction(policy.ActionEmployeeCreate), accountHandler.CreateEmployee)
	employees.Put("/:id", RequireAction(policy.ActionEmployeeUpdate), accountHandler.UpdateAccount)
	employees.Delete("/:id", RequireAction(policy.ActionEmployeeDelete), accountHandler.DeleteAccount)
	employees.Post("/:id/block", RequireAction(policy.ActionEmployeeBlock), accountHandler.Block)
	employees.Post("/:id/unblock", RequireAction(policy.ActionEmployeeBlock), accountHandler.Unblock)

	admin.Get("/tasks", RequireAction(policy.ActionTaskRead), taskHandler.List)

	adminLeads := admin.Group("/leads")
	adminLeads.Get("/", RequireAction(policy.ActionLeadManage), leadHandler.List)
	adminLeads.Put("/:id", RequireAction(policy.ActionLeadManage), leadHandler.Update)
	adminLeads.Post("/:id/block", RequireAction(policy.ActionLeadManage), leadHandler.Block)

	adminNotifs := admin.Group("/notifications")
	adminNotifs.Get("/", RequireAction(policy.ActionNotificationRead), notificationHandler.List)
	adminNotifs.Post("/", RequireAction(policy.ActionNotificationManage), notificationHandler.Create)
	adminNotifs.Put("/:id", RequireAction(policy.ActionNotificationManage), notificationHandler.Update)
	adminNotifs.Delete("/:id", RequireAction(policy.ActionNotificationManage), notificationHandler.Delete)
	adminNotifs.Post("/:id/send", RequireAction(policy.ActionNotificationSend), notificationHandler.Send)

	// Perfil propio, cualquier cuenta autenticada.
	me := api.Group("/me", authed)
	me.Get("/", accountHandler.GetMe)
	me.Put("/", accountHandler.UpdateMe)

	// Rutas anidadas de vendor. El desajuste de ruta y la cadena de
	// propiedad se verifican en el caso de uso.
	vendorScoped := api.Group("/vendors", authed)
	vendorScoped.Post("/:vendorId/employees", RequireAction(policy.ActionEmployeeCreate), vendorHandler.CreateEmployee)
	vendorScoped.Post("/:vendorId/tasks", RequireAction(policy.ActionTaskCreate), vendorHandler.CreateTask)

	// Vistas de employee.
	employeeScoped := api.Group("/employees", authed)
	employeeScoped.Get("/:id/tasks", RequireAction(policy.ActionTaskRead), taskHandler.ListByEmployee)
	employeeScoped.Put("/:id", accountHandler.UpdateEmployeeLimited)

	// Tareas.
	tasks := api.Group("/tasks", authed)
	tasks.Post("/", RequireAction(policy.ActionTaskCreate), taskHandler.Create)
	tasks.Get("/", RequireAction(policy.ActionTaskRead), taskHandler.List)
	tasks.Put("/:id", RequireAction(policy.ActionTaskUpdate), taskHandler.Update)
	tasks.Delete("/:id", RequireAction(policy.ActionTaskDelete), taskHandler.Delete)

	// Leads.
	leads := api.Group("/leads", authed)
	leads.Post("/", RequireAction(policy.ActionLeadManage), leadHandler.Create)
	leads.Get("/", RequireAction(policy.ActionLeadManage), leadHandler.List)
	leads.Put("/:id", RequireAction(policy.ActionLeadManage), leadHandler.Update)
	leads.Post("/:id/block", RequireAction(policy.ActionLeadManage), leadHandler.Block)

	// Notificaciones.
	notifs := api.Group("/notifications", authed)
	notifs.Get("/", RequireAction(policy.ActionNotificationRead), notificationHandler.List)
	notifs.Post("/", RequireAction(policy.ActionNotificationManage), notificationHandler.Create)
	notifs.Put("/:id", RequireAction(policy.ActionNotificationManage), notificationHandler.Update)
	notifs.Delete("/:id", RequireAction(policy.ActionNotificationManage), notificationHandler.Delete)
	notifs.Post("/:id/send", RequireAction(policy.ActionNotificationSend), notificationHandler.Send)
}
