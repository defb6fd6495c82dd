package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/analytics"
	"github.com/jhoicas/finanzas-api/internal/application/auth"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// Secciones nombradas del back-office. Coinciden con los valores que el SPA
// guarda en allowed_routes de cada viewer.
const (
	SectionDashboard        = "dashboard"
	SectionTransactions     = "transactions"
	SectionExpenses         = "expenses"
	SectionManualBalance    = "manual-balance"
	SectionActivityLog      = "activity-log"
	SectionUsersSettings    = "users-settings"
	SectionExpensesSettings = "expenses-settings"
)

// Niveles de acceso de una ruta.
type accessLevel int

const (
	accessPublic accessLevel = iota // sin token
	accessRead                      // token válido + sección habilitada
	accessWrite                     // además, rol admin (los viewers no mutan)
	accessAdmin                     // solo admin, sin chequeo de sección
)

// route una entrada de la tabla de rutas de la API.
type route struct {
	method  string
	path    string
	section string // "" = sin chequeo de sección
	access  accessLevel
	handler fiber.Handler
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	UserUC          *usecase.UserUseCase
	PeriodUC        *usecase.PeriodUseCase
	TransactionUC   *usecase.TransactionUseCase
	ExpenseUC       *usecase.ExpenseUseCase
	ExpenseCatUC    *usecase.ExpenseCategoryUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	ManualBalanceUC *usecase.ManualBalanceUseCase
	ActivityLogUC   *usecase.ActivityLogUseCase
	SummaryUC       *analytics.SummaryUseCase
	JWTSecret       string
}

// Router registra la tabla de rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	periodHandler := NewPeriodHandler(deps.PeriodUC)
	txHandler := NewTransactionHandler(deps.TransactionUC)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	categoryHandler := NewExpenseCategoryHandler(deps.ExpenseCatUC)
	methodHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	balanceHandler := NewManualBalanceHandler(deps.ManualBalanceUC)
	logHandler := NewActivityLogHandler(deps.ActivityLogUC)
	dashboardHandler := NewDashboardHandler(deps.SummaryUC)

	routes := []route{
		// Auth
		{fiber.MethodPost, "/auth/login", "", accessPublic, authHandler.Login},

		// Dashboard
		{fiber.MethodGet, "/dashboard/summary", SectionDashboard, accessRead, dashboardHandler.Summary},
		{fiber.MethodGet, "/dashboard/summary/pdf", SectionDashboard, accessRead, dashboardHandler.SummaryPDF},

		// Períodos: lectura para cualquier autenticado (todas las páginas del SPA
		// seleccionan período); escritura solo admin
		{fiber.MethodGet, "/periods", "", accessRead, periodHandler.List},
		{fiber.MethodPost, "/periods", SectionTransactions, accessWrite, periodHandler.Create},
		{fiber.MethodPatch, "/periods/:id/close", SectionTransactions, accessWrite, periodHandler.Close},

		// Transacciones
		{fiber.MethodGet, "/transactions", SectionTransactions, accessRead, txHandler.List},
		{fiber.MethodPost, "/transactions", SectionTransactions, accessWrite, txHandler.Create},
		{fiber.MethodPatch, "/transactions/:id", SectionTransactions, accessWrite, txHandler.Update},
		{fiber.MethodDelete, "/transactions/:id", SectionTransactions, accessWrite, txHandler.Delete},

		// Gastos
		{fiber.MethodGet, "/expenses", SectionExpenses, accessRead, expenseHandler.List},
		{fiber.MethodPost, "/expenses", SectionExpenses, accessWrite, expenseHandler.Create},
		{fiber.MethodPatch, "/expenses/:id", SectionExpenses, accessWrite, expenseHandler.Update},
		{fiber.MethodDelete, "/expenses/:id", SectionExpenses, accessWrite, expenseHandler.Delete},

		// Catálogos de gastos: lectura para cualquier autenticado (los formularios
		// de gastos los necesitan); escritura solo admin
		{fiber.MethodGet, "/expense-categories", "", accessRead, categoryHandler.List},
		{fiber.MethodPost, "/expense-categories", SectionExpensesSettings, accessWrite, categoryHandler.Create},
		{fiber.MethodPatch, "/expense-categories/:id", SectionExpensesSettings, accessWrite, categoryHandler.Update},
		{fiber.MethodDelete, "/expense-categories/:id", SectionExpensesSettings, accessWrite, categoryHandler.Delete},
		{fiber.MethodGet, "/payment-methods", "", accessRead, methodHandler.List},
		{fiber.MethodPost, "/payment-methods", SectionExpensesSettings, accessWrite, methodHandler.Create},
		{fiber.MethodPatch, "/payment-methods/:id", SectionExpensesSettings, accessWrite, methodHandler.Update},
		{fiber.MethodDelete, "/payment-methods/:id", SectionExpensesSettings, accessWrite, methodHandler.Delete},

		// Balances manuales
		{fiber.MethodGet, "/manual-balances", SectionManualBalance, accessRead, balanceHandler.List},
		{fiber.MethodPost, "/manual-balances", SectionManualBalance, accessWrite, balanceHandler.Create},
		{fiber.MethodPatch, "/manual-balances/:id", SectionManualBalance, accessWrite, balanceHandler.Update},
		{fiber.MethodDelete, "/manual-balances/:id", SectionManualBalance, accessWrite, balanceHandler.Delete},

		// Usuarios (solo admin)
		{fiber.MethodGet, "/users", "", accessAdmin, userHandler.List},
		{fiber.MethodPost, "/users", "", accessAdmin, userHandler.Create},
		{fiber.MethodPatch, "/users/:id", "", accessAdmin, userHandler.Update},
		{fiber.MethodDelete, "/users/:id", "", accessAdmin, userHandler.Delete},

		// Log de actividad (solo admin)
		{fiber.MethodGet, "/activity-logs", "", accessAdmin, logHandler.List},
	}

	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)

	for _, r := range routes {
		handlers := middlewareChain(r, authMW)
		api.Add(r.method, r.path, handlers...)
	}
}

// middlewareChain arma la cadena de middlewares de una ruta según su nivel de
// acceso y su sección.
func middlewareChain(r route, authMW fiber.Handler) []fiber.Handler {
	if r.access == accessPublic {
		return []fiber.Handler{r.handler}
	}
	chain := []fiber.Handler{authMW}
	switch r.access {
	case accessWrite, accessAdmin:
		chain = append(chain, RequireWriteAccess())
	}
	if r.section != "" && r.access == accessRead {
		chain = append(chain, RequireRouteAccess(r.section))
	}
	return append(chain, r.handler)
}
