// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/e-budgetmo/backend/config"
	"github.com/e-budgetmo/backend/internal/application/adapter"
	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/application/usecase/goal"
	"github.com/e-budgetmo/backend/internal/application/usecase/ledger"
	"github.com/e-budgetmo/backend/internal/application/usecase/statistics"
	"github.com/e-budgetmo/backend/internal/application/usecase/transaction"
	"github.com/e-budgetmo/backend/internal/infra/server/router"
	"github.com/e-budgetmo/backend/internal/integration/entrypoint/controller"
	"github.com/e-budgetmo/backend/internal/integration/entrypoint/middleware"
	"github.com/e-budgetmo/backend/internal/integration/persistence"
)

// mutationRateLimit bounds how many mutating requests a client may issue
// per minute. The product model is one interactive user, so the window
// is generous.
const (
	mutationRateLimit  = 60
	mutationRateWindow = time.Minute
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Router      *router.Router
	LedgerStore *store.LedgerStore
	GoalStore   *store.GoalStore
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, kv adapter.KeyValueStore, storageHealth func() bool) *Injector {
	// Create repositories
	financeRepo := persistence.NewFinanceRepository(kv, cfg.Storage.FinanceKey)
	goalRepo := persistence.NewGoalRepository(kv, cfg.Storage.GoalsKey)

	// Create stores
	ledgerStore := store.NewLedgerStore(financeRepo)
	goalStore := store.NewGoalStore(goalRepo)

	// Create ledger use cases
	appendEntryUseCase := ledger.NewAppendEntryUseCase(ledgerStore)
	getAggregateUseCase := ledger.NewGetAggregateUseCase(ledgerStore)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalStore)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalStore)
	adjustGoalUseCase := goal.NewAdjustGoalUseCase(goalStore, ledgerStore)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalStore)

	// Create derived-view use cases
	monthlyStatsUseCase := statistics.NewGetMonthlyStatsUseCase(ledgerStore, goalStore)
	mergeTransactionsUseCase := transaction.NewMergeTransactionsUseCase(ledgerStore, goalStore)

	// Create controllers
	healthController := controller.NewHealthController(storageHealth)
	entryController := controller.NewEntryController(appendEntryUseCase, getAggregateUseCase)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		adjustGoalUseCase,
		deleteGoalUseCase,
	)
	statisticsController := controller.NewStatisticsController(monthlyStatsUseCase)
	transactionController := controller.NewTransactionController(mergeTransactionsUseCase)

	// Create middleware
	mutationRateLimiter := middleware.NewRateLimiterWithConfig(mutationRateLimit, mutationRateWindow)

	// Create router
	apiRouter := router.NewRouter(
		healthController,
		entryController,
		goalController,
		statisticsController,
		transactionController,
		mutationRateLimiter,
	)

	return &Injector{
		Config:      cfg,
		Router:      apiRouter,
		LedgerStore: ledgerStore,
		GoalStore:   goalStore,
	}
}
