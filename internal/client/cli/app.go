package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/config"
	"github.com/its-steo/GrandV-sub001/internal/client/referral"
	"github.com/its-steo/GrandV-sub001/internal/client/repositories/credentials"
	"github.com/its-steo/GrandV-sub001/internal/client/services"
	"github.com/its-steo/GrandV-sub001/internal/logging"
	"github.com/its-steo/GrandV-sub001/internal/notification"

	_ "modernc.org/sqlite"
)

// App wires the GrandV CLI together: configuration, the REST client, the
// local credential store, the session, and the domain services the REPL
// commands call.
type App struct {
	config  *config.Config
	logger  logging.Logger
	session *services.Session

	walletService    services.WalletService
	dashboardService services.DashboardService
	packageService   services.PackageService
	premiumService   services.PremiumService
	advertService    services.AdvertService
	referralService  services.ReferralService
	lipaService      services.LipaService
	supportService   services.SupportService

	reader *bufio.Reader
}

// NewApp constructs the application graph from the given configuration.
// The session is rehydrated from the local database before this returns, so
// a user who signed in on a previous run starts out authenticated.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := credentials.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := credentials.NewStore(db)
	apiClient := api.NewRESTClient(c.APIBaseURL, c.RequestTimeout)
	capture := referral.NewCapture(func() string { return c.ReferralURL })

	authService := services.NewAuthService(apiClient, store, capture)
	session := services.NewSession(authService, notification.NewConsoleNotifier(os.Stdout))

	return &App{
		config:           c,
		logger:           logger,
		session:          session,
		walletService:    services.NewWalletService(apiClient),
		dashboardService: services.NewDashboardService(apiClient),
		packageService:   services.NewPackageService(apiClient),
		premiumService:   services.NewPremiumService(apiClient),
		advertService:    services.NewAdvertService(apiClient),
		referralService:  services.NewReferralService(apiClient),
		lipaService:      services.NewLipaService(apiClient),
		supportService:   services.NewSupportService(apiClient),
		reader:           bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
