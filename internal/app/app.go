package app

import (
	"fmt"
	"net/http"

	"github.com/gabrielsantos8/futclebs/internal/config"
	"github.com/gabrielsantos8/futclebs/internal/domain/match"
	"github.com/gabrielsantos8/futclebs/internal/domain/player"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
	cacherepo "github.com/gabrielsantos8/futclebs/internal/infrastructure/repository/cache"
	"github.com/gabrielsantos8/futclebs/internal/infrastructure/repository/memory"
	"github.com/gabrielsantos8/futclebs/internal/infrastructure/repository/postgres"
	"github.com/gabrielsantos8/futclebs/internal/interfaces/httpapi"
	basecache "github.com/gabrielsantos8/futclebs/internal/platform/cache"
	idgen "github.com/gabrielsantos8/futclebs/internal/platform/id"
	"github.com/gabrielsantos8/futclebs/internal/platform/logging"
	"github.com/gabrielsantos8/futclebs/internal/usecase"
)

type repositories struct {
	players       player.Repository
	matches       match.Repository
	registrations match.RegistrationRepository
	teams         teams.Repository
	votes         vote.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		repos.players = cacherepo.NewPlayerRepository(repos.players, basecache.NewStore(cfg.CacheTTL))
	}

	registrationSvc := usecase.NewRegistrationService(repos.matches, repos.registrations, repos.players)
	statusSvc := usecase.NewVotingStatusService(repos.teams, repos.votes, repos.players)
	teamSvc := usecase.NewTeamService(repos.matches, repos.teams, registrationSvc)
	voteSvc := usecase.NewVoteService(repos.teams, repos.votes, statusSvc, idgen.NewRandomGenerator())
	summarySvc := usecase.NewSummaryService(repos.teams, repos.votes, repos.players, statusSvc)
	matchSvc := usecase.NewMatchService(
		repos.matches,
		repos.registrations,
		repos.teams,
		repos.votes,
		statusSvc,
		idgen.NewRandomGenerator(),
		logger,
	)

	handler := httpapi.NewHandler(matchSvc, registrationSvc, teamSvc, voteSvc, statusSvc, summarySvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildRepositories picks the persistence backend: postgres when DB_URL is
// set, otherwise the in-memory seed roster for local development.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return repositories{
			players:       memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:       memory.NewMatchRepository(),
			registrations: memory.NewRegistrationRepository(),
			teams:         memory.NewTeamRepository(),
			votes:         memory.NewVoteRepository(),
		}, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}

	logger.Info("using postgres repositories", "database", dbNameFromURL(cfg.DBURL))
	return repositories{
		players:       postgres.NewPlayerRepository(db),
		matches:       postgres.NewMatchRepository(db),
		registrations: postgres.NewRegistrationRepository(db),
		teams:         postgres.NewTeamRepository(db),
		votes:         postgres.NewVoteRepository(db),
	}, nil
}
