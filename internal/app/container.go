package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/catalog"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database/migration"
	dbpostgres "github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database/postgres"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database/seeder"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/analytics"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/infrastructure/cache"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pipeline"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pkg/jwt"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/ws"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/migrations"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   *jwt.HMACService
	Hub   *ws.Hub

	Extractor *skill.Extractor

	Skills       repository.SkillRepository
	Jobs         repository.JobRepository
	Users        user.Repository
	Applications repository.ApplicationRepository

	SkillUsecase       *usecase.Skill
	JobMatchUsecase    *usecase.JobMatch
	ApplicationUsecase *usecase.Applications
	AnalyticsUsecase   *usecase.Analytics
	ResumeUsecase      *usecase.Resume

	Refresh *pipeline.Refresh
}

// NewContainer connects storage, prepares the schema and dictionary, and
// wires every service. The hub is created but not started.
func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger, DB: db}
	if err := c.init(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) init(ctx context.Context) error {
	cfg := c.Config

	if cfg.App.AutoMigrate {
		if err := Migrate(ctx, c.DB, cfg.App.MigrationsDir, c.Logger); err != nil {
			return err
		}
	}

	c.Skills = repository.NewPostgresSkillRepository(c.DB)
	c.Jobs = repository.NewPostgresJobRepository(c.DB)
	c.Users = repository.NewPostgresUserRepository(c.DB)
	c.Applications = repository.NewPostgresApplicationRepository(c.DB)

	dict, err := LoadDictionary(ctx, cfg.Matching.DictionaryPath, c.Skills, c.Logger)
	if err != nil {
		return err
	}
	c.Extractor = skill.NewExtractor(dict)

	if cfg.App.AutoSeed {
		r := seeder.Runner{Seeders: seeder.Defaults(dict), Logger: c.Logger}
		if err := r.Run(ctx, c.DB); err != nil {
			return err
		}
	}

	c.Cache = cache.NewRedis(cfg.Redis, c.Logger)
	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.Issuer)
	c.Hub = ws.NewHub(c.Logger)

	c.SkillUsecase = usecase.NewSkillUsecase(c.Extractor)
	c.JobMatchUsecase = usecase.NewJobMatchUsecase(c.Jobs, c.Users, c.Extractor, c.Cache, cfg.Redis.TTL, c.Logger)
	c.ApplicationUsecase = usecase.NewApplicationUsecase(c.Applications, c.Jobs, c.Users, c.Extractor, c.Cache, c.Hub, c.Logger)
	c.AnalyticsUsecase = usecase.NewAnalyticsUsecase(
		c.Applications,
		analytics.NewAggregator(c.Extractor, cfg.Matching.TopSkills),
		c.Cache,
		cfg.Redis.TTL,
		c.Logger,
	)

	c.ResumeUsecase = usecase.NewResumeUsecase(c.Users, c.Extractor, c.Logger)

	importer := catalog.NewImporter(c.Jobs, c.Cache, c.Logger, CatalogSources(cfg.Catalog, c.Logger)...)
	tagger := pipeline.NewTagger(c.Jobs, c.Extractor, c.Logger)
	c.Refresh = pipeline.NewRefresh(importer, tagger, c.Hub, c.Logger)

	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

// Migrate applies the embedded migrations, or the files in dir when set.
func Migrate(ctx context.Context, db database.DB, dir string, logger *log.Logger) error {
	r := migration.Runner{Dir: dir, Logger: logger}
	if dir == "" {
		r.FS = migrations.FS
	}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// LoadDictionary prefers a dictionary file, then the skills table, then the
// built-in table. A broken file is an error; an unusable table is not.
func LoadDictionary(ctx context.Context, path string, skills repository.SkillRepository, logger *log.Logger) (*skill.Dictionary, error) {
	if logger == nil {
		logger = log.Default()
	}
	if path != "" {
		d, err := skill.LoadDictionaryFile(path)
		if err != nil {
			return nil, fmt.Errorf("load skill dictionary: %w", err)
		}
		logger.Printf("dictionary=file path=%s skills=%d", path, d.Len())
		return d, nil
	}

	if skills != nil {
		defs, err := skills.ListDefinitions(ctx)
		switch {
		case err != nil:
			logger.Printf("dictionary=db status=error err=%v", err)
		case len(defs) > 0:
			d, err := skill.NewDictionary(defs)
			if err == nil {
				logger.Printf("dictionary=db skills=%d", d.Len())
				return d, nil
			}
			logger.Printf("dictionary=db status=invalid err=%v", err)
		}
	}

	d := skill.DefaultDictionary()
	logger.Printf("dictionary=default skills=%d", d.Len())
	return d, nil
}

// CatalogSources scrapes the configured board, or serves the bundled sample
// catalog when no board is set.
func CatalogSources(cfg config.CatalogConfig, logger *log.Logger) []catalog.Source {
	if cfg.BoardURL == "" {
		return []catalog.Source{catalog.NewSampleSource()}
	}
	return []catalog.Source{catalog.NewBoardScraper(catalog.BoardTargetFromConfig(cfg), logger)}
}
