package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens-backend/internal/analyses"
	"reviewlens-backend/internal/complaints"
	"reviewlens-backend/internal/inference"
	"reviewlens-backend/internal/products"
	"reviewlens-backend/internal/rating"
	"reviewlens-backend/internal/services/health"
	"reviewlens-backend/internal/shared/config"
	"reviewlens-backend/internal/shared/metrics"
	"reviewlens-backend/internal/shared/server/middleware"
	"reviewlens-backend/internal/shared/server/respond"
	"reviewlens-backend/internal/shared/storage/db"
	"reviewlens-backend/internal/shared/storage/object"
	localstore "reviewlens-backend/internal/shared/storage/object/local"
	s3store "reviewlens-backend/internal/shared/storage/object/s3"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := newObjectStore(cfg)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var productRepo products.Repo
	if sqlDB != nil {
		productRepo = &products.PGRepo{DB: sqlDB}
	} else {
		productRepo = products.NewMemoryRepo()
	}
	productSvc := &products.Service{Repo: productRepo, Store: store}

	predictor, mode := rating.Resolve(cfg.RatingModelPath, cfg.UseMLRating)
	var zeroShot inference.ZeroShot
	if cfg.ZeroShotURL != "" {
		client, err := inference.NewClient(cfg.ZeroShotURL, cfg.ZeroShotAPIKey)
		if err != nil {
			log.Printf("failed to init zero-shot client, falling back to keywords: %v", err)
		} else {
			zeroShot = client
		}
	}
	classifier := complaints.Resolve(zeroShot, cfg.ClassifierBatch)
	analysisSvc := analyses.NewService(predictor, mode, classifier, cfg.ComplaintThreshold)
	analysisHandler := analyses.NewHandler(analysisSvc, productSvc)
	productHandler := products.NewHandler(productSvc, analysisSvc)

	healthSvc := health.NewService(sqlDB)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status(c.Request.Context()))
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Auth(cfg.APIToken),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 5, Burst: 20},
				"POLLING": {Rate: 20, Burst: 60},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet {
					return "POLLING"
				}
				return "DEFAULT"
			},
		}),
	)
	analysisHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)

	return r
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
