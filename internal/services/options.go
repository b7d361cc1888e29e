package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/compare_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_filters"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	checkoutcontracts "github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/queries/get_checkout"
	"github.com/light-bringer/storefront-service/internal/app/checkout/queries/list_events"
	checkoutrepo "github.com/light-bringer/storefront-service/internal/app/checkout/repo"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/apply_coupon"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/go_back"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/select_payment"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/start_checkout"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/submit_delivery"
	"github.com/light-bringer/storefront-service/internal/app/selection"
	selectioncontracts "github.com/light-bringer/storefront-service/internal/app/selection/contracts"
	selectionrepo "github.com/light-bringer/storefront-service/internal/app/selection/repo"
	trackingcontracts "github.com/light-bringer/storefront-service/internal/app/tracking/contracts"
	trackingdomain "github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/app/tracking/queries/track_order"
	trackingrepo "github.com/light-bringer/storefront-service/internal/app/tracking/repo"
	"github.com/light-bringer/storefront-service/internal/db"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/config"
	grpcstorefront "github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
	httphandler "github.com/light-bringer/storefront-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client
	TrackingPool  *pgxpool.Pool

	Sessions    *selection.Sessions
	HTTPHandler *httphandler.Handler
	GRPCHandler *grpcstorefront.Handler
}

// NewServiceOptions creates and wires up all application dependencies. The
// configured backends decide where selections, orders and tracking records
// live; anything left unconfigured falls back to memory.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *ServiceOptions, err error) {
	opts := &ServiceOptions{}
	defer func() {
		if err != nil {
			opts.Close()
		}
	}()

	// 1. Infrastructure
	clk := clock.NewRealClock()

	if cfg.SpannerDB != "" || cfg.StorageBackend == config.StorageSpanner {
		if cfg.SpannerDB == "" {
			return nil, fmt.Errorf("STORAGE_BACKEND=spanner requires SPANNER_DATABASE")
		}
		opts.SpannerClient, err = spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
	}
	var comm *committer.Committer
	if opts.SpannerClient != nil {
		comm = committer.NewCommitter(opts.SpannerClient)
	}

	// 2. Catalog
	cat, err := catalogrepo.Load(ctx, clk, cfg.CatalogLoadDelay, cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.InfoContext(ctx, "catalog loaded", slog.Int("products", cat.Len()))

	// 3. Selection persistence
	storage, err := opts.newStorage(ctx, cfg, comm)
	if err != nil {
		return nil, err
	}
	opts.Sessions = selection.NewSessions(cat, storage, clk, logger)

	// 4. Orders and outbox
	var (
		orders checkoutcontracts.OrderRepository
		reader checkoutcontracts.OutboxReader
	)
	if opts.SpannerClient != nil {
		outbox := checkoutrepo.NewOutboxRepo(opts.SpannerClient, comm)
		orders = checkoutrepo.NewOrderRepo(comm, outbox)
		reader = outbox
	} else {
		outbox := checkoutrepo.NewMemoryOutbox(clk)
		orders = checkoutrepo.NewMemoryOrderRepo(outbox)
		reader = outbox
	}

	// 5. Tracking registry
	registry, err := opts.newRegistry(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// 6. Use cases and queries
	workflows := checkoutrepo.NewMemoryWorkflowRepo()
	listProductsQuery := list_products.NewQuery(cat)
	getProductQuery := get_product.NewQuery(cat)
	trackOrderQuery := track_order.NewQuery(registry, clk, cfg.OrderLookupDelay)

	opts.HTTPHandler = httphandler.NewHandler(httphandler.Deps{
		ListProducts:    listProductsQuery,
		ListFilters:     list_filters.NewQuery(cat),
		GetProduct:      getProductQuery,
		CompareProducts: compare_products.NewQuery(),
		Sessions:        opts.Sessions,
		StartCheckout:   start_checkout.NewInteractor(workflows, opts.Sessions),
		SubmitDelivery:  submit_delivery.NewInteractor(workflows),
		SelectPayment:   select_payment.NewInteractor(workflows),
		GoBack:          go_back.NewInteractor(workflows),
		ApplyCoupon:     apply_coupon.NewInteractor(workflows),
		PlaceOrder: place_order.NewInteractor(place_order.Options{
			Workflows: workflows,
			Orders:    orders,
			Sessions:  opts.Sessions,
			Tracking:  registry,
			Clock:     clk,
			Delay:     cfg.CheckoutProcessingDelay,
			Logger:    logger,
		}),
		GetCheckout: get_checkout.NewQuery(workflows),
		TrackOrder:  trackOrderQuery,
		ListEvents:  list_events.NewQuery(reader),
		Logger:      logger,
	})

	// 7. gRPC handler
	opts.GRPCHandler = grpcstorefront.NewHandler(trackOrderQuery, listProductsQuery, getProductQuery)

	return opts, nil
}

func (s *ServiceOptions) newStorage(ctx context.Context, cfg config.Config, comm *committer.Committer) (selectioncontracts.Storage, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory, "":
		return selectionrepo.NewMemoryStorage(), nil

	case config.StorageFile:
		fs, err := selectionrepo.NewFileStorage(cfg.StorageDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		return fs, nil

	case config.StorageRedis:
		s.RedisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := s.RedisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach Redis at %s: %w", cfg.RedisAddr, err)
		}
		return selectionrepo.NewRedisStorage(s.RedisClient, "storefront:"), nil

	case config.StorageSpanner:
		return selectionrepo.NewSpannerStorage(s.SpannerClient, comm), nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}

func (s *ServiceOptions) newRegistry(ctx context.Context, cfg config.Config, logger *slog.Logger) (trackingcontracts.OrderRegistry, error) {
	if cfg.TrackingDSN == "" {
		return trackingrepo.NewMemoryRegistry(trackingrepo.SeedOrders()...)
	}

	if err := db.RunMigrations(cfg.TrackingDSN, logger); err != nil {
		return nil, fmt.Errorf("failed to migrate tracking database: %w", err)
	}

	pool, err := db.NewPool(ctx, cfg.TrackingDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tracking database: %w", err)
	}
	s.TrackingPool = pool

	registry := trackingrepo.NewPostgresRegistry(pool)
	for _, order := range trackingrepo.SeedOrders() {
		if err := registry.Register(ctx, order); err != nil && !errors.Is(err, trackingdomain.ErrDuplicateOrder) {
			return nil, fmt.Errorf("failed to seed tracking order %s: %w", order.OrderNumber, err)
		}
	}
	return registry, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.TrackingPool != nil {
		s.TrackingPool.Close()
	}
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
