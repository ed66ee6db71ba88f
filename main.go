package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	bidding "auction-engine/internal/biddingService"
	closeout "auction-engine/internal/closeoutService"
	"auction-engine/internal/livestream"
	model "auction-engine/internal/models"
	"auction-engine/internal/notify"
	payment "auction-engine/internal/paymentService"
	registration "auction-engine/internal/registrationService"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// Config collects the environment-driven settings.
type Config struct {
	Port          string
	DBPath        string
	RedisAddr     string
	KafkaBroker   string
	SweepInterval time.Duration
	PublicBaseURL string
	SeedDemoData  bool
	Gateway       payment.GatewayConfig
}

func main() {
	cfg := loadConfig()

	repo, err := openRepo(cfg)
	if err != nil {
		utils.Fatal("failed to open repository", map[string]any{"error": err.Error()})
	}

	if cfg.SeedDemoData {
		seedDemoData(repo)
	}

	var sinks []livestream.Sink
	if cfg.KafkaBroker != "" {
		publisher := notify.NewKafkaPublisher(cfg.KafkaBroker, notify.DefaultEventTopic)
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}

	var cache livestream.BidCache
	if cfg.RedisAddr != "" {
		cache = livestream.NewRedisBidCache(cfg.RedisAddr)
	} else {
		cache = livestream.NewMemoryBidCache()
	}

	biddingSvc := bidding.NewBiddingService(repo, nil)
	hub := livestream.NewHub(cache, biddingSvc, sinks...)
	hub.Start()
	defer hub.Stop()
	biddingSvc.SetEventPublisher(hub)
	registrationSvc := registration.NewRegistrationService(repo)
	notifier := notify.NewAsyncNotifier(notify.LogSender{})
	closeoutSvc := closeout.NewCloseoutService(repo, notifier, hub, cfg.PublicBaseURL)
	paymentSvc := payment.NewPaymentService(repo, registrationSvc, notifier, cfg.Gateway)

	stopScheduler := startScheduler(closeoutSvc, cfg.SweepInterval)
	defer stopScheduler()

	router := server.SetupRouter(biddingSvc, registrationSvc, closeoutSvc, paymentSvc, hub)

	fmt.Printf("Starting auction server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() Config {
	cfg := Config{
		Port:          ":8080",
		DBPath:        os.Getenv("DB_PATH"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		SweepInterval: time.Minute,
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		SeedDemoData:  os.Getenv("SEED_DEMO_DATA") == "true",
		Gateway: payment.GatewayConfig{
			MerchantID:  os.Getenv("PAYGATE_MERCHANT_ID"),
			MerchantKey: os.Getenv("PAYGATE_MERCHANT_KEY"),
			Passphrase:  os.Getenv("PAYGATE_PASSPHRASE"),
			ProcessURL:  getEnv("PAYGATE_PROCESS_URL", "https://sandbox.payfast.co.za/eng/process"),
			ReturnURL:   getEnv("PAYGATE_RETURN_URL", "http://localhost:8080/payments/return"),
			CancelURL:   getEnv("PAYGATE_CANCEL_URL", "http://localhost:8080/payments/cancel"),
			NotifyURL:   getEnv("PAYGATE_NOTIFY_URL", "http://localhost:8080/payments/notify"),
			Sandbox:     os.Getenv("PAYGATE_SANDBOX") != "false",
		},
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = fmt.Sprintf(":%s", p)
	}
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SweepInterval = d
		}
	}
	if v := os.Getenv("PAYGATE_TRUSTED_CIDRS"); v != "" {
		cfg.Gateway.TrustedCIDRs = strings.Split(v, ",")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openRepo(cfg Config) (repository.AuctionDB, error) {
	if cfg.DBPath != "" {
		return repository.NewSQLiteRepo(cfg.DBPath)
	}
	utils.Warn("DB_PATH not set, using in-memory store", nil)
	return repository.NewMemoryRepo(), nil
}

// startScheduler runs the activation and close-out sweeps on a fixed interval.
func startScheduler(closeoutSvc *closeout.CloseoutService, interval time.Duration) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if activated := closeoutSvc.ActivateDue(); len(activated) > 0 {
					utils.Info("auctions activated", map[string]any{"auction_ids": activated})
				}
				for _, res := range closeoutSvc.SweepExpired() {
					if res.Error != "" {
						utils.Error("sweep: auction close-out failed", map[string]any{
							"auction_id": res.AuctionID, "error": res.Error,
						})
					}
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

// seedDemoData loads a few sample auctions for local runs
func seedDemoData(repo repository.AuctionDB) {
	now := time.Now().UTC()
	auctions := []model.Auction{
		{
			AuctionID: "auction1", ProductID: "product1", VendorID: "vendor1",
			Title: "Vintage camera", Status: model.AuctionActive,
			RegistrationFee: decimal.NewFromInt(50),
			StartDate:       now.Add(-time.Hour), EndDate: now.Add(24 * time.Hour),
		},
		{
			AuctionID: "auction2", ProductID: "product2", VendorID: "vendor1",
			Title: "Mechanical watch", Status: model.AuctionApproved,
			RegistrationFee: decimal.NewFromInt(100),
			StartDate:       now.Add(time.Hour), EndDate: now.Add(48 * time.Hour),
		},
	}
	for _, a := range auctions {
		if err := repo.PutAuction(a); err != nil {
			utils.Warn("failed to seed auction", map[string]any{
				"auction_id": a.AuctionID, "error": err.Error(),
			})
		}
	}
}
