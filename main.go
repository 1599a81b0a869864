package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "art-auction/internal/auctionService"
	"art-auction/internal/config"
	model "art-auction/internal/models"
	"art-auction/internal/repository"
	"art-auction/internal/server"
	"art-auction/internal/sweeper"
	"art-auction/utils"
)

const defaultConfigPath = "./config/config.yaml"

func main() {
	confPath := flag.String("conf", defaultConfigPath, "config file path")
	flag.Parse()

	cfg, err := config.Load(*confPath)
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	db, err := repository.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.Database.Driver, "error": err.Error()})
	}
	store := repository.NewGormStore(db)

	if cfg.Seed {
		if err := seedDatabase(store); err != nil {
			utils.Fatal("failed to seed database", map[string]any{"error": err.Error()})
		}
	}

	auctionSvc := auction.NewAuctionService(store)
	router := server.SetupRouter(auctionSvc, cfg.Admin.Token)

	if cfg.Sweeper.Enabled {
		sw, err := sweeper.New(store, cfg.Sweeper.Schedule)
		if err != nil {
			utils.Fatal("failed to start sweeper", map[string]any{"error": err.Error()})
		}
		sw.Start()
		defer sw.Stop()
	}

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"port": cfg.Server.Port})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("forced shutdown", map[string]any{"error": err.Error()})
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// seedDatabase populates an empty store with two sample submissions, approves
// the first and opens a 24h auction on it
func seedDatabase(store repository.AuctionStore) error {
	ctx := context.Background()

	existing, err := store.ListSubmissions(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	first, err := store.CreateSubmission(ctx, model.Submission{
		ArtistName:    "SharkBoy",
		WalletAddress: "0x1234567890abcdef1234567890abcdef12345678",
		ArtworkURL:    "https://images.unsplash.com/photo-1551244072-5d12893278ab?auto=format&fit=crop&w=800&q=80",
		Description:   "A deep dive into the oceanic cultural shifts.",
		ReservePrice:  "0.1",
		Status:        model.SubmissionPending,
	})
	if err != nil {
		return err
	}

	if _, err := store.CreateSubmission(ctx, model.Submission{
		ArtistName:    "OceanArt",
		WalletAddress: "0xabcdef1234567890abcdef1234567890abcdef12",
		ArtworkURL:    "https://images.unsplash.com/photo-1518020382113-a7e8fc38eac9?auto=format&fit=crop&w=800&q=80",
		Description:   "Neon dreams on Base.",
		ReservePrice:  "0.2",
		Status:        model.SubmissionPending,
	}); err != nil {
		return err
	}

	approved := model.SubmissionApproved
	if _, err := store.UpdateSubmission(ctx, first.ID, model.SubmissionUpdate{Status: &approved}); err != nil {
		return err
	}

	_, err = store.CreateAuction(ctx, model.Auction{
		SubmissionID: first.ID,
		EndTime:      time.Now().UTC().Add(24 * time.Hour),
	})
	return err
}
