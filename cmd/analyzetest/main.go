package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"reviewlens-backend/internal/analyses"
	"reviewlens-backend/internal/complaints"
	"reviewlens-backend/internal/inference"
	"reviewlens-backend/internal/rating"
	"reviewlens-backend/internal/shared/config"
)

var sampleReviews = []string{
	"Absolutely love these, the sound quality is amazing and they are super comfortable.",
	"Terrible product. Broken out of the box and the seller refused a refund.",
	"Battery life is decent but the bluetooth connection drops constantly.",
	"Shipping took three weeks and the packaging was damaged when it arrived.",
	"Great value for the price, would recommend to anyone.",
}

func main() {
	cfg := config.Load()

	reviewsPath := flag.String("reviews", "", "Path to a JSON array of review texts (optional, uses built-in sample otherwise)")
	outPath := flag.String("out", "", "Path to write the analysis JSON (optional)")
	useModel := flag.Bool("ml", cfg.UseMLRating, "Use the trained rating model if its artifact is available")
	zeroShotURL := flag.String("zero-shot-url", cfg.ZeroShotURL, "Zero-shot inference endpoint (optional)")
	threshold := flag.Float64("threshold", cfg.ComplaintThreshold, "Minimum zero-shot confidence for a complaint match")
	flag.Parse()

	reviews := sampleReviews
	if strings.TrimSpace(*reviewsPath) != "" {
		loaded, err := loadReviews(*reviewsPath)
		if err != nil {
			exitErr(err.Error())
		}
		reviews = loaded
	}

	predictor, mode := rating.Resolve(cfg.RatingModelPath, *useModel)

	var zeroShot inference.ZeroShot
	if strings.TrimSpace(*zeroShotURL) != "" {
		client, err := inference.NewClient(*zeroShotURL, cfg.ZeroShotAPIKey)
		if err != nil {
			exitErr(fmt.Sprintf("zero-shot client: %v", err))
		}
		zeroShot = client
	}
	classifier := complaints.Resolve(zeroShot, cfg.ClassifierBatch)

	svc := analyses.NewService(predictor, mode, classifier, *threshold)
	rec := svc.Analyze(context.Background(), reviews)

	pretty, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	_, _ = os.Stdout.Write([]byte("\n"))
}

func loadReviews(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reviews: %v", err)
	}
	var reviews []string
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("parse reviews: %v", err)
	}
	if len(reviews) == 0 {
		return nil, fmt.Errorf("no reviews in %s", path)
	}
	return reviews, nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
