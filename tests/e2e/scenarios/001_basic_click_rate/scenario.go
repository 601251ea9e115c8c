package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic run generation and must match expected results.
const (
	totalRuns      = 200
	windowsPerRun  = 8
	windowLengthNs = int64(1_000_000_000)
)

// ### End - fixed configs

type runRequest struct {
	Counts         []int64 `json:"counts"`
	Timestamps     []int64 `json:"timestamps"`
	WindowLengthNs int64   `json:"windowLengthNs"`
	UnitMode       string  `json:"unitMode"`
}

type rateReport struct {
	RunID         string   `json:"runId"`
	WindowCount   int      `json:"windowCount"`
	TotalEvents   int64    `json:"totalEvents"`
	AggregateRate *float64 `json:"aggregateRateHz"`
}

type runToSend struct {
	runIndex    int
	jsonData    []byte
	totalEvents int64
	isOriginal  bool
}

// main runs the e2e scenario: 001_basic_click_rate
//
// It ingests deterministic tagging runs through POST /runs, replays some of them with the same
// idempotency key, then polls GET /runs/{runID}/report until every run has been analyzed.
//
// What it tests:
//   - Run ingestion and timeline reconstruction via POST /runs
//   - Idempotency key handling for duplicate runs (409 Conflict)
//   - Timeline event production and asynchronous rate analysis
//   - Rate report storage and retrieval
//
// Expected results:
//   - Every original run is accepted (202) and every duplicate is rejected (409)
//   - Every run gets a report with 8 windows whose aggregate rate is totalEvents / 8 s
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the click-rate API server
	parallel := 4                         // Number of concurrent requests
	totalDuplicates := 50                 // Duplicate runs sent on top of the originals
	fileStorageDir := ".tmp/file-storage" // File storage directory path relative to project root
	wantCleanFileStorage := true          // If true, clean up file storage directory before running scenario
	reportTimeout := 30 * time.Second     // How long to wait for all reports

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath := filepath.Join(projectRoot, fileStorageDir)

	if wantCleanFileStorage {
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_basic_click_rate")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("TOTAL_RUNS: %d\n", totalRuns)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	runs := make([]runToSend, 0, totalRuns+totalDuplicates)
	for runIndex := 1; runIndex <= totalRuns; runIndex++ {
		req := generateRun(runIndex)
		jsonData, err := json.Marshal(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate JSON for run %d: %v\n", runIndex, err)
			os.Exit(1)
		}
		runs = append(runs, runToSend{runIndex: runIndex, jsonData: jsonData, totalEvents: int64(len(req.Timestamps)), isOriginal: true})
	}
	for i := 0; i < totalDuplicates; i++ {
		original := runs[i%totalRuns]
		original.isOriginal = false
		runs = append(runs, original)
	}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var failed, accepted, conflicted int64

	for _, run := range runs {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(r runToSend) {
			defer wg.Done()
			defer func() { <-workerChan }()

			statusCode, err := sendRun(baseURL, r)
			switch {
			case err != nil:
				atomic.AddInt64(&failed, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Run %d failed: %v\n", r.runIndex, err)
			case statusCode == http.StatusAccepted && r.isOriginal:
				atomic.AddInt64(&accepted, 1)
			case statusCode == http.StatusConflict && !r.isOriginal:
				atomic.AddInt64(&conflicted, 1)
			default:
				atomic.AddInt64(&failed, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Run %d (original=%v) got unexpected status %d\n", r.runIndex, r.isOriginal, statusCode)
			}
		}(run)
	}
	wg.Wait()

	fmt.Println("=== Ingestion ===")
	fmt.Printf("Accepted request: %d\n", accepted)
	fmt.Printf("Conflicted request: %d\n", conflicted)
	fmt.Printf("Failed request: %d\n", failed)
	fmt.Println()
	if failed > 0 {
		os.Exit(1)
	}

	deadline := time.Now().Add(reportTimeout)
	for _, run := range runs[:totalRuns] {
		report, err := waitForReport(baseURL, runID(run.runIndex), deadline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Run %d: %v\n", run.runIndex, err)
			os.Exit(1)
		}
		if err := checkReport(report, run.totalEvents); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Run %d: %v\n", run.runIndex, err)
			os.Exit(1)
		}
	}

	fmt.Printf("All %d reports verified\n", totalRuns)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

func runID(runIndex int) string {
	return fmt.Sprintf("run-%06d", runIndex)
}

// generateRun spreads 1 + (runIndex+w)%5 tags evenly over window w.
func generateRun(runIndex int) runRequest {
	req := runRequest{WindowLengthNs: windowLengthNs, UnitMode: "native"}
	for w := 0; w < windowsPerRun; w++ {
		count := int64(1 + (runIndex+w)%5)
		req.Counts = append(req.Counts, count)
		for j := int64(0); j < count; j++ {
			req.Timestamps = append(req.Timestamps, j*(windowLengthNs/count))
		}
	}
	return req
}

func sendRun(baseURL string, run runToSend) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/runs", bytes.NewReader(run.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", runID(run.runIndex))

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func waitForReport(baseURL, id string, deadline time.Time) (*rateReport, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	for {
		resp, err := client.Get(baseURL + "/runs/" + id + "/report")
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode == http.StatusOK {
			var report rateReport
			err := json.NewDecoder(resp.Body).Decode(&report)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to decode report: %w", err)
			}
			return &report, nil
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("report not ready before deadline")
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func checkReport(report *rateReport, totalEvents int64) error {
	if report.WindowCount != windowsPerRun {
		return fmt.Errorf("window count %d, want %d", report.WindowCount, windowsPerRun)
	}
	if report.TotalEvents != totalEvents {
		return fmt.Errorf("total events %d, want %d", report.TotalEvents, totalEvents)
	}
	want := float64(totalEvents) / windowsPerRun
	if report.AggregateRate == nil || math.Abs(*report.AggregateRate-want) > 1e-9 {
		return fmt.Errorf("aggregate rate %v, want %v", report.AggregateRate, want)
	}
	return nil
}
