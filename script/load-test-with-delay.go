package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario builds one request against the sync API
type Scenario struct {
	Name  string
	Build func(baseURL string, r *rand.Rand, batch int) (*http.Request, error)
}

// userPool holds the ids of users created so far; loans and notifications
// are attached to them
type userPool struct {
	mu  sync.Mutex
	ids []string
}

func (p *userPool) add(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, id)
}

func (p *userPool) pick(r *rand.Rand) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.ids) == 0 {
		return "", false
	}
	return p.ids[r.Intn(len(p.ids))], true
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent requests")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:3000", "Base URL for the API")
	batchSize := flag.Int("batch", 10, "Entries per POST batch")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	pool := &userPool{}
	scenarios := buildScenarios(pool)

	fmt.Printf("Load testing sync API at %s\n", *baseURL)
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Batch size: %d\n", *batchSize)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	client := &http.Client{Timeout: 10 * time.Second}

	// Seed users so loan and notification batches have owners
	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	seedReq, err := scenarios[0].Build(*baseURL, seed, *batchSize)
	if err == nil {
		record(stats, send(client, scenarios[0].Name, seedReq))
	}

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(*concurrency)
	for i := 0; i < *totalRequests; i++ {
		offset := int64(i)
		g.Go(func() error {
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
			r := rand.New(rand.NewSource(time.Now().UnixNano() + offset))
			scenario := scenarios[r.Intn(len(scenarios))]

			req, err := scenario.Build(*baseURL, r, *batchSize)
			if err != nil {
				record(stats, TestResult{Scenario: scenario.Name, Error: err})
				return nil
			}
			record(stats, send(client, scenario.Name, req))
			return nil
		})
	}
	_ = g.Wait()
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func buildScenarios(pool *userPool) []Scenario {
	return []Scenario{
		{
			Name: "Post Users",
			Build: func(baseURL string, r *rand.Rand, batch int) (*http.Request, error) {
				entries := make([]map[string]any, 0, batch)
				for i := 0; i < batch; i++ {
					id := uuid.NewString()
					phone := fmt.Sprintf("09%09d", r.Intn(1_000_000_000))
					pool.add(id)
					entries = append(entries, map[string]any{
						"id":         id,
						"fullName":   fmt.Sprintf("Load User %d", r.Intn(10000)),
						"phone":      phone,
						"totalLimit": float64(r.Intn(100)+1) * 1_000_000,
					})
				}
				return postJSON(baseURL+"/api/users", entries)
			},
		},
		{
			Name: "Post Loans",
			Build: func(baseURL string, r *rand.Rand, batch int) (*http.Request, error) {
				entries := make([]map[string]any, 0, batch)
				for i := 0; i < batch; i++ {
					userID, ok := pool.pick(r)
					if !ok {
						break
					}
					entries = append(entries, map[string]any{
						"id":     uuid.NewString(),
						"userId": userID,
						"amount": float64(r.Intn(500)+1) * 1000,
						"date":   time.Now().Format("2006-01-02"),
						"status": "pending",
					})
				}
				return postJSON(baseURL+"/api/loans", entries)
			},
		},
		{
			Name: "Post Notifications",
			Build: func(baseURL string, r *rand.Rand, batch int) (*http.Request, error) {
				entries := make([]map[string]any, 0, batch)
				for i := 0; i < batch; i++ {
					userID, ok := pool.pick(r)
					if !ok {
						break
					}
					entries = append(entries, map[string]any{
						"id":      uuid.NewString(),
						"userId":  userID,
						"title":   "Loan update",
						"message": "installment due",
						"time":    time.Now().Format(time.RFC3339),
						"type":    "info",
					})
				}
				return postJSON(baseURL+"/api/notifications", entries)
			},
		},
		{
			Name: "Get Data",
			Build: func(baseURL string, _ *rand.Rand, _ int) (*http.Request, error) {
				return http.NewRequest(http.MethodGet, baseURL+"/api/data", nil)
			},
		},
	}
}

func postJSON(url string, body any) (*http.Request, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func send(client *http.Client, scenario string, req *http.Request) TestResult {
	startTime := time.Now()
	resp, err := client.Do(req)
	result := TestResult{Scenario: scenario, ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ScenarioStats[result.Scenario]++
	if result.Success {
		stats.SuccessfulRequests++
	} else {
		stats.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		stats.ErrorCounts[errMsg]++
	}

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < stats.MinResponseTime {
		stats.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > stats.MaxResponseTime {
		stats.MaxResponseTime = result.ResponseTime
	}
}

func printResults(stats *TestStats) {
	completed := stats.SuccessfulRequests + stats.FailedRequests
	if completed == 0 {
		fmt.Println("No requests completed")
		return
	}

	rps := float64(completed) / stats.TotalTime.Seconds()
	successRps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	avgResponseTime := stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))

	sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
	copy(sortedTimes, stats.ResponseTimes)
	sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })
	percentile := func(p int) time.Duration {
		return sortedTimes[len(sortedTimes)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Completed Requests:  %d\n", completed)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(completed)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(completed)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- THROUGHPUT -----------------")
	fmt.Printf("Requests/sec:        %.2f\n", rps)
	fmt.Printf("Successful/sec:      %.2f\n", successRps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P95 Response:        %v\n", percentile(95))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-20s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(completed)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(completed)*100)
		}
	}
	fmt.Println("================================================")
}
