package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Read an exported devices CSV (defaults to provided/devices.csv)
// 2. POST it to /devices/import twice
// 3. Check the second import created nothing and updated every row of the first
// 4. Read the sync-report topic and check the last report for devices matches the second import
// 5. Check /sync/status agrees

type result struct {
	Source        string   `json:"source"`
	Created       int      `json:"created"`
	Updated       int      `json:"updated"`
	Skipped       int      `json:"skipped"`
	Errors        int      `json:"errors"`
	Total         int      `json:"total"`
	ErrorMessages []string `json:"errorMessages"`
}

type report struct {
	Source  string `json:"source"`
	Outcome string `json:"outcome"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Total   int    `json:"total"`
}

const (
	baseURL = "http://localhost:8080"
	broker  = "localhost:9092"
	topic   = "sync-reports"
)

func main() {
	path := "../../provided/devices.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Errorf("failed to read %s: %w", path, err))
	}

	first := importDevices(string(data))
	fmt.Printf("First import: %+v\n", first)
	second := importDevices(string(data))
	fmt.Printf("Second import: %+v\n", second)

	failed := false
	if second.Created != 0 {
		fmt.Printf("Re-import created %d devices, expected 0\n", second.Created)
		failed = true
	}
	if second.Updated != first.Created+first.Updated {
		fmt.Printf("Re-import updated %d devices, expected %d\n", second.Updated, first.Created+first.Updated)
		failed = true
	}

	last, ok := lastReport("devices")
	switch {
	case !ok:
		fmt.Println("No devices report found on topic", topic)
	case last.Updated != second.Updated || last.Created != second.Created:
		fmt.Printf("Report mismatch: expected %+v, got %+v\n", second, last)
		failed = true
	default:
		fmt.Printf("Last report on %s: %+v\n", topic, last)
	}

	resp, err := http.Get(baseURL + "/sync/status")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	var status map[string]report
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		panic(err)
	}
	if got := status["devices"]; got.Updated != second.Updated {
		fmt.Printf("Status mismatch: expected %d updated, got %+v\n", second.Updated, got)
		failed = true
	}

	if failed {
		fmt.Println("E2E test failed")
		os.Exit(1)
	}
	fmt.Println("E2E test completed")
}

func importDevices(csv string) result {
	resp, err := http.Post(baseURL+"/devices/import", "text/csv", strings.NewReader(csv))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Errorf("import failed: HTTP %d: %s", resp.StatusCode, body))
	}
	var res result
	if err := json.Unmarshal(body, &res); err != nil {
		panic(fmt.Errorf("failed to decode import result: %w", err))
	}
	return res
}

// lastReport reads the report topic from the start and keeps the newest
// record for source.
func lastReport(source string) (report, bool) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
	})
	defer reader.Close()
	if err := reader.SetOffset(kafka.FirstOffset); err != nil {
		panic(err)
	}

	var last report
	found := false
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		msg, err := reader.ReadMessage(ctx)
		cancel()
		if err != nil {
			return last, found
		}
		var record struct {
			Payload report `json:"payload"`
		}
		if err := json.Unmarshal(msg.Value, &record); err != nil {
			continue
		}
		if record.Payload.Source == source {
			last = record.Payload
			found = true
		}
	}
}
