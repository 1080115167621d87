package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

type Device struct {
	ID             string `json:"id,omitempty"`
	Owner          string `json:"owner"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	SlaveID        string `json:"slaveId"`
	DeviceID       string `json:"deviceId"`
	TotalDatabased int    `json:"totalDatabased"`
	Product        string `json:"product"`
	Status         string `json:"status"`
}

func main() {
	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	// 1. GET /health
	resp, err := http.Get(baseURL + "/health")
	if err != nil {
		panic(err)
	}
	resp.Body.Close()
	fmt.Println("GET /health status:", resp.Status)

	// 2. POST /devices
	payload, _ := json.Marshal(Device{
		Owner:          "AISYAH",
		Phone:          "0123456789",
		Company:        "KEDAI RUNCIT",
		SlaveID:        "SLV-CLIENT-001",
		DeviceID:       "DEV-001",
		TotalDatabased: 120,
		Product:        "Basic",
		Status:         "PAIRED",
	})
	fmt.Println("Payload:", string(payload))
	resp, err = http.Post(baseURL+"/devices", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		panic(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Println("POST /devices status:", resp.Status)
	if resp.StatusCode != http.StatusCreated {
		fmt.Println("POST response body:", string(body))
	}

	// 3. GET /devices
	resp, err = http.Get(baseURL + "/devices")
	if err != nil {
		panic(err)
	}
	var list struct {
		Devices []Device `json:"devices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		panic(err)
	}
	resp.Body.Close()
	fmt.Println("GET /devices count:", len(list.Devices))

	// 4. GET /devices/stats
	resp, err = http.Get(baseURL + "/devices/stats")
	if err != nil {
		panic(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Println("GET /devices/stats:", string(body))

	// 5. GET /devices/export
	resp, err = http.Get(baseURL + "/devices/export?format=csv")
	if err != nil {
		panic(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Printf("GET /devices/export %s (%s):\n%s", resp.Status, resp.Header.Get("Content-Disposition"), body)

	// 6. GET /sync/status
	resp, err = http.Get(baseURL + "/sync/status")
	if err != nil {
		panic(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Println("GET /sync/status:", string(body))
}
