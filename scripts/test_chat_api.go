package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // LLM turns can be slow, no timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func turn(sessionID, text string) (string, map[string]interface{}) {
	resp, body, err := sendRequest("POST", "/chat/v1/turn", map[string]interface{}{
		"session_id": sessionID,
		"text":       text,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var parsed map[string]interface{}
	json.Unmarshal(body, &parsed)
	prettyPrint(parsed)

	if data, ok := parsed["data"].(map[string]interface{}); ok {
		if id, ok := data["session_id"].(string); ok {
			return id, data
		}
	}
	return sessionID, nil
}

func main() {
	color.Cyan("🚀 Starting Chat API Smoke Test\n")

	// 1. Greeting should take the fast path (no agents, no evidence)
	color.Yellow("\n1. Greeting (trivial FAQ fast path)")
	sessionID, data := turn("", "xin chào")
	if data != nil {
		if evidence, ok := data["evidence"].([]interface{}); ok && len(evidence) > 0 {
			color.Red("Unexpected: greeting produced evidence")
		}
	}
	color.Cyan("Session: %s", sessionID)

	// 2. Numeric lookup
	color.Yellow("\n2. Score lookup")
	sessionID, _ = turn(sessionID, "Điểm chuẩn Học viện Kỹ thuật Quân sự năm 2024?")

	// 3. Follow-up relying on conversation memory
	color.Yellow("\n3. Follow-up (school and year implicit)")
	sessionID, _ = turn(sessionID, "còn khối A01 thì sao?")

	// 4. Hybrid question
	color.Yellow("\n4. Hybrid eligibility question")
	sessionID, _ = turn(sessionID, "Được 26 điểm có đỗ không và cần tiêu chuẩn sức khỏe gì?")

	// 5. History
	color.Yellow("\n5. History")
	resp, body, err := sendRequest("GET", "/chat/v1/history/"+sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var history map[string]interface{}
	json.Unmarshal(body, &history)
	prettyPrint(history)

	// 6. Rewind to the first checkpoint (pure read)
	color.Yellow("\n6. Rewind to seq 1")
	resp, body, err = sendRequest("GET", "/chat/v1/history/"+sessionID+"/1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var rewound map[string]interface{}
	json.Unmarshal(body, &rewound)
	prettyPrint(rewound)

	color.Cyan("\n✅ Smoke test finished")
}
