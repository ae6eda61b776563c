package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const appPort = 8081

const benchConfig = `
server:
  port: "8081"
  env: "production"
  api_keys:
    - "bench-key-12345"
rate_limit:
  requests_per_second: 100000
  burst: 200000
models:
  mode: merge
  providers:
    bench-provider:
      base_url: "https://bench.example.com/v1"
      api: "openai-completions"
      models:
        - id: "bench-model"
          name: "Bench Model"
          context_window: 128000
          max_tokens: 8192
`

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Duration of the test")
	rate := flag.Int("rate", 50, "Requests per second")
	fallback := flag.Bool("fallback", false, "Resolve an unknown model to exercise the fallback path")
	flag.Parse()

	fmt.Println("Building application...")
	buildCmd := exec.Command("go", "build", "-o", "bin/server", "./cmd/server")
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	configFile := "bench_config.yaml"
	if err := os.WriteFile(configFile, []byte(benchConfig), 0644); err != nil {
		log.Fatalf("Failed to write config: %v", err)
	}
	defer os.Remove(configFile)

	fmt.Println("Starting application...")
	cmd := exec.Command("./bin/server")
	cmd.Env = append(os.Environ(), fmt.Sprintf("SERVER_PORT=%d", appPort))

	logFile, _ := os.Create("bench_server.log")
	defer logFile.Close()
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}
	defer func() {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	}()

	waitForApp(fmt.Sprintf("http://localhost:%d/health", appPort))

	modelID := "bench-model"
	if *fallback {
		modelID = "missing-model"
	}

	targeter := func(t *vegeta.Target) error {
		t.Method = "GET"
		t.URL = fmt.Sprintf("http://localhost:%d/v1/resolve?provider=bench-provider&model=%s", appPort, modelID)
		t.Header = http.Header{
			"Authorization": []string{"Bearer bench-key-12345"},
		}
		return nil
	}

	fmt.Printf("Running benchmark: %s duration, %d req/s, model=%s\n", *duration, *rate, modelID)

	attacker := vegeta.NewAttacker()
	pacer := vegeta.Rate{Freq: *rate, Per: time.Second}

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, pacer, *duration, "resolve") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("--- Results ---")
	fmt.Printf("Requests:  %d\n", metrics.Requests)
	fmt.Printf("Success:   %.2f%%\n", metrics.Success*100)
	fmt.Printf("Mean:      %s\n", metrics.Latencies.Mean)
	fmt.Printf("P95:       %s\n", metrics.Latencies.P95)
	fmt.Printf("P99:       %s\n", metrics.Latencies.P99)
	fmt.Printf("Max:       %s\n", metrics.Latencies.Max)
	if len(metrics.Errors) > 0 {
		fmt.Printf("Errors:    %v\n", metrics.Errors)
	}
}

func waitForApp(url string) {
	client := http.Client{Timeout: 500 * time.Millisecond}
	for i := 0; i < 50; i++ {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	log.Fatal("App never became healthy")
}
