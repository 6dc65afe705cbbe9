package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"order-review-svc/internal/configs"
	"order-review-svc/internal/delivery/kafka"
	"order-review-svc/internal/service"
)

// Publishes the status command stored at COMMAND_JSON_PATH (or the first
// argument) to the commands topic, keyed by order id. The command is signed
// with COMMAND_TOKEN, a customer token from /api/auth/customers/login.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env loaded: %s", err)
	}

	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	if err := cfg.SetupLogger(); err != nil {
		logrus.Fatalf("logger: %s", err)
	}

	if cfg.CommandToken == "" {
		logrus.Fatal("COMMAND_TOKEN is required")
	}

	path := cfg.CommandJSONPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		logrus.Fatalf("open json file: %s", err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		logrus.Fatalf("read json file: %s", err)
	}

	var cmd service.StatusCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		logrus.Fatalf("%s is not a status command: %s", path, err)
	}

	pub := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaCommandsTopic)
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key := []byte(strconv.FormatUint(uint64(cmd.OrderID), 10))
	authz := kafkago.Header{Key: kafka.HeaderAuthorization, Value: []byte("Bearer " + cfg.CommandToken)}
	if err := pub.Publish(ctx, key, body, authz); err != nil {
		logrus.Fatalf("publish failed: %s", err)
	}
	logrus.WithFields(logrus.Fields{
		"order_id": cmd.OrderID,
		"status":   cmd.Status,
		"topic":    cfg.KafkaCommandsTopic,
	}).Print("status command published")
}
