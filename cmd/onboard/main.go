package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/OPS-OnboardingService/internal/integrations/n8n"
	"github.com/m04kA/OPS-OnboardingService/internal/service/access"
	"github.com/m04kA/OPS-OnboardingService/internal/service/form"
	"github.com/m04kA/OPS-OnboardingService/internal/service/schedule"
	"github.com/m04kA/OPS-OnboardingService/pkg/logger"
)

// onboard - CLI клиент сервиса: читает заявку из TOML файла,
// проходит access gate и отправляет форму через работающий сервис

// formFile структура TOML файла заявки
type formFile struct {
	Form         form.Fields        `toml:"form"`
	WorkingHours map[string]daySpec `toml:"working_hours"`
	Holidays     holidaysSpec       `toml:"holidays"`
}

type daySpec struct {
	Start  string `toml:"start"`
	End    string `toml:"end"`
	Closed bool   `toml:"closed"`
}

type holidaysSpec struct {
	// Токены MM-DD из каталога стандартных праздников
	Selected []string `toml:"selected"`
	// Полные даты YYYY-MM-DD; год отбрасывается при добавлении
	Custom []string `toml:"custom"`
}

// apiClient HTTP клиент к собственному сервису
// Реализует access.Verifier и form.SubmissionClient
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

type apiEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

// submissionError сохраняет текст ошибки сервиса и матчится с n8n.ErrWebhook,
// чтобы контроллер показал конкретное сообщение, а не общее
type submissionError struct {
	msg string
}

func (e *submissionError) Error() string { return e.msg }
func (e *submissionError) Unwrap() error { return n8n.ErrWebhook }

func (c *apiClient) post(ctx context.Context, path string, body interface{}) (*apiEnvelope, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	return &envelope, nil
}

func (c *apiClient) VerifyPassword(ctx context.Context, candidate string) (bool, error) {
	envelope, err := c.post(ctx, "/api/verify-password", map[string]string{"password": candidate})
	if err != nil {
		return false, err
	}
	return envelope.Success, nil
}

func (c *apiClient) Forward(ctx context.Context, payload interface{}) (*n8n.Result, error) {
	envelope, err := c.post(ctx, "/api/submit-form", payload)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = "submission rejected"
		}
		return nil, &submissionError{msg: msg}
	}
	return &n8n.Result{Data: envelope.Data}, nil
}

func main() {
	var (
		configPath = flag.String("config", "onboard.toml", "path to the onboarding form TOML file")
		addr       = flag.String("addr", "http://localhost:8080", "base URL of the onboarding service")
		password   = flag.String("password", os.Getenv("ONBOARD_PASSWORD"), "form access password")
	)
	flag.Parse()

	log, err := logger.New("", "info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	var file formFile
	if _, err := toml.DecodeFile(*configPath, &file); err != nil {
		log.Fatal("Failed to read form file %s: %v", *configPath, err)
	}

	// Собираем composite-поле working hours
	editor := schedule.NewEditor()
	for day, spec := range file.WorkingHours {
		if spec.Start != "" {
			if err := editor.SetTime(day, "start", spec.Start); err != nil {
				log.Fatal("Invalid working hours: %v", err)
			}
		}
		if spec.End != "" {
			if err := editor.SetTime(day, "end", spec.End); err != nil {
				log.Fatal("Invalid working hours: %v", err)
			}
		}
		if spec.Closed {
			if err := editor.ToggleClosed(day); err != nil {
				log.Fatal("Invalid working hours: %v", err)
			}
		}
	}
	for _, token := range file.Holidays.Selected {
		editor.ToggleHoliday(token)
	}
	for _, isoDate := range file.Holidays.Custom {
		if err := editor.AddCustomHoliday(isoDate); err != nil {
			log.Fatal("Invalid custom holiday: %v", err)
		}
	}

	serialized, err := editor.Serialize()
	if err != nil {
		log.Fatal("Failed to serialize working hours: %v", err)
	}

	fields := file.Form
	fields.WorkingHours = serialized

	if err := fields.Validate(); err != nil {
		log.Fatal("Form validation failed: %v", err)
	}

	client := &apiClient{
		baseURL:    *addr,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}

	ctx := context.Background()

	// Проходим access gate
	gate := access.NewGate(client)
	if !gate.Verify(ctx, *password) {
		log.Fatal("Access denied: %s", gate.Err())
	}
	log.Info("Access gate unlocked")

	// Отправляем форму
	controller := form.NewController(client, gate, log)
	result, err := controller.Submit(ctx, fields)
	if err != nil {
		log.Fatal("Submission failed: %v", err)
	}

	pretty, _ := json.MarshalIndent(result.Data, "", "  ")
	log.Info("Form submitted successfully")
	fmt.Println(string(pretty))
}
