package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"roomservice/i18n"
	"roomservice/metrics"
	"roomservice/models"
)

const defaultChatEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// ChatService bridges the guest AI assistant to the hosted LLM. Each call is
// stateless: the system prompt is rebuilt from current hotel data, the model
// keeps no memory between calls beyond what the client re-sends.
type ChatService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewChatService(apiKey, endpoint string) *ChatService {
	if endpoint == "" {
		endpoint = defaultChatEndpoint
	}
	return &ChatService{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// BuildSystemPrompt embeds hotel identity, wifi, checkout time, reception
// phone, the full menu and the service list into one instruction string.
func BuildSystemPrompt(data GuestData, lang string) string {
	var sb strings.Builder

	sb.WriteString("You are the in-room guest assistant of a hotel. Answer briefly and politely, in the guest's language.\n")
	if data.Hotel != nil {
		sb.WriteString(fmt.Sprintf("Hotel: %s\n", data.Hotel.Name))
		if data.Hotel.WifiName != "" {
			sb.WriteString(fmt.Sprintf("WiFi network: %s, password: %s\n", data.Hotel.WifiName, data.Hotel.WifiPassword))
		}
		if data.Hotel.CheckoutTime != "" {
			sb.WriteString(fmt.Sprintf("Checkout time: %s\n", data.Hotel.CheckoutTime))
		}
		if data.Hotel.ReceptionPhone != "" {
			sb.WriteString(fmt.Sprintf("Reception phone: %s\n", data.Hotel.ReceptionPhone))
		}
	}

	if len(data.MenuItems) > 0 {
		sb.WriteString("Menu:\n")
		for _, item := range data.MenuItems {
			sb.WriteString(fmt.Sprintf("- %s (%s, %.2f): %s\n", item.Name, item.Type, item.Price, item.Description))
		}
	}

	if len(data.Services) > 0 {
		sb.WriteString("Available services:\n")
		for _, svc := range data.Services {
			sb.WriteString(fmt.Sprintf("- %s\n", svc.DisplayName))
		}
	}

	sb.WriteString(fmt.Sprintf("Guest language code: %s\n", lang))
	return sb.String()
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"system_instruction"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Reply forwards the user message with a freshly built system prompt and
// returns the model's text, or the fixed fallback sentence on any failure.
// Errors are never propagated to the guest.
func (s *ChatService) Reply(data GuestData, session *models.GuestSession, message string) string {
	reply, err := s.generate(BuildSystemPrompt(data, session.Language), message)
	if err != nil {
		metrics.IncChatFallback()
		return i18n.T(session.Language, "chat_unavailable")
	}
	return reply
}

func (s *ChatService) generate(systemPrompt, message string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("chat API key is not configured")
	}

	payload := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: message}}},
		},
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", s.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var gr geminiResponse
	if err := json.Unmarshal(bodyBytes, &gr); err != nil {
		return "", fmt.Errorf("JSON parse error: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty reply")
	}
	return text, nil
}
