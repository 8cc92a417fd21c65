package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"gorm.io/gorm"
)

// ChatService answers diet questions grounded in what the user logged
// today, via the Hugging Face inference API.
type ChatService struct {
	db     *gorm.DB
	client *http.Client
	token  string
	model  string
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{
		db:     db,
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
	}
}

// Ask sends the user's question with a summary of today's intake and
// persists both turns of the conversation.
func (s *ChatService) Ask(ctx context.Context, userID uint, question string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required")
	}

	now := time.Now()
	var entries []models.DietaryEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, dayStart(now), now).
		Preload("FoodItem.Profile").
		Find(&entries).Error; err != nil {
		return "", fmt.Errorf("db error fetching entries: %w", err)
	}

	var sb bytes.Buffer
	sb.WriteString("You are a nutrition assistant. Today's logged meals:\n")
	if len(entries) == 0 {
		sb.WriteString("- (no meals logged yet)\n")
	} else {
		for _, e := range entries {
			profile := e.FoodItem.Profile
			sb.WriteString(fmt.Sprintf("- %s x%.1f: %.0f kcal, %.0fg protein\n",
				e.FoodItem.Name, portionOf(e), profile.Calories*portionOf(e), profile.Protein*portionOf(e)))
		}
	}
	sb.WriteString("\nQuestion: " + question + "\nAnswer briefly and practically.")

	answer, err := s.generate(ctx, sb.String())
	if err != nil {
		return "", err
	}

	s.db.WithContext(ctx).Create(&models.ChatMessage{UserID: userID, Role: "user", Content: question})
	s.db.WithContext(ctx).Create(&models.ChatMessage{UserID: userID, Role: "assistant", Content: answer})
	return answer, nil
}

// History returns the most recent turns, oldest first.
func (s *ChatService) History(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	// reverse into chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (s *ChatService) generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 160,
			"temperature":    0.3,
		},
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", s.model),
		bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return "", fmt.Errorf("decode hf response error: %w", err)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty answer from hf")
	}
	return strings.TrimSpace(hfOut[0].GeneratedText), nil
}
