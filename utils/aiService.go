package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

const (
	GEMINI_URL = "https://generativelanguage.googleapis.com/v1beta/models"
	OPENAI_URL = "https://api.openai.com/v1/chat/completions"
)

// geminiAPIBase and openaiAPIBase override the backend hosts in tests
var (
	geminiAPIBase = ""
	openaiAPIBase = ""
)

// GeneratedOption is one answer choice of a generated question
type GeneratedOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// GeneratedQuestion is one multiple-choice question with exactly one
// correct option
type GeneratedQuestion struct {
	Question string            `json:"question"`
	Options  []GeneratedOption `json:"options"`
}

// QuizData is the structured quiz shape produced by generation
type QuizData struct {
	Questions []GeneratedQuestion `json:"questions"`
}

// contentBackend is one tier of the generation chain. Backends return
// an error to hand off to the next tier; the offline tier never errors.
type contentBackend interface {
	Name() string
	GenerateQuiz(content string, numQuestions int) (*QuizData, error)
	Summarize(content string) (string, error)
	StudyNotes(content string) (string, error)
}

// generationChain returns the configured backends in fallback order,
// always ending with the offline backend.
func generationChain() []contentBackend {
	var chain []contentBackend
	if config.AppConfig != nil && config.AppConfig.GeminiApiKey != "" {
		chain = append(chain, &geminiBackend{})
	}
	if config.AppConfig != nil && config.AppConfig.OpenAIApiKey != "" {
		chain = append(chain, &openaiBackend{})
	}
	return append(chain, offlineBackend{})
}

// GenerateQuiz produces a multiple-choice quiz from lecture content.
// It never fails: backend or parse errors fall through the chain down
// to the deterministic offline generator.
func GenerateQuiz(content string, numQuestions int) *QuizData {
	for _, backend := range generationChain() {
		quiz, err := backend.GenerateQuiz(content, numQuestions)
		if err != nil {
			log.Printf("Quiz generation via %s failed: %v", backend.Name(), err)
			continue
		}
		return quiz
	}
	// Unreachable: the offline backend never errors
	quiz, _ := offlineBackend{}.GenerateQuiz(content, numQuestions)
	return quiz
}

// SummarizeContent produces a summary of lecture content, never failing
func SummarizeContent(content string) string {
	for _, backend := range generationChain() {
		summary, err := backend.Summarize(content)
		if err != nil {
			log.Printf("Summarization via %s failed: %v", backend.Name(), err)
			continue
		}
		return summary
	}
	summary, _ := offlineBackend{}.Summarize(content)
	return summary
}

// GenerateStudyNotes produces structured study notes, never failing
func GenerateStudyNotes(content string) string {
	for _, backend := range generationChain() {
		notes, err := backend.StudyNotes(content)
		if err != nil {
			log.Printf("Study notes via %s failed: %v", backend.Name(), err)
			continue
		}
		return notes
	}
	notes, _ := offlineBackend{}.StudyNotes(content)
	return notes
}

func aiTimeout() time.Duration {
	if config.AppConfig != nil && config.AppConfig.AiTimeoutSec > 0 {
		return time.Duration(config.AppConfig.AiTimeoutSec) * time.Second
	}
	return 30 * time.Second
}

func quizPrompt(content string, numQuestions int) string {
	return fmt.Sprintf(`Generate a multiple-choice quiz with %d questions based on the following content:

%s

For each question provide 4 possible answers with exactly one correct answer.
Format your response as a JSON structure with this exact schema:
{"questions": [{"question": "...", "options": [{"text": "...", "is_correct": false}]}]}`, numQuestions, content)
}

func summaryPrompt(content string) string {
	return fmt.Sprintf(`Please provide a concise summary of the following content in 3-5 paragraphs,
highlighting the key concepts, main points and important definitions:

%s`, content)
}

func notesPrompt(content string) string {
	return fmt.Sprintf(`Create comprehensive study notes based on the following content.
Begin with a high-level overview, break the content into sections with headings and
bullet points, and end with a brief summary. Format the notes in markdown:

%s`, content)
}

// stripCodeFences removes a markdown code fence wrapper from a model
// response, which backends often add around JSON payloads
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "```json") {
		parts := strings.SplitN(text, "```json", 2)
		text = strings.SplitN(parts[1], "```", 2)[0]
	} else if strings.Contains(text, "```") {
		parts := strings.SplitN(text, "```", 3)
		if len(parts) >= 2 {
			text = parts[1]
		}
	}
	return strings.TrimSpace(text)
}

// parseQuizJSON parses and validates a quiz payload from a backend.
// A quiz with no questions or a question without exactly one correct
// option counts as a backend failure.
func parseQuizJSON(text string) (*QuizData, error) {
	var quiz QuizData
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &quiz); err != nil {
		return nil, fmt.Errorf("malformed quiz payload: %v", err)
	}
	if len(quiz.Questions) == 0 {
		return nil, errors.New("quiz payload has no questions")
	}
	for _, q := range quiz.Questions {
		correct := 0
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return nil, fmt.Errorf("question %q has %d correct options", q.Question, correct)
		}
	}
	return &quiz, nil
}

// --- Gemini backend (primary) ---

type geminiBackend struct{}

func (geminiBackend) Name() string { return "gemini" }

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (geminiBackend) complete(prompt string) (string, error) {
	base := GEMINI_URL
	if geminiAPIBase != "" {
		base = geminiAPIBase
	}
	url := fmt.Sprintf("%s/%s:generateContent", base, config.AppConfig.GeminiModel)

	var result geminiResponse
	resp, err := resty.New().SetTimeout(aiTimeout()).R().
		SetQueryParam("key", config.AppConfig.GeminiApiKey).
		SetBody(map[string]interface{}{
			"contents": []map[string]interface{}{
				{"parts": []map[string]string{{"text": prompt}}},
			},
		}).
		SetResult(&result).
		Post(url)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

func (g geminiBackend) GenerateQuiz(content string, numQuestions int) (*QuizData, error) {
	text, err := g.complete(quizPrompt(content, numQuestions))
	if err != nil {
		return nil, err
	}
	return parseQuizJSON(text)
}

func (g geminiBackend) Summarize(content string) (string, error) {
	text, err := g.complete(summaryPrompt(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g geminiBackend) StudyNotes(content string) (string, error) {
	text, err := g.complete(notesPrompt(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// --- OpenAI backend (secondary) ---

type openaiBackend struct{}

func (openaiBackend) Name() string { return "openai" }

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (openaiBackend) complete(prompt string) (string, error) {
	url := OPENAI_URL
	if openaiAPIBase != "" {
		url = openaiAPIBase
	}

	var result openaiResponse
	resp, err := resty.New().SetTimeout(aiTimeout()).R().
		SetAuthToken(config.AppConfig.OpenAIApiKey).
		SetBody(map[string]interface{}{
			"model": config.AppConfig.OpenAIModel,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		SetResult(&result).
		Post(url)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

func (o openaiBackend) GenerateQuiz(content string, numQuestions int) (*QuizData, error) {
	text, err := o.complete(quizPrompt(content, numQuestions))
	if err != nil {
		return nil, err
	}
	return parseQuizJSON(text)
}

func (o openaiBackend) Summarize(content string) (string, error) {
	text, err := o.complete(summaryPrompt(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (o openaiBackend) StudyNotes(content string) (string, error) {
	text, err := o.complete(notesPrompt(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
