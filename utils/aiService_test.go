package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = "Python is a programming language. It supports multiple paradigms. " +
	"Variables hold values and functions group reusable logic. Loops repeat work over collections."

func offlineOnlyConfig() {
	config.AppConfig = &config.Config{AiTimeoutSec: 1}
}

func TestGenerateQuizOfflineDeterministic(t *testing.T) {
	offlineOnlyConfig()

	first := GenerateQuiz(sampleContent, 3)
	second := GenerateQuiz(sampleContent, 3)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
	assert.LessOrEqual(t, len(first.Questions), 3)
	assert.NotEmpty(t, first.Questions)

	// Every question carries exactly one correct option
	for _, q := range first.Questions {
		correct := 0
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		assert.Equal(t, 1, correct, q.Question)
	}
}

func TestGenerateQuizKeywordSelection(t *testing.T) {
	offlineOnlyConfig()

	pythonQuiz := GenerateQuiz("An introduction to Python functions and modules for beginners. More text here.", 2)
	webQuiz := GenerateQuiz("Learn JavaScript and web development with the DOM. Build pages interactively.", 2)

	require.NotEmpty(t, pythonQuiz.Questions)
	require.NotEmpty(t, webQuiz.Questions)
	assert.NotEqual(t, pythonQuiz.Questions[0].Question, webQuiz.Questions[0].Question)
}

func TestSummarizeContentOffline(t *testing.T) {
	offlineOnlyConfig()

	summary := SummarizeContent(sampleContent)
	assert.Contains(t, summary, "# Content Summary")
	assert.Contains(t, summary, "Python is a programming language.")

	again := SummarizeContent(sampleContent)
	assert.Equal(t, summary, again)
}

func TestGenerateStudyNotesOffline(t *testing.T) {
	offlineOnlyConfig()

	notes := GenerateStudyNotes(sampleContent)
	assert.Contains(t, notes, "## Overview")
	assert.Contains(t, notes, "## Summary")
}

func TestGenerateQuizFallsBackThroughChain(t *testing.T) {
	// Primary hangs past the client timeout, secondary answers with
	// garbage; the offline backend must still produce a quiz.
	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer gemini.Close()

	openai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"not json at all"}}]}`)
	}))
	defer openai.Close()

	config.AppConfig = &config.Config{
		GeminiApiKey: "k1",
		GeminiModel:  "gemini-test",
		OpenAIApiKey: "k2",
		OpenAIModel:  "gpt-test",
		AiTimeoutSec: 1,
	}
	geminiAPIBase = gemini.URL
	openaiAPIBase = openai.URL
	defer func() {
		geminiAPIBase = ""
		openaiAPIBase = ""
	}()

	quiz := GenerateQuiz(sampleContent, 3)
	require.NotNil(t, quiz)
	assert.NotEmpty(t, quiz.Questions)
}

func TestGenerateQuizUsesPrimaryWhenHealthy(t *testing.T) {
	payload := `{"questions":[{"question":"What is Go?","options":[` +
		`{"text":"A language","is_correct":true},` +
		`{"text":"A fish","is_correct":false}]}]}`

	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body := strings.ReplaceAll(payload, `"`, `\"`)
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":"%s"}]}}]}`, body)
	}))
	defer gemini.Close()

	config.AppConfig = &config.Config{
		GeminiApiKey: "k1",
		GeminiModel:  "gemini-test",
		AiTimeoutSec: 1,
	}
	geminiAPIBase = gemini.URL
	defer func() { geminiAPIBase = "" }()

	quiz := GenerateQuiz(sampleContent, 1)
	require.NotNil(t, quiz)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "What is Go?", quiz.Questions[0].Question)
}

func TestStripCodeFences(t *testing.T) {
	fenced := "```json\n{\"a\":1}\n```"
	assert.Equal(t, `{"a":1}`, stripCodeFences(fenced))

	bare := `{"a":1}`
	assert.Equal(t, bare, stripCodeFences(bare))
}

func TestParseQuizJSONRejectsBadShapes(t *testing.T) {
	_, err := parseQuizJSON(`{"questions":[]}`)
	assert.Error(t, err)

	// Two correct options on one question is invalid
	_, err = parseQuizJSON(`{"questions":[{"question":"q","options":[` +
		`{"text":"a","is_correct":true},{"text":"b","is_correct":true}]}]}`)
	assert.Error(t, err)
}
