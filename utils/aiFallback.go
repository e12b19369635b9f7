package utils

import (
	"fmt"
	"strings"
)

// offlineBackend is the terminal tier of the generation chain. It is
// pure and deterministic for a given input and never returns an error.
type offlineBackend struct{}

func (offlineBackend) Name() string { return "offline" }

func (offlineBackend) GenerateQuiz(content string, numQuestions int) (*QuizData, error) {
	lower := strings.ToLower(content)

	var questions []GeneratedQuestion
	switch {
	case strings.Contains(lower, "python"):
		questions = pythonQuestions
	case strings.Contains(lower, "javascript") || strings.Contains(lower, "web"):
		questions = webQuestions
	default:
		questions = genericQuestions
	}

	if numQuestions > 0 && numQuestions < len(questions) {
		questions = questions[:numQuestions]
	}
	return &QuizData{Questions: questions}, nil
}

func (offlineBackend) Summarize(content string) (string, error) {
	intro := leadingSentences(content, 3)
	return fmt.Sprintf(`# Content Summary

This is a basic summary extracted from the lecture content:

%s

Note: For AI-generated summaries, configure a generation API key.`, intro), nil
}

func (offlineBackend) StudyNotes(content string) (string, error) {
	var points strings.Builder
	for i, sentence := range splitSentences(content, 5) {
		fmt.Fprintf(&points, "* %s\n", strings.TrimSpace(sentence))
		if i == 4 {
			break
		}
	}

	return fmt.Sprintf(`# Study Notes

## Overview
%s

## Key Points
%s
## Summary
Review the points above; they cover the most important concepts of this content.`,
		leadingSentences(content, 1), points.String()), nil
}

// leadingSentences returns the first n sentences of text with basic
// HTML tags converted to markdown, truncating long unpunctuated input
func leadingSentences(text string, n int) string {
	sentences := splitSentences(text, n)
	var intro string
	if len(sentences) > 0 {
		intro = strings.Join(sentences, ". ") + "."
	} else if len(text) > 200 {
		intro = text[:200] + "..."
	} else {
		intro = text
	}
	return stripHTML(intro)
}

func splitSentences(text string, n int) []string {
	var sentences []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == n {
			break
		}
	}
	return sentences
}

func stripHTML(text string) string {
	replacer := strings.NewReplacer(
		"<p>", "", "</p>", "\n\n",
		"<h1>", "# ", "</h1>", "\n\n",
		"<h2>", "## ", "</h2>", "\n\n",
		"<h3>", "### ", "</h3>", "\n\n",
		"<ul>", "", "</ul>", "",
		"<li>", "- ", "</li>", "\n",
	)
	return replacer.Replace(text)
}

// Fixed fallback question sets. Deterministic generic content used when
// no AI backend is reachable.
var pythonQuestions = []GeneratedQuestion{
	{
		Question: "What is Python's primary programming paradigm?",
		Options: []GeneratedOption{
			{Text: "Object-oriented programming", IsCorrect: true},
			{Text: "Procedural programming only", IsCorrect: false},
			{Text: "Functional programming only", IsCorrect: false},
			{Text: "Assembly programming", IsCorrect: false},
		},
	},
	{
		Question: "Which of the following is a correct way to create a list in Python?",
		Options: []GeneratedOption{
			{Text: "my_list = [1, 2, 3]", IsCorrect: true},
			{Text: "my_list = (1, 2, 3)", IsCorrect: false},
			{Text: "my_list = {1, 2, 3}", IsCorrect: false},
			{Text: "my_list = 1, 2, 3", IsCorrect: false},
		},
	},
	{
		Question: "What does the 'self' parameter in Python class methods represent?",
		Options: []GeneratedOption{
			{Text: "The instance of the class", IsCorrect: true},
			{Text: "The class itself", IsCorrect: false},
			{Text: "The parent class", IsCorrect: false},
			{Text: "A required keyword", IsCorrect: false},
		},
	},
}

var webQuestions = []GeneratedQuestion{
	{
		Question: "Which of the following is used to declare a variable in modern JavaScript?",
		Options: []GeneratedOption{
			{Text: "let and const", IsCorrect: true},
			{Text: "dim", IsCorrect: false},
			{Text: "define", IsCorrect: false},
			{Text: "int and string", IsCorrect: false},
		},
	},
	{
		Question: "What does the DOM stand for in web development?",
		Options: []GeneratedOption{
			{Text: "Document Object Model", IsCorrect: true},
			{Text: "Data Object Model", IsCorrect: false},
			{Text: "Document Oriented Markup", IsCorrect: false},
			{Text: "Display Object Management", IsCorrect: false},
		},
	},
}

var genericQuestions = []GeneratedQuestion{
	{
		Question: "What is a function in programming?",
		Options: []GeneratedOption{
			{Text: "A reusable block of code that performs a specific task", IsCorrect: true},
			{Text: "A type of variable", IsCorrect: false},
			{Text: "A database query", IsCorrect: false},
			{Text: "A hardware component", IsCorrect: false},
		},
	},
	{
		Question: "Which data structure follows the LIFO (Last In, First Out) principle?",
		Options: []GeneratedOption{
			{Text: "Stack", IsCorrect: true},
			{Text: "Queue", IsCorrect: false},
			{Text: "Tree", IsCorrect: false},
			{Text: "Graph", IsCorrect: false},
		},
	},
	{
		Question: "What does API stand for?",
		Options: []GeneratedOption{
			{Text: "Application Programming Interface", IsCorrect: true},
			{Text: "Automated Programming Interface", IsCorrect: false},
			{Text: "Application Process Integration", IsCorrect: false},
			{Text: "Algorithmic Programming Interface", IsCorrect: false},
		},
	},
}
