package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

const qaSystemPrompt = "You are an expert at anticipating audience questions for presentations. " +
	"Generate thoughtful, realistic questions that an audience might ask, along with " +
	"suggested answer frameworks. Focus on clarity, relevance, and helping the presenter " +
	"prepare thoroughly."

const (
	qaTemperature       = 0.8
	qaDocumentTextLimit = 2000
	qaDefaultDifficulty = "medium"
)

// Question is one anticipated audience question with a suggested approach.
type Question struct {
	Question        string `json:"question"`
	AnswerFramework string `json:"answer_framework"`
	Difficulty      string `json:"difficulty"`
}

// QAInput describes the presentation the questions are generated for.
type QAInput struct {
	Title        string
	Description  string
	DocumentText string
}

// GenerateQuestions produces anticipated audience questions. An API or parse
// failure degrades to a fixed question set.
func (s *Service) GenerateQuestions(ctx context.Context, input QAInput) []Question {
	if s.generator != nil {
		response, err := s.generator.Generate(ctx, qaSystemPrompt, qaPrompt(input), qaTemperature)
		if err == nil {
			if questions := parseQAResponse(response); len(questions) > 0 {
				return questions
			}
			log.Printf("[ERROR] Q&A response could not be parsed, using fallback questions")
		} else {
			log.Printf("[ERROR] Q&A generation failed, using fallback questions: %v", err)
		}
	}

	return fallbackQuestions(input.Title)
}

func qaPrompt(input QAInput) string {
	documentText := input.DocumentText
	if len(documentText) > qaDocumentTextLimit {
		documentText = documentText[:qaDocumentTextLimit] + "..."
	}

	contentSection := documentText
	if contentSection == "" {
		contentSection = "No document provided - generate general questions based on the title and description."
	}

	title := input.Title
	if title == "" {
		title = "Untitled"
	}

	return fmt.Sprintf(`Generate 8-10 realistic questions that an audience might ask after this presentation:

PRESENTATION TITLE: %s

DESCRIPTION: %s

CONTENT OVERVIEW:
%s

For each question, provide:
1. The question itself
2. A brief answer framework (2-3 sentences on how to approach answering it)
3. Difficulty level (easy, medium, hard)

Format your response as a JSON array. Return ONLY the JSON array, no additional text.

Example format:
[
  {"question": "What is the main goal?", "answer_framework": "Explain the objective clearly.", "difficulty": "easy"},
  {"question": "How will you measure success?", "answer_framework": "Define metrics and KPIs.", "difficulty": "medium"}
]

Focus on questions about clarifications, implementation details, challenges, impact, timeline, and resources.`,
		title, input.Description, contentSection)
}

// parseQAResponse extracts the question list from the model output, tolerating
// a markdown code fence around the JSON.
func parseQAResponse(response string) []Question {
	text := strings.TrimSpace(response)

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 2 {
			text = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	var parsed []Question
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		log.Printf("[DEBUG] Q&A JSON parsing error: %v", err)
		return nil
	}

	validated := make([]Question, 0, len(parsed))
	for _, q := range parsed {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if q.Difficulty == "" {
			q.Difficulty = qaDefaultDifficulty
		}
		validated = append(validated, q)
	}
	return validated
}

func fallbackQuestions(title string) []Question {
	if title == "" {
		title = "this topic"
	}

	return []Question{
		{
			Question:        fmt.Sprintf("What is the main objective of %s?", title),
			AnswerFramework: "Clearly state the primary goal and its importance. Explain why this matters to the audience and what success looks like.",
			Difficulty:      "easy",
		},
		{
			Question:        "What are the key challenges you anticipate?",
			AnswerFramework: "List 2-3 main challenges and explain your mitigation strategies. Be honest about risks while showing you have thought through solutions.",
			Difficulty:      "medium",
		},
		{
			Question:        "What timeline are you working with?",
			AnswerFramework: "Provide a high-level timeline with key milestones. Break it down into phases if applicable and mention any dependencies.",
			Difficulty:      "easy",
		},
		{
			Question:        "How will you measure success?",
			AnswerFramework: "Define specific metrics and success criteria. Explain how you will track progress and when results will be evaluated.",
			Difficulty:      "medium",
		},
		{
			Question:        "What resources will be required?",
			AnswerFramework: "Break down human, financial, and technical resources needed. Explain how resources will be allocated and any budget considerations.",
			Difficulty:      "medium",
		},
		{
			Question:        "How does this align with broader organizational goals?",
			AnswerFramework: "Connect your presentation to larger strategic objectives. Show how this work supports the bigger picture and creates value.",
			Difficulty:      "medium",
		},
		{
			Question:        "What are the potential risks and how will you address them?",
			AnswerFramework: "Identify top 3-5 risks with their likelihood and impact. Explain your risk mitigation plan and contingency strategies.",
			Difficulty:      "hard",
		},
		{
			Question:        "Who are the key stakeholders and how will they be involved?",
			AnswerFramework: "List primary stakeholders and their roles. Explain your communication and engagement plan throughout the project.",
			Difficulty:      "medium",
		},
	}
}
