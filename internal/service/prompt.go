package service

import "fmt"

// promptTemplate is the single instruction template sent to every
// provider. It pins the output contract: strictly source-bound
// questions, an exact count, a fixed object shape, and bare JSON with
// no surrounding prose.
const promptTemplate = `You are a quiz generation expert. Your task is to create a quiz based *exclusively* on the content provided below.
DO NOT GENERATE QUESTIONS ON ANY OTHER TOPIC.
The output must be a single, valid JSON object with the specified structure.

---
INSTRUCTIONS
1.  Generate exactly %d questions.
2.  The output must be a single JSON object with a key "questions", which is an array of question objects.
3.  Each question object must have the following keys:
    * "question_type" (string): One of "mcq", "tf", or "fill".
    * "question_text" (string): The quiz question itself.
    * "options" (array of strings): Only for "mcq" questions. Must have exactly 4 options.
    * "correct_answer" (string): The correct answer.
    * "difficulty" (string): One of "easy", "medium", or "hard".
    * "explanation" (string): A brief explanation for the correct answer.
4.  Ensure questions are clear, non-repetitive, and directly related to the source content.
5.  Return ONLY the final, valid JSON object. Do not include any other text or markdown outside the JSON.
---
CONTENT
%s
`

// BuildPrompt renders the generation instruction for the given source
// content and question count. It is pure: identical inputs always
// produce identical prompt text.
func BuildPrompt(sourceContent string, numQuestions int) string {
	return fmt.Sprintf(promptTemplate, numQuestions, sourceContent)
}
