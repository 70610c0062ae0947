package generate

import (
	"fmt"
	"strings"
)

// noContextText is sent as the source context when no study material is
// available for the requested topic.
const noContextText = "No specific context provided. Generate questions based on general knowledge of the topic."

const standardPrompt = `
You are an expert TNPSC Group 4 exam question creator. Your task is to generate %d high-quality, challenging multiple-choice questions (MCQs) in %s for the topic: '%s'.

**Source Context (Use if provided, otherwise use general knowledge):**
"""
%s
"""

**Crucial Instructions:**
1.  **Difficulty:** Questions must be of a competitive exam standard (medium to high difficulty). Avoid simple, direct-recall questions. Focus on questions that require analysis, application, or deep understanding.
2.  **Question Variety:** Generate a mix of the following question formats:
    *   **Standard MCQ:** "Choose the correct answer."
    *   **Match the Following:** The question should present two lists and the options should be the correctly matched codes.
    *   **Assertion and Reason (A/R):** The question should contain an Assertion (A) and a Reason (R).
    *   **Find the Odd One Out / Incorrectly Matched Pair:** The question should ask the user to identify the item that doesn't belong or the pair that is wrongly matched.
3.  **Format:** Return the output as a single, valid JSON array of objects. **Do not include any text, notes, or markdown outside the final JSON array.**
4.  **Quality Control:** All questions, options, and explanations must be factually correct, clear, and unambiguous.
5.  **For Tamil Language:** Ensure all words are grammatically correct, fully formed, and use appropriate vocabulary. Avoid creating non-existent words or using awkward phrasing.

**JSON Object Structure:**
{
  "question": "The full question text.",
  "options": [ "Option A", "Option B", "Option C", "Option D" ],
  "correct_answer_index": <index of the correct option, 0-3>,
  "explanation": "A clear, concise explanation for why the correct answer is right."
}

Generate exactly %d questions now.
`

const simpleMCQPrompt = `
You are an expert TNPSC Group 4 exam question creator specializing in Aptitude and Mental Ability. Your task is to generate %d high-quality, standard multiple-choice questions (MCQs) in %s for the topic: '%s'.

**Source Context (Use if provided, otherwise use general knowledge):**
"""
%s
"""

**Crucial Instructions:**
1.  **Question Type:** Generate ONLY standard multiple-choice questions. **DO NOT generate** 'Match the Following', 'Assertion and Reason', 'Find the Odd One Out', or other complex formats.
2.  **Standard:** Questions must be of a competitive exam standard (TNPSC Group 4 level).
3.  **Clarity:** Questions and options must be mathematically and logically sound, clear, and unambiguous.
4.  **Format:** Return the output as a single, valid JSON array of objects. **Do not include any text, notes, or markdown outside the final JSON array.**
5.  **For Tamil Language:** Ensure all words are grammatically correct and use standard mathematical terminology.

**JSON Object Structure:**
{
  "question": "The full question text.",
  "options": [ "Option A", "Option B", "Option C", "Option D" ],
  "correct_answer_index": <index of the correct option, 0-3>,
  "explanation": "A clear, concise explanation of the steps and formula used to arrive at the correct answer."
}

Generate exactly %d questions now.
`

const fallbackPrompt = `
You are an expert TNPSC Group 4 exam question creator. Your task is to generate %d standard multiple-choice questions (MCQs) in %s for the topic: '%s'.

**Source Context (Use if provided, otherwise use general knowledge):**
"""
%s
"""

**Instructions:**
1.  **Standard:** Questions must be of a standard TNPSC Group 4 level. They must be accurate and meaningful.
2.  **Focus:** Concentrate on core, fundamental concepts related to the topic. Avoid overly complex or niche formats. Simple MCQs are perfect.
3.  **Format:** Return the output as a single, valid JSON array of objects. **Do not include any text, notes, or markdown outside the final JSON array.**

**JSON Object Structure:**
{
  "question": "The full question text.",
  "options": [ "Option A", "Option B", "Option C", "Option D" ],
  "correct_answer_index": <index of the correct option, 0-3>,
  "explanation": "A clear, concise explanation for why the correct answer is right."
}

Generate exactly %d questions now.
`

func buildStandardPrompt(n int, language, topic, context string) string {
	return fmt.Sprintf(standardPrompt, n, language, topic, context, n)
}

func buildSimpleMCQPrompt(n int, language, topic, context string) string {
	return fmt.Sprintf(simpleMCQPrompt, n, language, topic, context, n)
}

func buildFallbackPrompt(n int, language, topic, context string) string {
	return fmt.Sprintf(fallbackPrompt, n, language, topic, context, n)
}

const hintAptitudeNote = `
**Special Instruction for Aptitude:** This is an Aptitude question. Guide the student on the method, formula, or the first logical step. For example: "Think about the formula for simple interest" or "Try to set up an equation with x as the unknown number." Do not solve the problem for them.
`

const hintPrompt = `
You are "VidhAI", a helpful AI tutor for the TNPSC exam. A student is stuck on a question. Your goal is to provide a useful hint *without giving away the answer*.

**Test Question:** "%s"
**Student's Request:** "%s"
**Topic:** "%s"

**Your Task:** Provide a short, clear hint. If the student asks for the answer, gently refuse and provide a clue instead. Maintain a supportive tone.
%s`

func buildHintPrompt(userQuery, questionText, topic string) string {
	note := ""
	lower := strings.ToLower(topic)
	for _, kw := range []string{"aptitude", "mental ability", "math"} {
		if strings.Contains(lower, kw) {
			note = hintAptitudeNote
			break
		}
	}
	return fmt.Sprintf(hintPrompt, questionText, userQuery, topic, note)
}
