package prompt

import (
	"github.com/poiesic/askdocs/normalize"
)

// Fixed answers returned without consulting the model.
const (
	// NoInfoPersian is the answer for Persian questions the context cannot support.
	NoInfoPersian = "اطلاعات کافی در اسناد بازیابی شده برای پاسخ دقیق وجود ندارد."

	// NoInfoEnglish is the answer for non-Persian questions the context cannot support.
	NoInfoEnglish = "Not enough information in retrieved documents to answer this question."

	// GenerationFailedPersian is returned when the model backend fails on a Persian question.
	GenerationFailedPersian = "خطا در تولید پاسخ مدل. لطفا دوباره تلاش کنید."

	// GenerationFailedEnglish is returned when the model backend fails on a non-Persian question.
	GenerationFailedEnglish = "The model failed to generate an answer. Please try again."
)

// NoDocumentsContext is the context block used when retrieval returns nothing.
const NoDocumentsContext = "No relevant documents were found."

// ragPromptTemplate is filled with (context, question, no-info sentinel).
// The sentinel appears twice: once in the rules and once in the second
// few-shot example, so the model sees the exact string it must emit.
const ragPromptTemplate = `You are a strict retrieval-augmented assistant.
Rules:
1) Use ONLY the context below to answer the question.
2) If context is missing or insufficient, respond exactly with:
   "%[3]s"
3) If the question is Persian (Farsi), answer in Persian.
4) Otherwise, answer in the same language as the question.
5) Keep the answer concise and factual.

Persian few-shot examples:
Example 1:
Context:
[1] Title: سیاست مدیریت رخداد
Score: 0.9142
Text: رخدادها باید در پانزده دقیقه اول بررسی اولیه شوند.
Question:
زمان بررسی اولیه رخداد چقدر است؟
Answer:
بر اساس سند بازیابی‌شده، بررسی اولیه رخداد باید در پانزده دقیقه اول انجام شود.

Example 2:
Context:
No relevant documents were found.
Question:
آب‌وهوای فردای تهران چگونه است؟
Answer:
"%[3]s"

Context:
%[1]s

Question:
%[2]s

Answer:
`

// Sentinel returns the no-information answer in the language of the question.
func Sentinel(question string) string {
	if normalize.ContainsArabicScript(question) {
		return NoInfoPersian
	}
	return NoInfoEnglish
}

// GenerationFailure returns the model-failure answer in the language of the question.
func GenerationFailure(question string) string {
	if normalize.ContainsArabicScript(question) {
		return GenerationFailedPersian
	}
	return GenerationFailedEnglish
}
