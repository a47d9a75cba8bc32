// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// Bounds for the number of results a single retrieval may return.
const (
	MinTopK = 1
	MaxTopK = 20
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - FullText must not be empty
//   - CreatedAt must not be in the future (zero value is allowed and
//     populated by the repository)
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - Tags (optional)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyTitle)
	}

	if doc.FullText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyFullText)
	}

	if !doc.CreatedAt.IsZero() && !IsValidTimestamp(doc.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateQAResult validates a QAResult according to domain rules.
//
// Validation rules:
//   - Question must not be empty
//
// NOT validated:
//   - Answer (fallback answers are produced by the pipeline)
//   - DocumentIds (empty means no documents were retrieved)
//   - ID (0 is valid from database sequences)
func ValidateQAResult(result *QAResult) error {
	if result == nil {
		return fmt.Errorf("%w: result is nil", ErrInvalidQAResult)
	}

	if result.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAResult, ErrEmptyQuestion)
	}

	return nil
}

// ValidateTopK validates that a top-k value is within the allowed bounds.
func ValidateTopK(topK int) error {
	if topK < MinTopK || topK > MaxTopK {
		return fmt.Errorf("%w: value %d", ErrInvalidTopK, topK)
	}
	return nil
}

// ClampTopK forces a top-k value into the allowed bounds.
func ClampTopK(topK int) int {
	if topK < MinTopK {
		return MinTopK
	}
	if topK > MaxTopK {
		return MaxTopK
	}
	return topK
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
