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


// Package search provides TF-IDF based document retrieval.
//
// The Retriever type ranks stored documents against a free-text query:
//   - Queries and documents share one normalization pass (Unicode NFKC,
//     Persian character folding, whitespace collapsing)
//   - Documents are scored by cosine similarity over TF-IDF vectors
//   - Zero-similarity documents are never returned
//
// The index is built lazily on first search and can be rebuilt at any
// time without blocking concurrent searches.
package search
