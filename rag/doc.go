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


// Package rag orchestrates retrieval-augmented question answering.
//
// The Pipeline type runs the full flow for a question:
//
//  1. Retrieve the most relevant documents
//  2. Build a strict grounded-answering prompt
//  3. Generate an answer through the configured ai.Generator
//  4. Persist the question, answer, and document references
//
// The model is never consulted when retrieval finds nothing, and model
// failures degrade to a fixed answer in the question's language rather
// than surfacing backend errors to callers.
package rag
